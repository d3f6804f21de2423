package gemini

// Schema type names accepted by the structured-output config.
const (
	TypeObject = "OBJECT"
	TypeArray  = "ARRAY"
	TypeString = "STRING"
	TypeNumber = "NUMBER"
)

// Part is one element of a multimodal request: either text or inline
// image data, never both.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64-encoded image bytes.
type InlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"`
}

// TextPart builds a text part.
func TextPart(text string) Part {
	return Part{Text: text}
}

// ImagePart builds an inline-data part from encoded image bytes.
func ImagePart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MIMEType: mimeType, Data: base64Data}}
}

// Schema declares the shape the model must return. Declaring it on
// the call is what makes the response machine-parseable JSON.
type Schema struct {
	Type       string             `json:"type"`
	Properties map[string]*Schema `json:"properties,omitempty"`
	Items      *Schema            `json:"items,omitempty"`
	Required   []string           `json:"required,omitempty"`
}

// GenerationConfig is the subset of call configuration this service
// uses: JSON output constrained by a schema.
type GenerationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *Schema `json:"responseSchema,omitempty"`
}

// JSONConfig is the standard structured-output config.
func JSONConfig(schema *Schema) *GenerationConfig {
	return &GenerationConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}
