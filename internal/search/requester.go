package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/gemini"
	"github.com/Rishi-raj-19/Visual-Product-Matcher/internal/model"
)

// Requester builds the single comparison request and parses the raw
// model response against the declared schema.
type Requester struct {
	gen         Generator
	directModel string
	visualModel string
}

func NewRequester(gen Generator, directModel, visualModel string) *Requester {
	return &Requester{gen: gen, directModel: directModel, visualModel: visualModel}
}

const directPrompt = `You are an intelligent visual search engine for an e-commerce store.

Task:
1. Analyze the uploaded image to determine the product type, style, color, material, and visual characteristics.
2. Compare this analysis against the provided list of products in the store's inventory.
3. Identify the products that are most visually or semantically similar to the uploaded image.
4. Consider the price in your similarity analysis where applicable (e.g., similar luxury tier or budget category).

Inventory List (JSON):
%s

Output Requirements:
- Return a JSON object with a key "matches" containing an array of objects.
- Each object must have:
  - "productId": The exact ID from the inventory list.
  - "similarityScore": A number between 0 and 100 indicating how close of a match it is (100 = exact match).
  - "reason": A brief, 1-sentence explanation of why this product was selected (e.g., "Matches the red color and sneaker style").
- Include at least 5 matches if possible, even if similarity is lower.
- Sort the results by similarityScore in descending order.`

const visualPrompt = `You are a visual product matching expert. Analyze the first image provided, which is the user's target image. Then, compare it against the subsequent product images.

For each product image, identified by a "Product ID" text following it, provide a visual similarity score from 0 to 100. Base the score on visual characteristics like color, shape, style, and overall aesthetic.

Return your findings as a JSON array of objects. Each object must contain the 'id' of the product and its 'similarityScore'. Only include products with a similarity score of 50 or higher. Sort the results in descending order of similarityScore. If no products are a good match, return an empty array.`

// productContext is the trimmed metadata sent in direct mode, keeping
// the request small.
type productContext struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type directResponse struct {
	Matches []directMatch `json:"matches"`
}

type directMatch struct {
	ProductID       string  `json:"productId"`
	SimilarityScore float64 `json:"similarityScore"`
	Reason          string  `json:"reason"`
}

type visualMatch struct {
	ID              string  `json:"id"`
	SimilarityScore float64 `json:"similarityScore"`
}

// Direct sends the target image plus the inlined candidate metadata
// and asks the model to choose by identifier.
func (r *Requester) Direct(ctx context.Context, target model.ImagePayload, candidates []model.Product) ([]model.MatchResult, error) {
	meta := make([]productContext, len(candidates))
	for i, p := range candidates {
		meta[i] = productContext{
			ID:          p.ID,
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Price:       p.Price,
		}
	}

	inventory, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal candidate metadata: %w", err)
	}

	parts := []gemini.Part{
		gemini.ImagePart(target.MIMEType, target.Base64),
		gemini.TextPart(fmt.Sprintf(directPrompt, inventory)),
	}

	schema := &gemini.Schema{
		Type: gemini.TypeObject,
		Properties: map[string]*gemini.Schema{
			"matches": {
				Type: gemini.TypeArray,
				Items: &gemini.Schema{
					Type: gemini.TypeObject,
					Properties: map[string]*gemini.Schema{
						"productId":       {Type: gemini.TypeString},
						"similarityScore": {Type: gemini.TypeNumber},
						"reason":          {Type: gemini.TypeString},
					},
					Required: []string{"productId", "similarityScore", "reason"},
				},
			},
		},
		Required: []string{"matches"},
	}

	text, err := r.gen.GenerateContent(ctx, r.directModel, parts, gemini.JSONConfig(schema))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var parsed directResponse
	if err := strictDecode(text, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if parsed.Matches == nil {
		return nil, fmt.Errorf("%w: missing \"matches\" array", ErrMalformedResponse)
	}

	matches := make([]model.MatchResult, len(parsed.Matches))
	for i, m := range parsed.Matches {
		if m.ProductID == "" {
			return nil, fmt.Errorf("%w: match entry %d has no productId", ErrMalformedResponse, i)
		}
		matches[i] = model.MatchResult{
			ProductID:       m.ProductID,
			SimilarityScore: m.SimilarityScore,
			Reason:          m.Reason,
		}
	}
	return matches, nil
}

// Visual sends the target image followed by (candidate image, ID
// label) pairs and asks for per-candidate scores.
func (r *Requester) Visual(ctx context.Context, target model.ImagePayload, candidates []Candidate) ([]model.MatchResult, error) {
	parts := []gemini.Part{
		gemini.ImagePart(target.MIMEType, target.Base64),
		gemini.TextPart("This is the user's target image to match."),
		gemini.TextPart(visualPrompt),
	}
	for _, c := range candidates {
		parts = append(parts, gemini.ImagePart(c.Image.MIMEType, c.Image.Base64))
		parts = append(parts, gemini.TextPart("Product ID: "+c.Product.ID))
	}

	schema := &gemini.Schema{
		Type: gemini.TypeArray,
		Items: &gemini.Schema{
			Type: gemini.TypeObject,
			Properties: map[string]*gemini.Schema{
				"id":              {Type: gemini.TypeString},
				"similarityScore": {Type: gemini.TypeNumber},
			},
			Required: []string{"id", "similarityScore"},
		},
	}

	text, err := r.gen.GenerateContent(ctx, r.visualModel, parts, gemini.JSONConfig(schema))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, err)
	}

	var parsed []visualMatch
	if err := strictDecode(text, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	matches := make([]model.MatchResult, len(parsed))
	for i, m := range parsed {
		if m.ID == "" {
			return nil, fmt.Errorf("%w: match entry %d has no id", ErrMalformedResponse, i)
		}
		matches[i] = model.MatchResult{
			ProductID:       m.ID,
			SimilarityScore: m.SimilarityScore,
		}
	}
	return matches, nil
}

// strictDecode rejects unknown fields and trailing garbage so the
// response is either fully valid against the schema or an error --
// never a partially-trusted value.
func strictDecode(text string, v any) error {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return fmt.Errorf("trailing data after JSON value")
	}
	return nil
}
