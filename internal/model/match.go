package model

// ImagePayload is an encoded image ready to send to the model. Origin
// is only used for preview display (a data URL or the original remote
// URL), never for matching.
type ImagePayload struct {
	Base64   string `json:"-"`
	MIMEType string `json:"mimeType"`
	Origin   string `json:"origin"`
}

// MatchResult is a single entry as returned by the similarity model.
// Scores are 0-100; Reason is only populated in direct mode.
type MatchResult struct {
	ProductID       string  `json:"productId"`
	SimilarityScore float64 `json:"similarityScore"`
	Reason          string  `json:"reason,omitempty"`
}

// EnrichedResult is a MatchResult joined with its catalog product.
// Product fields always come from the catalog, never from the model.
type EnrichedResult struct {
	Product         Product `json:"product"`
	SimilarityScore float64 `json:"similarityScore"`
	Reason          string  `json:"reason,omitempty"`
}
