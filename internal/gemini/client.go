// Package gemini is a minimal typed client for the Gemini
// generateContent REST API, covering the multimodal structured-output
// calls this service makes.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ErrEmptyResponse means the call succeeded at the HTTP level but the
// model returned no text. Callers treat this as the model being
// unavailable.
var ErrEmptyResponse = errors.New("empty response from model")

// Client calls the Gemini API. Construct it explicitly with NewClient
// and pass it into the pipeline; there is no package-level client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient validates the credential up front so a missing key fails
// at startup, not on the first search.
func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *GenerationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []Part `json:"parts"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateContent sends one multimodal request and returns the
// concatenated response text. An empty text yields ErrEmptyResponse.
func (c *Client) GenerateContent(ctx context.Context, model string, parts []Part, cfg *GenerationConfig) (string, error) {
	payload := generateRequest{
		Contents:         []content{{Parts: parts}},
		GenerationConfig: cfg,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var rawBody bytes.Buffer
		rawBody.ReadFrom(resp.Body)
		return "", fmt.Errorf("Gemini API error (status %d): %s", resp.StatusCode, rawBody.String())
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	var sb strings.Builder
	for _, cand := range result.Candidates {
		for _, p := range cand.Content.Parts {
			sb.WriteString(p.Text)
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
