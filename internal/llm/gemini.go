package llm

import (
	"context"
	"errors"
	"fmt"

	genai "google.golang.org/genai"
)

// Fixed generation settings for analysis calls. The model is primed to emit
// a single JSON object, and every text value must come back in Korean.
const (
	temperature     = 0.3
	maxOutputTokens = 4096

	systemInstruction = "You are a helpful assistant that generates company analysis data in JSON format. All textual content in the JSON values MUST be written in Korean."
	primingUser       = "You are a machine that only returns pure JSON."
	primingModel      = "OK. I will only output a single valid JSON object without any other text or markdown."
)

// GeminiClient is a thin wrapper around the official genai client.
type GeminiClient struct {
	cli   *genai.Client
	model string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey, Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiClient{cli: cli, model: model}, nil
}

func (g *GeminiClient) Name() string { return "Gemini:" + g.model }

// Generate sends prompt with the fixed JSON-only configuration and returns
// the provider's raw response. API-level failures are mapped to
// *UpstreamError; the caller decides whether anything can be repaired.
func (g *GeminiClient) Generate(ctx context.Context, prompt string) (*genai.GenerateContentResponse, error) {
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: primingUser}}},
		{Role: "model", Parts: []*genai.Part{{Text: primingModel}}},
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	cfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr[float32](temperature),
		MaxOutputTokens:   maxOutputTokens,
		ResponseMIMEType:  "application/json",
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
	}

	resp, err := g.cli.Models.GenerateContent(ctx, g.model, contents, cfg)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, &UpstreamError{Status: apiErr.Code, Body: apiErr.Message}
		}
		return nil, fmt.Errorf("llm: generate: %w", err)
	}
	return resp, nil
}
