package genai

import (
	"context"
	"fmt"

	domain "github.com/nuelxcodev/luxe/internal/entity"
	"github.com/nuelxcodev/luxe/internal/usecase"
	genai "google.golang.org/genai"
)

// Client adapts the Gemini API to the TextGenerator port.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("genai API key is required")
	}
	if model == "" {
		model = "gemini-3-flash-preview"
	}

	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &Client{client: c, model: model}, nil
}

// Generate runs one completion. Search grounding and the system instruction
// are optional; citations come back only when the model grounded its answer.
func (c *Client) Generate(ctx context.Context, req usecase.GenerateRequest) (usecase.GenerateResult, error) {
	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.SystemInstruction, genai.RoleUser)
	}
	if req.WithSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, cfg)
	if err != nil {
		return usecase.GenerateResult{}, fmt.Errorf("genai generate: %w", err)
	}

	return usecase.GenerateResult{
		Text:      resp.Text(),
		Citations: extractCitations(resp),
	}, nil
}

func extractCitations(resp *genai.GenerateContentResponse) []domain.Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []domain.Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil {
			continue
		}
		out = append(out, domain.Citation{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return out
}

var _ usecase.TextGenerator = (*Client)(nil)
