package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenAIClient implements Client with the unified google.golang.org/genai SDK.
// It targets Vertex AI when a project and location are configured and the
// Gemini API otherwise.
type GenAIClient struct {
	client *genai.Client
	config *Config
}

// NewGenAIClient creates a client for the vertex provider.
func NewGenAIClient(ctx context.Context, config *Config) (*GenAIClient, error) {
	cc := &genai.ClientConfig{}
	switch {
	case config.Project != "" && config.Location != "":
		cc.Project = config.Project
		cc.Location = config.Location
		cc.Backend = genai.BackendVertexAI
	case strings.TrimSpace(config.APIKey) != "":
		cc.APIKey = config.APIKey
		cc.Backend = genai.BackendGeminiAPI
	default:
		return nil, errors.New("vertex provider needs a project and location or an API key")
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIClient{client: client, config: config}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *GenAIClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, "")
}

// GenerateJSON generates JSON content using the specified model tier
func (c *GenAIClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, "application/json")
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *GenAIClient) generate(ctx context.Context, prompt string, tier ModelTier, mimeType string) (string, error) {
	model := c.config.GetModel(tier)
	if model == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	temp := c.config.Temperature
	cfg := &genai.GenerateContentConfig{
		Temperature:      &temp,
		ResponseMIMEType: mimeType,
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var b strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil || strings.TrimSpace(part.Text) == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			b.WriteString(strings.TrimSpace(part.Text))
		}
		// Only the first candidate with text is used.
		if b.Len() > 0 {
			break
		}
	}

	if b.Len() == 0 {
		return "", errors.New("genai returned empty response")
	}
	return b.String(), nil
}

// GetModel returns the model name for a tier
func (c *GenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the genai client holds no long-lived resources.
func (c *GenAIClient) Close() error {
	return nil
}
