package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// OllamaClient implements Client against a local Ollama server's
// /api/generate endpoint.
type OllamaClient struct {
	config *Config
	http   *http.Client
}

type ollamaRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	Stream  bool           `json:"stream"`
	Format  string         `json:"format,omitempty"`
	Options map[string]any `json:"options,omitempty"`
}

type ollamaResponse struct {
	Response string `json:"response"`
	Error    string `json:"error,omitempty"`
}

// NewOllamaClient creates an Ollama client. No connection is made until the
// first call.
func NewOllamaClient(config *Config) (*OllamaClient, error) {
	if strings.TrimSpace(config.BaseURL) == "" {
		return nil, errors.New("ollama base URL is required")
	}
	return &OllamaClient{
		config: config,
		http:   &http.Client{Timeout: config.timeout()},
	}, nil
}

// GenerateContent generates text content using the specified model tier
func (c *OllamaClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.generate(ctx, prompt, tier, "")
}

// GenerateJSON asks Ollama for JSON-constrained output.
func (c *OllamaClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	text, err := c.generate(ctx, prompt, tier, "json")
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

func (c *OllamaClient) generate(ctx context.Context, prompt string, tier ModelTier, format string) (string, error) {
	model := c.config.GetModel(tier)
	if model == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	body, err := json.Marshal(ollamaRequest{
		Model:   model,
		Prompt:  prompt,
		Stream:  false,
		Format:  format,
		Options: map[string]any{"temperature": c.config.Temperature},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := strings.TrimRight(c.config.BaseURL, "/") + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("ollama http %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out ollamaResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode ollama response: %w", err)
	}
	if out.Error != "" {
		return "", fmt.Errorf("ollama error: %s", out.Error)
	}
	if strings.TrimSpace(out.Response) == "" {
		return "", errors.New("ollama returned empty response")
	}
	return out.Response, nil
}

// GetModel returns the model name for a tier
func (c *OllamaClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases idle connections.
func (c *OllamaClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
