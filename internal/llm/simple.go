package llm

import (
	"context"
	"strings"
)

// Canned responses returned by SimpleClient.
const (
	SimpleQuestionResponse = "Can you tell me about your experience and what interests you most about this role?"
	SimpleScoreResponse    = "Good response showing relevant experience."
	SimpleDefaultResponse  = "That's interesting. Can you tell me more about that?"
)

// SimpleClient is a deterministic provider that needs no network. It is the
// fallback when the configured provider cannot start.
type SimpleClient struct{}

// NewSimpleClient creates a SimpleClient.
func NewSimpleClient() *SimpleClient {
	return &SimpleClient{}
}

// GenerateContent picks a canned response from keywords in the prompt.
func (c *SimpleClient) GenerateContent(_ context.Context, prompt string, _ ModelTier) (string, error) {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "question"):
		return SimpleQuestionResponse, nil
	case strings.Contains(lower, "score"):
		return SimpleScoreResponse, nil
	default:
		return SimpleDefaultResponse, nil
	}
}

// GenerateJSON returns an empty object; callers that need structured output
// treat it as a failed generation.
func (c *SimpleClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	return "{}", nil
}

// GetModel returns "simple" for every tier.
func (c *SimpleClient) GetModel(ModelTier) string {
	return string(ProviderSimple)
}

// Close is a no-op.
func (c *SimpleClient) Close() error {
	return nil
}
