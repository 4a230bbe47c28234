package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/logger"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content using the specified model tier
	GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GenerateJSON generates JSON content using the specified model tier
	GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error)
	// GetModel returns the provider model used for a tier
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a client for config.Provider.
func NewClient(ctx context.Context, config *Config) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderVertex:
		return NewGenAIClient(ctx, config)
	case ProviderOllama:
		return NewOllamaClient(config)
	case ProviderOpenAI:
		return NewOpenAIClient(config)
	case ProviderSimple:
		return NewSimpleClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", config.Provider)
	}
}

// NewClientWithFallback creates the configured client and falls back to the
// simple provider when it cannot be initialized. The returned client logs
// every call.
func NewClientWithFallback(ctx context.Context, config *Config, log *zap.Logger) Client {
	log = logger.OrNop(log)
	if config == nil {
		config = DefaultConfig()
	}

	client, err := NewClient(ctx, config)
	if err != nil {
		log.Warn("generation provider unavailable, using simple fallback",
			zap.String("provider", string(config.Provider)), zap.Error(err))
		return NewLoggingClient(NewSimpleClient(), ProviderSimple, log)
	}
	return NewLoggingClient(client, config.Provider, log)
}
