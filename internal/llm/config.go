// Package llm provides the generation-provider abstraction used for interview
// questions and answer scoring, with model tiers and several interchangeable
// backends selected by configuration at start-up.
package llm

import (
	"fmt"
	"time"
)

// ModelTier represents the complexity/capability level of a model
type ModelTier string

const (
	// TierLite is for short classification-style calls such as scoring
	TierLite ModelTier = "lite"
	// TierStandard is for single follow-up questions
	TierStandard ModelTier = "standard"
	// TierAdvanced is for structured multi-question generation
	TierAdvanced ModelTier = "advanced"
)

// Provider names a generation backend.
type Provider string

const (
	// ProviderGemini uses the Gemini API through generative-ai-go
	ProviderGemini Provider = "gemini"
	// ProviderVertex uses google.golang.org/genai against Vertex AI or the Gemini API
	ProviderVertex Provider = "vertex"
	// ProviderOllama talks to a local Ollama server
	ProviderOllama Provider = "ollama"
	// ProviderOpenAI talks to an OpenAI-compatible chat completions endpoint
	ProviderOpenAI Provider = "openai"
	// ProviderSimple returns canned responses without any network access
	ProviderSimple Provider = "simple"
)

// Providers lists every supported provider.
var Providers = []Provider{ProviderGemini, ProviderVertex, ProviderOllama, ProviderOpenAI, ProviderSimple}

// DefaultTimeout bounds a single HTTP-based generation call.
const DefaultTimeout = 60 * time.Second

// Config holds the provider selection and its connection settings.
type Config struct {
	Provider Provider
	Models   map[ModelTier]string

	APIKey  string
	BaseURL string

	// Project and Location select a Vertex AI deployment. Without them the
	// vertex provider falls back to the Gemini API backend with APIKey.
	Project  string
	Location string

	Temperature float32
	Timeout     time.Duration
}

// DefaultConfig returns the default configuration (Gemini)
func DefaultConfig() *Config {
	return DefaultGeminiConfig()
}

// DefaultGeminiConfig returns the default Gemini configuration
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0.1,
	}
}

// DefaultOllamaConfig returns a local Ollama configuration using one model
// for every tier.
func DefaultOllamaConfig() *Config {
	return &Config{
		Provider:    ProviderOllama,
		Models:      map[ModelTier]string{TierStandard: "llama2"},
		BaseURL:     "http://localhost:11434",
		Temperature: 0.1,
		Timeout:     DefaultTimeout,
	}
}

// DefaultOpenAIConfig returns the default OpenAI configuration
func DefaultOpenAIConfig() *Config {
	return &Config{
		Provider: ProviderOpenAI,
		Models: map[ModelTier]string{
			TierLite:     "gpt-4o-mini",
			TierStandard: "gpt-4o-mini",
			TierAdvanced: "gpt-4o",
		},
		BaseURL:     "https://api.openai.com/v1",
		Temperature: 0.1,
		Timeout:     DefaultTimeout,
	}
}

// ConfigFor returns the defaults for a provider.
func ConfigFor(p Provider) (*Config, error) {
	switch p {
	case ProviderGemini:
		return DefaultGeminiConfig(), nil
	case ProviderVertex:
		c := DefaultGeminiConfig()
		c.Provider = ProviderVertex
		return c, nil
	case ProviderOllama:
		return DefaultOllamaConfig(), nil
	case ProviderOpenAI:
		return DefaultOpenAIConfig(), nil
	case ProviderSimple:
		return &Config{Provider: ProviderSimple, Models: map[ModelTier]string{TierStandard: "simple"}}, nil
	default:
		return nil, fmt.Errorf("unknown provider %q", p)
	}
}

// GetModel returns the model name for a given tier
func (c *Config) GetModel(tier ModelTier) string {
	if model, ok := c.Models[tier]; ok {
		return model
	}
	// Fallback chain: try standard, then lite
	if model, ok := c.Models[TierStandard]; ok {
		return model
	}
	if model, ok := c.Models[TierLite]; ok {
		return model
	}
	return ""
}

// WithModel returns a new Config with a specific model for a tier
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	newConfig := *c
	newConfig.Models = make(map[ModelTier]string, len(c.Models)+1)
	for k, v := range c.Models {
		newConfig.Models[k] = v
	}
	newConfig.Models[tier] = model
	return &newConfig
}

func (c *Config) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}
