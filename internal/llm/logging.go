package llm

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/logger"
)

const maxLogLen = 200

// LoggingClient decorates a Client with structured call logging.
type LoggingClient struct {
	Client
	provider Provider
	logger   *zap.Logger
}

// NewLoggingClient wraps c so every generation is logged with the provider
// and model fields.
func NewLoggingClient(c Client, provider Provider, log *zap.Logger) *LoggingClient {
	return &LoggingClient{Client: c, provider: provider, logger: logger.OrNop(log)}
}

// Provider reports the backend behind the client.
func (c *LoggingClient) Provider() Provider {
	return c.provider
}

// GenerateContent logs and delegates.
func (c *LoggingClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.observe("generate content", prompt, tier, func() (string, error) {
		return c.Client.GenerateContent(ctx, prompt, tier)
	})
}

// GenerateJSON logs and delegates.
func (c *LoggingClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.observe("generate json", prompt, tier, func() (string, error) {
		return c.Client.GenerateJSON(ctx, prompt, tier)
	})
}

func (c *LoggingClient) observe(op, prompt string, tier ModelTier, call func() (string, error)) (string, error) {
	log := logger.WithCommonFields(c.logger, string(c.provider), c.Client.GetModel(tier)).
		With(zap.String("tier", string(tier)))
	log.Debug(op, zap.String("prompt_preview", logger.TruncateForLog(prompt, maxLogLen)))

	start := time.Now()
	out, err := call()
	if err != nil {
		log.Warn(op+" failed", zap.Duration("duration", time.Since(start)), zap.Error(err))
		return "", err
	}

	log.Debug(op+" done",
		zap.Duration("duration", time.Since(start)),
		zap.String("response_preview", logger.TruncateForLog(out, maxLogLen)))
	return out, nil
}
