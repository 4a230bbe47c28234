package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Structured log field keys.
const (
	FieldProvider  = "ai_provider"
	FieldModel     = "ai_model"
	FieldSessionID = "session_id"
	FieldResumeID  = "resume_id"
)

// StringField is a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts key/value pairs into zap fields, trimming whitespace
// and dropping entries with an empty key or value.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		key := strings.TrimSpace(f.Key)
		value := strings.TrimSpace(f.Value)
		if key == "" || value == "" {
			continue
		}
		result = append(result, zap.String(key, value))
	}
	return result
}

// WithFields attaches fields to logger, defaulting to a no-op logger when nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	logger = OrNop(logger)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(fields...)
}

// CommonFields describes the generation provider and model.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}

// WithCommonFields attaches the provider and model fields to logger.
func WithCommonFields(logger *zap.Logger, provider, model string) *zap.Logger {
	return WithFields(logger, CommonFields(provider, model)...)
}

// WithSession attaches interview session and resume identifiers.
func WithSession(logger *zap.Logger, sessionID, resumeID string) *zap.Logger {
	return WithFields(logger, StringFields(
		StringField{Key: FieldSessionID, Value: sessionID},
		StringField{Key: FieldResumeID, Value: resumeID},
	)...)
}
