package interview

import (
	"errors"
	"fmt"

	"github.com/omkar-nanda-ditstek/AI/internal/schemas"
)

// ErrGenerationFailed matches every GenerationError and BatchError via errors.Is.
var ErrGenerationFailed = errors.New("generation failed")

// GenerationError is returned when the generation provider errors or returns
// output that cannot be used.
type GenerationError struct {
	Op      string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed: %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed: %s: %s", e.Op, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrGenerationFailed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// BatchError rejects a whole bulk question batch.
type BatchError struct {
	Message string
	Fields  []schemas.FieldError
	Cause   error
}

func (e *BatchError) Error() string {
	msg := "invalid question batch: " + e.Message
	if len(e.Fields) > 0 {
		msg += fmt.Sprintf(" (%s: %s", e.Fields[0].Field, e.Fields[0].Message)
		if n := len(e.Fields) - 1; n > 0 {
			msg += fmt.Sprintf(", and %d more", n)
		}
		msg += ")"
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *BatchError) Unwrap() error {
	return e.Cause
}

// Is reports true for ErrGenerationFailed.
func (e *BatchError) Is(target error) bool {
	return target == ErrGenerationFailed
}
