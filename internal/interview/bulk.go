package interview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/prompts"
	"github.com/omkar-nanda-ditstek/AI/internal/schemas"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// GenerateInitialQuestions seeds an interview with exactly six questions from
// one provider call. Any malformed batch fails the whole call.
func (iv *Interviewer) GenerateInitialQuestions(ctx context.Context, profile types.CandidateProfile) ([]types.GeneratedQuestion, error) {
	prompt, err := prompts.Render(prompts.Interview, "bulk-questions", map[string]string{
		"Name":       profile.DisplayName(),
		"Skills":     skillText(profile.Skills, maxPromptSkills),
		"Experience": experienceText(profile),
	})
	if err != nil {
		return nil, &GenerationError{Op: "bulk", Message: "failed to build prompt", Cause: err}
	}

	raw, err := iv.gen.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &GenerationError{Op: "bulk", Message: "provider call failed", Cause: err}
	}

	questions, err := ParseQuestionBatch(raw)
	if err != nil {
		iv.logger.Warn("rejected question batch", zap.Error(err))
		return nil, err
	}
	iv.logger.Debug("generated question batch", zap.Int("count", len(questions)))
	return questions, nil
}

// ParseQuestionBatch validates a provider response holding a question batch.
// Both {"questions": [...]} and a bare array are accepted. The first six
// questions are kept and must follow BatchPhases.
func ParseQuestionBatch(raw string) ([]types.GeneratedQuestion, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if strings.HasPrefix(cleaned, "[") {
		cleaned = `{"questions":` + cleaned + `}`
	}

	if err := schemas.ValidateQuestionBatch(cleaned); err != nil {
		var verr *schemas.ValidationError
		if errors.As(err, &verr) {
			return nil, &BatchError{Message: "schema validation failed", Fields: verr.Errors}
		}
		return nil, &BatchError{Message: "response is not valid JSON", Cause: err}
	}

	var batch struct {
		Questions []types.GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(cleaned), &batch); err != nil {
		return nil, &BatchError{Message: "failed to decode questions", Cause: err}
	}
	if len(batch.Questions) < len(BatchPhases) {
		return nil, &BatchError{Message: fmt.Sprintf("expected %d questions, got %d", len(BatchPhases), len(batch.Questions))}
	}

	questions := batch.Questions[:len(BatchPhases)]
	seen := make(map[string]int, len(questions))
	for i := range questions {
		q := &questions[i]
		q.Question = strings.TrimSpace(q.Question)
		if q.Type != BatchPhases[i] {
			return nil, &BatchError{Message: fmt.Sprintf("question %d has type %q, want %q", i+1, q.Type, BatchPhases[i])}
		}
		if first, dup := seen[q.ID]; dup {
			return nil, &BatchError{Message: fmt.Sprintf("question %d reuses id %q of question %d", i+1, q.ID, first)}
		}
		seen[q.ID] = i + 1
		if err := q.Validate(); err != nil {
			return nil, &BatchError{Message: fmt.Sprintf("question %d is incomplete", i+1), Cause: err}
		}
		q.Duration = types.QuestionDuration
	}
	return questions, nil
}
