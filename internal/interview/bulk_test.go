package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

func batchJSON(phases []types.InterviewPhase, duration int) string {
	items := make([]string, len(phases))
	for i, p := range phases {
		items[i] = fmt.Sprintf(`{"id":"q%d","type":%q,"question":"Question %d?","duration":%d}`, i+1, p, i+1, duration)
	}
	return "[" + strings.Join(items, ",") + "]"
}

func TestParseQuestionBatch(t *testing.T) {
	six := batchJSON(BatchPhases, 3)
	eight := batchJSON(append(append([]types.InterviewPhase{}, BatchPhases...), types.PhaseAdvanced, types.PhaseAdvanced), 5)

	tests := []struct {
		name string
		raw  string
	}{
		{"object form", `{"questions":` + six + `}`},
		{"bare array", six},
		{"fenced with chatter", "Here you go:\n```json\n" + six + "\n```"},
		{"extra questions are dropped", eight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ParseQuestionBatch(tt.raw)
			require.NoError(t, err)
			require.Len(t, questions, 6)
			for i, q := range questions {
				assert.Equal(t, BatchPhases[i], q.Type)
				assert.Equal(t, types.QuestionDuration, q.Duration)
				assert.Equal(t, fmt.Sprintf("Question %d?", i+1), q.Question)
			}
		})
	}
}

func TestParseQuestionBatch_Rejects(t *testing.T) {
	swapped := append([]types.InterviewPhase{}, BatchPhases...)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	tests := []struct {
		name       string
		raw        string
		wantFields bool
	}{
		{"five questions", batchJSON(BatchPhases[:5], 5), true},
		{"empty object", "{}", true},
		{"wrong phase order", batchJSON(swapped, 5), false},
		{"not json", "I cannot help with that.", false},
		{"unknown type", strings.Replace(batchJSON(BatchPhases, 5), `"advanced"`, `"expert"`, 1), true},
		{"blank question", strings.Replace(batchJSON(BatchPhases, 5), `"Question 3?"`, `"   "`, 1), false},
		{"duplicate id", strings.Replace(batchJSON(BatchPhases, 5), `"id":"q4"`, `"id":"q2"`, 1), false},
		{"missing duration", strings.Replace(batchJSON(BatchPhases, 5), `,"duration":5}`, `}`, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			questions, err := ParseQuestionBatch(tt.raw)
			require.Error(t, err)
			assert.Nil(t, questions)
			assert.True(t, errors.Is(err, ErrGenerationFailed))

			var batchErr *BatchError
			require.ErrorAs(t, err, &batchErr)
			if tt.wantFields {
				assert.NotEmpty(t, batchErr.Fields)
			}
		})
	}
}

func TestParseQuestionBatch_DuplicateIDs(t *testing.T) {
	raw := strings.Replace(batchJSON(BatchPhases, 5), `"id":"q6"`, `"id":"q1"`, 1)

	_, err := ParseQuestionBatch(raw)
	assert.ErrorContains(t, err, `question 6 reuses id "q1" of question 1`)
}

func TestGenerateInitialQuestions(t *testing.T) {
	gen := &fakeGenerator{json: batchJSON(BatchPhases, 5)}
	iv := New(gen, nil, nil)

	questions, err := iv.GenerateInitialQuestions(context.Background(), sampleProfile())
	require.NoError(t, err)
	assert.Len(t, questions, 6)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "interview with Jane Doe")
	assert.Contains(t, prompt, "Skills: docker, go, kubernetes, postgresql, react\n")
	assert.NotContains(t, prompt, "redis")
	assert.Contains(t, prompt, "Experience: 4 years")
	assert.Equal(t, llm.TierAdvanced, gen.tiers[0])
}

func TestGenerateInitialQuestions_ProviderError(t *testing.T) {
	iv := New(&fakeGenerator{err: errors.New("quota exceeded")}, nil, nil)

	_, err := iv.GenerateInitialQuestions(context.Background(), sampleProfile())
	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "bulk", genErr.Op)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateInitialQuestions_SimpleProviderFails(t *testing.T) {
	iv := New(llm.NewSimpleClient(), nil, nil)

	_, err := iv.GenerateInitialQuestions(context.Background(), sampleProfile())
	assert.True(t, errors.Is(err, ErrGenerationFailed))
}
