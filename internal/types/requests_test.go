//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerRequest_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		request AnswerRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			request: AnswerRequest{QuestionID: "intro_1", Answer: "I build APIs in Go.", TimeTaken: 120},
			wantErr: false,
		},
		{
			name:    "missing question id",
			request: AnswerRequest{Answer: "I build APIs in Go."},
			wantErr: true,
		},
		{
			name:    "missing answer",
			request: AnswerRequest{QuestionID: "intro_1"},
			wantErr: true,
		},
		{
			name:    "negative time taken",
			request: AnswerRequest{QuestionID: "intro_1", Answer: "ok", TimeTaken: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.request)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSubmitInterviewRequest_ValidateMethod(t *testing.T) {
	req := SubmitInterviewRequest{
		SessionID: "7d5f5c1e-5a51-4b4c-9d1e-9c4f6b1f2a10",
		Responses: []SubmittedResponse{{QuestionID: "intro_1", Answer: "hello"}},
	}
	require.NoError(t, req.Validate())

	req.Responses = append(req.Responses, SubmittedResponse{Answer: "no id"})
	assert.Error(t, req.Validate())

	req = SubmitInterviewRequest{}
	assert.Error(t, req.Validate())
}

func TestIngestURLRequest_ValidateMethod(t *testing.T) {
	req := IngestURLRequest{URL: "https://example.com/resume.pdf"}
	require.NoError(t, req.Validate())

	req.URL = "not a url"
	assert.Error(t, req.Validate())
}

func TestTrainingExample_ValidateMethod(t *testing.T) {
	ex := TrainingExample{
		Skill:    "Python",
		Question: "What's your experience with Django or Flask?",
		Keywords: []string{"python", "django"},
		Response: "Can you describe a Python project you're proud of?",
	}
	require.NoError(t, ex.Validate())

	ex.Keywords = nil
	assert.Error(t, ex.Validate())

	ex.Keywords = []string{""}
	assert.Error(t, ex.Validate())
}

func TestGeneratedQuestion_ValidateMethod(t *testing.T) {
	q := GeneratedQuestion{ID: "tech_1", Type: PhaseTechnical, Question: "How do goroutines differ from threads?", Duration: QuestionDuration}
	require.NoError(t, q.Validate())

	q.Type = "warmup"
	assert.Error(t, q.Validate())

	q.Type = PhaseAdvanced
	q.Duration = 0
	assert.Error(t, q.Validate())
}

func TestInterviewSession_History(t *testing.T) {
	session := InterviewSession{
		Questions: []GeneratedQuestion{
			{ID: "intro_1", Type: PhaseIntroduction, Question: "Tell me about yourself.", Duration: 5},
			{ID: "basic_1", Type: PhaseBasics, Question: "What is a closure?", Duration: 5},
		},
		Responses: []ResponseRecord{
			{QuestionID: "intro_1", QuestionText: "Tell me about yourself.", Answer: "I am a backend engineer."},
		},
	}

	history := session.History()
	require.Len(t, history, 1)
	assert.Equal(t, ConversationTurn{Question: "Tell me about yourself.", Answer: "I am a backend engineer."}, history[0])

	q, ok := session.FindQuestion("basic_1")
	assert.True(t, ok)
	assert.Equal(t, PhaseBasics, q.Type)

	_, ok = session.FindQuestion("missing")
	assert.False(t, ok)
}

func TestCandidateProfile_DisplayName(t *testing.T) {
	p := CandidateProfile{Name: NameNotFound}
	assert.False(t, p.HasName())
	assert.Equal(t, "Candidate", p.DisplayName())

	p.Name = "Eliana Saunders"
	assert.True(t, p.HasName())
	assert.Equal(t, "Eliana Saunders", p.DisplayName())
}
