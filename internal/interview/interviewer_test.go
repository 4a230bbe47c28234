package interview

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

func sampleProfile() types.CandidateProfile {
	return types.CandidateProfile{
		Name:       "Jane Doe",
		Skills:     []string{"docker", "go", "kubernetes", "postgresql", "react", "redis"},
		Experience: "4 years",
	}
}

func TestComposeNextQuestion(t *testing.T) {
	gen := &fakeGenerator{content: "\n  \"How do goroutines differ from threads?\"  \nSecond line"}
	iv := New(gen, nil, zap.NewNop())

	q, err := iv.ComposeNextQuestion(context.Background(), sampleProfile(), nil, 0)
	require.NoError(t, err)

	assert.Equal(t, "introduction_1", q.ID)
	assert.Equal(t, types.PhaseIntroduction, q.Type)
	assert.Equal(t, "How do goroutines differ from threads?", q.Question)
	assert.Equal(t, types.QuestionDuration, q.Duration)

	require.Len(t, gen.prompts, 1)
	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "Candidate: Jane Doe")
	assert.Contains(t, prompt, "docker, go, kubernetes, postgresql, react, redis")
	assert.Contains(t, prompt, "Keep a warm, professional tone.")
	assert.Contains(t, prompt, "their background, motivation")
	assert.Contains(t, prompt, "(no questions asked yet)")
	assert.NotContains(t, prompt, "{{.")
	assert.Equal(t, llm.TierStandard, gen.tiers[0])
}

func TestComposeNextQuestion_UsesMoodAndTranscript(t *testing.T) {
	gen := &fakeGenerator{content: "What would you change next time?"}
	iv := New(gen, nil, nil)

	history := []types.ConversationTurn{
		{Question: "Tell me about a hard bug.", Answer: "I failed to fix it and got stuck for days"},
	}
	q, err := iv.ComposeNextQuestion(context.Background(), sampleProfile(), history, 7)
	require.NoError(t, err)

	assert.Equal(t, "technical_8", q.ID)
	assert.Equal(t, types.PhaseTechnical, q.Type)

	prompt := gen.prompts[0]
	assert.Contains(t, prompt, "discouraged")
	assert.Contains(t, prompt, "Q1: Tell me about a hard bug.")
	assert.Contains(t, prompt, "A1: I failed to fix it")
	assert.Contains(t, prompt, "hands-on scenarios")
}

func TestComposeNextQuestion_ToneByMood(t *testing.T) {
	const noCertainty = "Do not use superlatives or certainty language"

	tests := []struct {
		mood      types.Mood
		answer    string
		required  []string
		forbidden []string
	}{
		{
			mood:      types.MoodNegative,
			answer:    "I failed to fix it and got stuck for days",
			required:  []string{"Before asking anything, open with an empathetic acknowledgment", "That sounds tough"},
			forbidden: []string{"Celebratory phrasing"},
		},
		{
			mood:      types.MoodPositive,
			answer:    "I love this work and enjoy every release",
			required:  []string{"Celebratory phrasing", "That's great to hear!"},
			forbidden: []string{noCertainty, "empathetic acknowledgment"},
		},
		{
			mood:      types.MoodNervous,
			answer:    "Honestly I'm nervous and a bit anxious",
			required:  []string{"Reassure them first", "No pressure, take your time", noCertainty},
			forbidden: []string{"Celebratory phrasing"},
		},
		{
			mood:      types.MoodProud,
			answer:    "I'm proud that we launched it on schedule",
			required:  []string{"proud of an achievement", "unpack the decisions"},
			forbidden: []string{noCertainty, "Celebratory phrasing"},
		},
		{
			mood:      types.MoodUncertain,
			answer:    "I'm not sure, maybe it was the cache",
			required:  []string{"Reassure them", "It's fine not to know everything", noCertainty},
			forbidden: []string{"Celebratory phrasing"},
		},
		{
			mood:      types.MoodNeutral,
			answer:    "We use Go for the API layer.",
			required:  []string{"Keep a warm, professional tone."},
			forbidden: []string{noCertainty, "Celebratory phrasing", "empathetic acknowledgment"},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.mood), func(t *testing.T) {
			history := []types.ConversationTurn{{Question: "How did the last project go?", Answer: tt.answer}}
			require.Equal(t, tt.mood, DetectMood(history))

			gen := &fakeGenerator{content: "What did you learn from it?"}
			_, err := New(gen, nil, nil).ComposeNextQuestion(context.Background(), sampleProfile(), history, 3)
			require.NoError(t, err)

			require.Len(t, gen.prompts, 1)
			for _, want := range tt.required {
				assert.Contains(t, gen.prompts[0], want)
			}
			for _, unwanted := range tt.forbidden {
				assert.NotContains(t, gen.prompts[0], unwanted)
			}
		})
	}
}

func TestComposeNextQuestion_TrainedPatternSkipsProvider(t *testing.T) {
	gen := &fakeGenerator{content: "unused"}
	patterns := &fakePatterns{questions: map[string]string{"react": "What kind of React apps have you built?"}}
	iv := New(gen, patterns, nil)

	q, err := iv.ComposeNextQuestion(context.Background(), sampleProfile(), nil, 4)
	require.NoError(t, err)

	assert.Equal(t, "basics_5", q.ID)
	assert.Equal(t, types.PhaseBasics, q.Type)
	assert.Equal(t, "What kind of React apps have you built?", q.Question)
	assert.Empty(t, gen.prompts)
}

func TestComposeNextQuestion_Failures(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
	}{
		{"provider error", &fakeGenerator{err: errors.New("connection refused")}},
		{"blank response", &fakeGenerator{content: " \n\"\" \n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := New(tt.gen, nil, nil)
			_, err := iv.ComposeNextQuestion(context.Background(), sampleProfile(), nil, 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrGenerationFailed))

			var genErr *GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "compose", genErr.Op)
		})
	}
}

func TestComposeNextQuestion_DefaultsForEmptyProfile(t *testing.T) {
	gen := &fakeGenerator{content: "Tell me about yourself."}
	iv := New(gen, nil, nil)

	_, err := iv.ComposeNextQuestion(context.Background(), types.CandidateProfile{Name: types.NameNotFound}, nil, 0)
	require.NoError(t, err)
	assert.Contains(t, gen.prompts[0], "Candidate: Candidate")
	assert.Contains(t, gen.prompts[0], "general programming")
	assert.Contains(t, gen.prompts[0], "Experience: Not specified")
}

func TestFirstLine(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"\n\n  second  \nthird", "second"},
		{`"quoted question?"`, "quoted question?"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, firstLine(tt.in))
	}
}
