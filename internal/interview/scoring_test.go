package interview

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

var thoroughAnswer = strings.Repeat("I implement, design, develop, optimize, debug and test services. ", 5)

func TestParseScore(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantScore    int
		wantFeedback string
		wantOK       bool
	}{
		{"standard format", "Score: 8/10\nFeedback: Clear and accurate.", 8, "Clear and accurate.", true},
		{"spacing and case", "score: 7 / 10\nfeedback:   Good depth.  ", 7, "Good depth.", true},
		{"clamped high", "Score: 15/10\nFeedback: wow", 10, "wow", true},
		{"clamped low", "Score: 0/10\nFeedback: empty answer", 1, "empty answer", true},
		{"multi-line feedback", "Score: 6/10\nFeedback: Fine.\nCould mention tests.", 6, "Fine.\nCould mention tests.", true},
		{"missing feedback", "Score: 8/10", 0, "", false},
		{"empty feedback", "Score: 8/10\nFeedback:   ", 0, "", false},
		{"no score", "Great answer, well done.", 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, feedback, ok := ParseScore(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantScore, score)
			assert.Equal(t, tt.wantFeedback, feedback)
		})
	}
}

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   float64
	}{
		{"very short", "yes", 2.0},
		{"short padded with spaces", "   ok   ", 2.0},
		{"one sentence no keywords", "I like Go.", 0.7},
		{"keywords and sentence", "I design and test APIs.", 0.46 + 2 + 0.5},
		{"capped at ten", thoroughAnswer, 10.0},
		{"short in characters but not bytes", "über café", 2.0},
		{"length counted in characters", "日本語で設計とテストについて話します。", 19.0 / 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, HeuristicScore(tt.answer), 0.001)
		})
	}
}

func TestHeuristicResult(t *testing.T) {
	res := HeuristicResult(thoroughAnswer)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, MaxScore, res.MaxScore)
	assert.Equal(t, types.ScoreSourceHeuristic, res.Source)
	assert.Equal(t, FeedbackFor(10), res.Feedback)

	low := HeuristicResult("I like Go.")
	assert.Equal(t, 1, low.Score)
}

func TestScoreResponse_Provider(t *testing.T) {
	gen := &fakeGenerator{content: "Score: 7/10\nFeedback: Solid explanation."}
	iv := New(gen, nil, nil)

	res := iv.ScoreResponse(context.Background(), "What is a channel?", "A typed pipe between goroutines.", "go, docker")
	assert.Equal(t, types.ScoreResult{Score: 7, Feedback: "Solid explanation.", MaxScore: 10, Source: types.ScoreSourceProvider}, res)

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Question: What is a channel?")
	assert.Contains(t, gen.prompts[0], "Answer: A typed pipe between goroutines.")
	assert.Contains(t, gen.prompts[0], "Resume Context: go, docker")
	assert.Equal(t, llm.TierLite, gen.tiers[0])
}

func TestScoreResponse_FallsBackToHeuristic(t *testing.T) {
	tests := []struct {
		name string
		gen  Generator
	}{
		{"provider error", &fakeGenerator{err: errors.New("timeout")}},
		{"unparseable reply", &fakeGenerator{content: "Nice answer!"}},
		{"simple provider", llm.NewSimpleClient()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv := New(tt.gen, nil, nil)
			res := iv.ScoreResponse(context.Background(), "q", thoroughAnswer, "")
			assert.Equal(t, types.ScoreSourceHeuristic, res.Source)
			assert.Equal(t, 10, res.Score)
		})
	}
}

func TestScoreResponse_LogsProviderFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	iv := New(&fakeGenerator{err: errors.New("timeout")}, nil, zap.New(core))

	iv.ScoreResponse(context.Background(), "q", "a short answer", "")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "scoring provider failed, using heuristic", logs.All()[0].Message)
}
