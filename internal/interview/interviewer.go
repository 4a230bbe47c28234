// Package interview drives an adaptive technical interview: it maps question
// indexes to phases, classifies the candidate's mood, composes prompts for
// the generation provider and scores answers.
package interview

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/logger"
	"github.com/omkar-nanda-ditstek/AI/internal/prompts"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

const (
	maxPromptSkills  = 5
	defaultSkillText = "general programming"
)

// Generator is the part of llm.Client the interviewer needs.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

// PatternLookup is a read-only view of the custom pattern store.
type PatternLookup interface {
	LookupQuestion(skills []string) (string, bool)
	LookupResponse(answer string) (string, bool)
}

// Interviewer composes questions and scores answers. It holds no per-session
// state and is safe for concurrent use when its collaborators are.
type Interviewer struct {
	gen      Generator
	patterns PatternLookup
	logger   *zap.Logger
}

// New creates an Interviewer. patterns may be nil.
func New(gen Generator, patterns PatternLookup, log *zap.Logger) *Interviewer {
	return &Interviewer{gen: gen, patterns: patterns, logger: logger.OrNop(log)}
}

// ComposeNextQuestion produces the question asked at index. A trained pattern
// for one of the candidate's skills is returned without calling the provider.
func (iv *Interviewer) ComposeNextQuestion(ctx context.Context, profile types.CandidateProfile, history []types.ConversationTurn, index int) (types.GeneratedQuestion, error) {
	phase := PhaseFor(index)
	mood := DetectMood(history)
	id := QuestionID(phase, index)

	if iv.patterns != nil {
		if q, ok := iv.patterns.LookupQuestion(profile.Skills); ok {
			iv.logger.Debug("using trained question", zap.String("question_id", id))
			return newQuestion(id, phase, q), nil
		}
	}

	prompt, err := buildNextQuestionPrompt(profile, history, index, phase, mood)
	if err != nil {
		return types.GeneratedQuestion{}, &GenerationError{Op: "compose", Message: "failed to build prompt", Cause: err}
	}

	resp, err := iv.gen.GenerateContent(ctx, prompt, llm.TierStandard)
	if err != nil {
		return types.GeneratedQuestion{}, &GenerationError{Op: "compose", Message: "provider call failed", Cause: err}
	}

	text := firstLine(resp)
	if text == "" {
		return types.GeneratedQuestion{}, &GenerationError{Op: "compose", Message: "provider returned no question"}
	}

	iv.logger.Debug("composed question",
		zap.String("question_id", id),
		zap.String("mood", string(mood)))
	return newQuestion(id, phase, text), nil
}

func newQuestion(id string, phase types.InterviewPhase, text string) types.GeneratedQuestion {
	return types.GeneratedQuestion{ID: id, Type: phase, Question: text, Duration: types.QuestionDuration}
}

func buildNextQuestionPrompt(profile types.CandidateProfile, history []types.ConversationTurn, index int, phase types.InterviewPhase, mood types.Mood) (string, error) {
	skills := skillText(profile.Skills, len(profile.Skills))

	contextBlock, err := prompts.Render(prompts.Interview, "context-block", map[string]string{
		"Name":       profile.DisplayName(),
		"Skills":     skills,
		"Experience": experienceText(profile),
		"Transcript": transcript(history),
	})
	if err != nil {
		return "", err
	}
	tone, err := prompts.Get(prompts.Interview, "tone-"+string(mood))
	if err != nil {
		return "", err
	}
	focus, err := prompts.Get(prompts.Interview, "focus-"+string(phase))
	if err != nil {
		return "", err
	}

	return prompts.Render(prompts.Interview, "next-question", map[string]string{
		"Context": contextBlock,
		"Number":  fmt.Sprintf("%d", index+1),
		"Phase":   string(phase),
		"Tone":    tone,
		"Focus":   focus,
		"Skills":  skills,
	})
}

func transcript(history []types.ConversationTurn) string {
	if len(history) == 0 {
		return "(no questions asked yet)"
	}
	var sb strings.Builder
	for i, turn := range history {
		fmt.Fprintf(&sb, "Q%d: %s\nA%d: %s\n", i+1, turn.Question, i+1, turn.Answer)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func skillText(skills []string, limit int) string {
	if len(skills) == 0 {
		return defaultSkillText
	}
	if len(skills) > limit {
		skills = skills[:limit]
	}
	return strings.Join(skills, ", ")
}

func experienceText(profile types.CandidateProfile) string {
	if profile.Experience == "" {
		return types.ExperienceNotSpecified
	}
	return profile.Experience
}

// firstLine returns the first non-empty line of a completion with quotes and
// surrounding whitespace removed.
func firstLine(resp string) string {
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(strings.ReplaceAll(line, `"`, ""))
		if line != "" {
			return line
		}
	}
	return ""
}
