package interview

import (
	"context"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
	"github.com/omkar-nanda-ditstek/AI/internal/prompts"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// MaxScore is the top of the scoring scale.
const MaxScore = 10

var (
	scorePattern    = regexp.MustCompile(`(?i)score:\s*(\d+)\s*/\s*10`)
	feedbackPattern = regexp.MustCompile(`(?is)feedback:\s*(.+)`)
	sentenceEnd     = regexp.MustCompile(`[.!?]+`)
)

var technicalKeywords = []string{"implement", "design", "develop", "optimize", "debug", "test"}

// ScoreResponse rates one answer. The provider is asked first; when it fails
// or its reply has no "Score: N/10" and "Feedback:" pair the heuristic scorer
// is used instead, so this never fails.
func (iv *Interviewer) ScoreResponse(ctx context.Context, question, answer, resumeContext string) types.ScoreResult {
	prompt, err := prompts.Render(prompts.Interview, "score-response", map[string]string{
		"Question": question,
		"Answer":   answer,
		"Context":  resumeContext,
	})
	if err == nil {
		var resp string
		resp, err = iv.gen.GenerateContent(ctx, prompt, llm.TierLite)
		if err == nil {
			if score, feedback, ok := ParseScore(resp); ok {
				return types.ScoreResult{Score: score, Feedback: feedback, MaxScore: MaxScore, Source: types.ScoreSourceProvider}
			}
			iv.logger.Debug("unparseable score response", zap.String("response", resp))
		}
	}
	if err != nil {
		iv.logger.Warn("scoring provider failed, using heuristic", zap.Error(err))
	}
	return HeuristicResult(answer)
}

// ParseScore reads a "Score: N/10" line and the text after "Feedback:".
// Scores outside 1..10 are clamped.
func ParseScore(text string) (int, string, bool) {
	m := scorePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	score, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, "", false
	}
	f := feedbackPattern.FindStringSubmatch(text)
	if f == nil {
		return 0, "", false
	}
	feedback := strings.TrimSpace(f[1])
	if feedback == "" {
		return 0, "", false
	}
	return clampScore(score), feedback, true
}

// HeuristicScore rates an answer from its length, technical verbs and
// sentence count, on a 0..10 scale.
func HeuristicScore(answer string) float64 {
	answer = strings.TrimSpace(answer)
	length := utf8.RuneCountInString(answer)
	if length < 10 {
		return 2.0
	}

	base := math.Min(5.0, float64(length)/50)

	lower := strings.ToLower(answer)
	keywords := 0.0
	for _, kw := range technicalKeywords {
		if strings.Contains(lower, kw) {
			keywords++
		}
	}

	sentences := float64(len(sentenceEnd.FindAllString(answer, -1)))
	structure := math.Min(2.0, sentences*0.5)

	return math.Min(MaxScore, base+keywords+structure)
}

// HeuristicResult wraps HeuristicScore as a ScoreResult.
func HeuristicResult(answer string) types.ScoreResult {
	score := HeuristicScore(answer)
	return types.ScoreResult{
		Score:    clampScore(int(math.Round(score))),
		Feedback: FeedbackFor(score),
		MaxScore: MaxScore,
		Source:   types.ScoreSourceHeuristic,
	}
}

func clampScore(score int) int {
	switch {
	case score < 1:
		return 1
	case score > MaxScore:
		return MaxScore
	default:
		return score
	}
}
