package interview

import (
	"math"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// Ratings from best to worst.
const (
	RatingExcellent        = "Excellent"
	RatingGood             = "Good"
	RatingAverage          = "Average"
	RatingNeedsImprovement = "Needs Improvement"
)

// AnalyzeResponses scores every answer with the heuristic scorer and
// summarizes the interview.
func AnalyzeResponses(responses []types.SubmittedResponse) types.InterviewAnalysis {
	detailed := make(map[string]float64, len(responses))
	total := 0.0
	for _, r := range responses {
		score := HeuristicScore(strings.TrimSpace(r.Answer))
		detailed[r.QuestionID] = score
		total += score
	}

	avg := 0.0
	if len(responses) > 0 {
		avg = total / float64(len(responses))
	}

	return types.InterviewAnalysis{
		OverallScore:   math.Round(avg*100) / 100,
		DetailedScores: detailed,
		Rating:         Rating(avg),
		Feedback:       FeedbackFor(avg),
	}
}

// Rating buckets an average score.
func Rating(score float64) string {
	switch {
	case score >= 8:
		return RatingExcellent
	case score >= 6:
		return RatingGood
	case score >= 4:
		return RatingAverage
	default:
		return RatingNeedsImprovement
	}
}

// FeedbackFor returns the summary sentence for a score.
func FeedbackFor(score float64) string {
	switch {
	case score >= 8:
		return "Strong technical knowledge and communication skills demonstrated."
	case score >= 6:
		return "Good understanding with room for more detailed explanations."
	case score >= 4:
		return "Basic knowledge shown, consider providing more specific examples."
	default:
		return "Responses need more depth and technical detail."
	}
}
