package types

import "github.com/go-playground/validator/v10"

// InterviewPhase is one of the four fixed stages of a structured interview.
type InterviewPhase string

// Interview phases in progression order.
const (
	PhaseIntroduction InterviewPhase = "introduction"
	PhaseBasics       InterviewPhase = "basics"
	PhaseTechnical    InterviewPhase = "technical"
	PhaseAdvanced     InterviewPhase = "advanced"
)

// Mood is a coarse emotional classification of the latest candidate answer.
type Mood string

// Supported moods. MoodNeutral is returned when no keyword matched.
const (
	MoodNegative  Mood = "negative"
	MoodPositive  Mood = "positive"
	MoodNervous   Mood = "nervous"
	MoodProud     Mood = "proud"
	MoodUncertain Mood = "uncertain"
	MoodNeutral   Mood = "neutral"
)

// QuestionDuration is the answer budget in minutes for every generated question.
const QuestionDuration = 5

// ConversationTurn is one answered question in an interview transcript.
type ConversationTurn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GeneratedQuestion is a single interview question produced by the composer,
// the bulk generator, the pattern store or the static bank.
type GeneratedQuestion struct {
	ID       string         `json:"id" bson:"id" validate:"required"`
	Type     InterviewPhase `json:"type" bson:"type" validate:"required,oneof=introduction basics technical advanced"`
	Question string         `json:"question" bson:"question" validate:"required"`
	Duration int            `json:"duration" bson:"duration" validate:"gte=1"`
}

// Validate validates the GeneratedQuestion using the validator.
func (q *GeneratedQuestion) Validate() error {
	validate := validator.New()
	return validate.Struct(q)
}

// ScoreResult is the outcome of scoring one answer.
type ScoreResult struct {
	Score    int    `json:"score" bson:"score"`
	Feedback string `json:"feedback" bson:"feedback"`
	MaxScore int    `json:"max_score" bson:"max_score"`
	// Source is "provider" when the generation backend produced the score
	// and "heuristic" when the local scorer was used.
	Source string `json:"source" bson:"source"`
}

// Score sources.
const (
	ScoreSourceProvider  = "provider"
	ScoreSourceHeuristic = "heuristic"
)

// InterviewAnalysis summarizes all answers of a finished interview.
type InterviewAnalysis struct {
	OverallScore   float64            `json:"overall_score" bson:"overall_score"`
	DetailedScores map[string]float64 `json:"detailed_scores" bson:"detailed_scores"`
	Rating         string             `json:"rating" bson:"rating"`
	Feedback       string             `json:"feedback" bson:"feedback"`
}
