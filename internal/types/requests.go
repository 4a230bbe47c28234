package types

import "github.com/go-playground/validator/v10"

// AnswerRequest records a candidate answer to an asked question.
type AnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer" validate:"required"`
	TimeTaken  int    `json:"time_taken,omitempty" validate:"gte=0"`
}

// SubmittedResponse is one answer included in a bulk interview submission.
type SubmittedResponse struct {
	QuestionID string `json:"question_id" validate:"required"`
	Answer     string `json:"answer"`
}

// SubmitInterviewRequest finishes an interview. When Responses is empty the
// answers already recorded on the session are analyzed.
type SubmitInterviewRequest struct {
	SessionID string              `json:"session_id" validate:"required"`
	Responses []SubmittedResponse `json:"responses,omitempty" validate:"dive"`
}

// ScoreRequest asks for a single answer to be scored.
type ScoreRequest struct {
	Question string `json:"question" validate:"required"`
	Answer   string `json:"answer" validate:"required"`
}

// IngestURLRequest asks the server to fetch and parse a resume by URL.
type IngestURLRequest struct {
	URL        string `json:"url" validate:"required,url"`
	UseBrowser bool   `json:"use_browser,omitempty"`
}

// TrainingExample adds a skill question and a keyword response to the
// custom pattern store.
type TrainingExample struct {
	Skill    string   `json:"skill" yaml:"skill" validate:"required"`
	Question string   `json:"question" yaml:"question" validate:"required"`
	Keywords []string `json:"keywords" yaml:"keywords" validate:"required,min=1,dive,required"`
	Response string   `json:"response" yaml:"response" validate:"required"`
}

// Validate validates the AnswerRequest using the validator.
func (r *AnswerRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SubmitInterviewRequest using the validator.
func (r *SubmitInterviewRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ScoreRequest using the validator.
func (r *ScoreRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the IngestURLRequest using the validator.
func (r *IngestURLRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the TrainingExample using the validator.
func (r *TrainingExample) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
