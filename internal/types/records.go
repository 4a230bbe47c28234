package types

import "time"

// SessionStatus tracks the lifecycle of an interview session.
type SessionStatus string

// Session statuses.
const (
	SessionStarted    SessionStatus = "started"
	SessionInProgress SessionStatus = "in_progress"
	SessionCompleted  SessionStatus = "completed"
	SessionAbandoned  SessionStatus = "abandoned"
)

// ResumeRecord is a persisted parsed resume.
type ResumeRecord struct {
	ID        string           `json:"id"`
	Filename  string           `json:"filename"`
	SessionID string           `json:"session_id"`
	Profile   CandidateProfile `json:"parsed_data"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ResponseRecord is one answer stored on an interview session.
type ResponseRecord struct {
	QuestionID   string         `json:"question_id" bson:"question_id"`
	QuestionText string         `json:"question_text" bson:"question_text"`
	QuestionType InterviewPhase `json:"question_type" bson:"question_type"`
	Answer       string         `json:"answer" bson:"answer"`
	AnswerLength int            `json:"answer_length" bson:"answer_length"`
	TimeTaken    int            `json:"time_taken" bson:"time_taken"`
	Score        *ScoreResult   `json:"score,omitempty" bson:"score,omitempty"`
}

// InterviewSession is the persisted state of one interview. Responses are
// append-only; the transcript is derived from them in order.
type InterviewSession struct {
	SessionID      string              `json:"session_id"`
	ResumeID       string              `json:"resume_id"`
	CandidateName  string              `json:"candidate_name"`
	CandidateEmail string              `json:"candidate_email"`
	Profile        CandidateProfile    `json:"profile"`
	Questions      []GeneratedQuestion `json:"questions"`
	Responses      []ResponseRecord    `json:"responses"`
	Analysis       *InterviewAnalysis  `json:"analysis,omitempty"`
	Status         SessionStatus       `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// History returns the conversation transcript built from the recorded responses.
func (s *InterviewSession) History() []ConversationTurn {
	history := make([]ConversationTurn, 0, len(s.Responses))
	for _, r := range s.Responses {
		history = append(history, ConversationTurn{Question: r.QuestionText, Answer: r.Answer})
	}
	return history
}

// FindQuestion returns the asked question with the given ID.
func (s *InterviewSession) FindQuestion(id string) (GeneratedQuestion, bool) {
	for _, q := range s.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return GeneratedQuestion{}, false
}

// Answered reports whether a response is recorded for the question id.
func (s *InterviewSession) Answered(id string) bool {
	for _, r := range s.Responses {
		if r.QuestionID == id {
			return true
		}
	}
	return false
}

// CurrentQuestion returns the question being served: the first one without a
// response. It is false when every asked question is answered.
func (s *InterviewSession) CurrentQuestion() (GeneratedQuestion, bool) {
	if i := len(s.Responses); i < len(s.Questions) {
		return s.Questions[i], true
	}
	return GeneratedQuestion{}, false
}

// ResumeQuery holds optional resume search criteria. Empty fields are ignored.
type ResumeQuery struct {
	Name   string   `json:"name,omitempty"`
	Email  string   `json:"email,omitempty"`
	Skills []string `json:"skills,omitempty"`
	Limit  int      `json:"limit,omitempty"`
}
