// Package service ties ingestion, field extraction, the interviewer and
// persistence together into the operations exposed over HTTP and the CLI.
package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/extraction"
	"github.com/omkar-nanda-ditstek/AI/internal/fetch"
	"github.com/omkar-nanda-ditstek/AI/internal/ingestion"
	"github.com/omkar-nanda-ditstek/AI/internal/interview"
	"github.com/omkar-nanda-ditstek/AI/internal/patterns"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// Upload defaults.
const (
	DefaultMaxUploadBytes int64 = 10 << 20
	DefaultWorkers              = 4
)

// DefaultAllowedExtensions are the upload extensions accepted when none are
// configured.
var DefaultAllowedExtensions = []string{".pdf", ".docx", ".doc", ".txt"}

// Deps are the collaborators of a Service. Repo and Interviewer are
// required; a nil Extractor or Logger is replaced with a default.
type Deps struct {
	Repo        Repository
	Extractor   *ingestion.Extractor
	Interviewer *interview.Interviewer
	Patterns    *patterns.Store
	Logger      *zap.Logger
}

// Options tune upload limits and fallbacks.
type Options struct {
	MaxUploadBytes    int64
	AllowedExtensions []string
	// FallbackQuestions seeds a session with the static question bank when
	// bulk generation fails instead of failing the upload.
	FallbackQuestions bool
	// AllowBrowser permits URL ingestion to render pages in headless Chrome.
	AllowBrowser bool
	Workers      int
	Fetch        *fetch.Options
}

// Service implements resume ingestion and interview orchestration.
type Service struct {
	repo      Repository
	extractor *ingestion.Extractor
	iv        *interview.Interviewer
	patterns  *patterns.Store
	logger    *zap.Logger
	opts      Options
}

// UploadResult is returned by UploadResume and IngestURL.
type UploadResult struct {
	SessionID     string                    `json:"session_id"`
	ResumeID      string                    `json:"resume_id"`
	Profile       types.CandidateProfile    `json:"parsed_resume"`
	Questions     []types.GeneratedQuestion `json:"questions"`
	TextExtracted bool                      `json:"text_extracted"`
	Strategy      string                    `json:"strategy,omitempty"`
}

// AnswerResult is returned by SubmitAnswer.
type AnswerResult struct {
	Score          types.ScoreResult `json:"score"`
	Acknowledgment string            `json:"acknowledgment"`
	Answered       int               `json:"answered"`
}

// New creates a Service.
func New(deps Deps, opts Options) (*Service, error) {
	if deps.Repo == nil {
		return nil, errors.New("service requires a repository")
	}
	if deps.Interviewer == nil {
		return nil, errors.New("service requires an interviewer")
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	extractor := deps.Extractor
	if extractor == nil {
		extractor = ingestion.NewExtractor(logger)
	}
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if len(opts.AllowedExtensions) == 0 {
		opts.AllowedExtensions = DefaultAllowedExtensions
	}
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}

	return &Service{
		repo:      deps.Repo,
		extractor: extractor,
		iv:        deps.Interviewer,
		patterns:  deps.Patterns,
		logger:    logger,
		opts:      opts,
	}, nil
}

// UploadResume extracts a profile from an uploaded document, seeds an
// interview session for it and persists both.
func (s *Service) UploadResume(ctx context.Context, filename string, data []byte) (*UploadResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(s.opts.AllowedExtensions, ext) {
		return nil, &UnsupportedFileError{Filename: filename, Allowed: s.opts.AllowedExtensions}
	}
	if size := int64(len(data)); size > s.opts.MaxUploadBytes {
		return nil, &FileTooLargeError{Size: size, Max: s.opts.MaxUploadBytes}
	}

	res, err := s.extractor.Extract(data, ingestion.FormatFromFilename(filename))
	if err != nil {
		return nil, err
	}
	return s.ingestText(ctx, filename, res.Text, res.Strategy)
}

// IngestURL downloads a resume and handles it like an upload.
func (s *Service) IngestURL(ctx context.Context, req types.IngestURLRequest) (*UploadResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &InvalidRequestError{Message: "url", Cause: err}
	}

	doc, err := s.extractor.IngestFromURL(ctx, req.URL, ingestion.URLOptions{
		UseBrowser: req.UseBrowser && s.opts.AllowBrowser,
		Fetch:      s.opts.Fetch,
	})
	if err != nil {
		return nil, err
	}
	return s.ingestText(ctx, req.URL, doc.Text, doc.Metadata.Strategy)
}

func (s *Service) ingestText(ctx context.Context, source, text, strategy string) (*UploadResult, error) {
	profile := extraction.ExtractProfile(text)
	log := s.logger.With(zap.String("source", source))

	if profile.Email != "" {
		existing, err := s.repo.FindResumeByEmail(ctx, profile.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check for duplicate email: %w", err)
		}
		if existing != nil {
			return nil, &DuplicateEmailError{Email: profile.Email, ResumeID: existing.ID}
		}
	}

	questions, err := s.iv.GenerateInitialQuestions(ctx, profile)
	if err != nil {
		if !s.opts.FallbackQuestions {
			return nil, err
		}
		log.Warn("question generation failed, using static questions", zap.Error(err))
		questions = interview.StaticQuestions(profile)
	}

	sessionID := uuid.NewString()
	rec := &types.ResumeRecord{
		Filename:  source,
		SessionID: sessionID,
		Profile:   profile,
	}
	if err := s.repo.SaveResume(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save resume: %w", err)
	}

	session := &types.InterviewSession{
		SessionID:      sessionID,
		ResumeID:       rec.ID,
		CandidateName:  profile.DisplayName(),
		CandidateEmail: profile.Email,
		Profile:        profile,
		Questions:      questions,
		Responses:      []types.ResponseRecord{},
		Status:         types.SessionStarted,
	}
	if err := s.repo.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Info("resume ingested",
		zap.String("resume_id", rec.ID),
		zap.String("session_id", sessionID),
		zap.String("strategy", strategy),
		zap.Int("skills", len(profile.Skills)),
		zap.Int("questions", len(questions)))

	return &UploadResult{
		SessionID:     sessionID,
		ResumeID:      rec.ID,
		Profile:       profile,
		Questions:     questions,
		TextExtracted: strings.TrimSpace(text) != "",
		Strategy:      strategy,
	}, nil
}

// NextQuestion returns the question for the next unanswered position. Seeded
// questions are served in order, reworded for the candidate's mood; once
// they run out a new question is composed and stored on the session.
// Calling it again before answering returns the same question.
func (s *Service) NextQuestion(ctx context.Context, sessionID string) (types.GeneratedQuestion, error) {
	session, err := s.openSession(ctx, sessionID)
	if err != nil {
		return types.GeneratedQuestion{}, err
	}

	history := session.History()
	index := len(session.Responses)
	if q, ok := session.CurrentQuestion(); ok {
		q.Question = interview.AdaptQuestion(q.Question, interview.DetectMood(history))
		return q, nil
	}

	q, err := s.iv.ComposeNextQuestion(ctx, session.Profile, history, index)
	if err != nil {
		return types.GeneratedQuestion{}, err
	}

	session.Questions = append(session.Questions, q)
	session.Status = types.SessionInProgress
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return types.GeneratedQuestion{}, fmt.Errorf("failed to update session: %w", err)
	}
	return q, nil
}

// SubmitAnswer scores an answer, records it on the session and returns an
// acknowledgment for the candidate. Only the question currently being served
// can be answered, and only once.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID string, req types.AnswerRequest) (*AnswerResult, error) {
	if err := req.Validate(); err != nil {
		return nil, &InvalidRequestError{Message: "answer", Cause: err}
	}

	session, err := s.openSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	q, ok := session.FindQuestion(req.QuestionID)
	if !ok {
		return nil, &NotFoundError{Kind: "question", ID: req.QuestionID}
	}
	if session.Answered(q.ID) {
		return nil, &AnswerConflictError{SessionID: sessionID, QuestionID: q.ID, Answered: true}
	}
	if current, ok := session.CurrentQuestion(); !ok || current.ID != q.ID {
		return nil, &AnswerConflictError{SessionID: sessionID, QuestionID: q.ID, Current: current.ID}
	}

	score := s.iv.ScoreResponse(ctx, q.Question, req.Answer, ResumeContext(session.Profile))
	session.Responses = append(session.Responses, types.ResponseRecord{
		QuestionID:   q.ID,
		QuestionText: q.Question,
		QuestionType: q.Type,
		Answer:       req.Answer,
		AnswerLength: len([]rune(req.Answer)),
		TimeTaken:    req.TimeTaken,
		Score:        &score,
	})
	session.Status = types.SessionInProgress

	ack := s.iv.Acknowledge(session.History())
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	return &AnswerResult{Score: score, Acknowledgment: ack, Answered: len(session.Responses)}, nil
}

// SubmitInterview finishes a session. Submitted answers that were not
// recorded yet are stored first; the analysis covers every answer on the
// session.
func (s *Service) SubmitInterview(ctx context.Context, req types.SubmitInterviewRequest) (*types.InterviewAnalysis, error) {
	if err := req.Validate(); err != nil {
		return nil, &InvalidRequestError{Message: "submission", Cause: err}
	}

	session, err := s.getSession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == types.SessionAbandoned {
		return nil, &SessionClosedError{SessionID: session.SessionID, Status: string(session.Status)}
	}

	recordSubmitted(session, req.Responses)

	submitted := make([]types.SubmittedResponse, 0, len(session.Responses))
	for _, r := range session.Responses {
		submitted = append(submitted, types.SubmittedResponse{QuestionID: r.QuestionID, Answer: r.Answer})
	}

	analysis := interview.AnalyzeResponses(submitted)
	session.Analysis = &analysis
	session.Status = types.SessionCompleted
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	s.logger.Info("interview completed",
		zap.String("session_id", session.SessionID),
		zap.Float64("overall_score", analysis.OverallScore),
		zap.String("rating", analysis.Rating))
	return &analysis, nil
}

func recordSubmitted(session *types.InterviewSession, responses []types.SubmittedResponse) {
	answered := make(map[string]bool, len(session.Responses))
	for _, r := range session.Responses {
		answered[r.QuestionID] = true
	}
	for _, r := range responses {
		if answered[r.QuestionID] {
			continue
		}
		answered[r.QuestionID] = true

		rec := types.ResponseRecord{
			QuestionID:   r.QuestionID,
			Answer:       r.Answer,
			AnswerLength: len([]rune(r.Answer)),
		}
		if q, ok := session.FindQuestion(r.QuestionID); ok {
			rec.QuestionText = q.Question
			rec.QuestionType = q.Type
		}
		score := interview.HeuristicResult(r.Answer)
		rec.Score = &score
		session.Responses = append(session.Responses, rec)
	}
}

// ScoreAnswer scores a standalone question and answer pair.
func (s *Service) ScoreAnswer(ctx context.Context, req types.ScoreRequest) (types.ScoreResult, error) {
	if err := req.Validate(); err != nil {
		return types.ScoreResult{}, &InvalidRequestError{Message: "score", Cause: err}
	}
	return s.iv.ScoreResponse(ctx, req.Question, req.Answer, ""), nil
}

// AddTrainingExample stores a pattern example and writes the training file
// when the store was loaded from one.
func (s *Service) AddTrainingExample(ex types.TrainingExample) error {
	if s.patterns == nil {
		return errors.New("pattern store is not configured")
	}
	if err := s.patterns.AddExample(ex); err != nil {
		return &InvalidRequestError{Message: "training example", Cause: err}
	}
	if s.patterns.Path() == "" {
		return nil
	}
	if err := s.patterns.Save(); err != nil {
		return fmt.Errorf("failed to save training data: %w", err)
	}
	return nil
}

// GetResume returns a stored resume.
func (s *Service) GetResume(ctx context.Context, id string) (*types.ResumeRecord, error) {
	rec, err := s.repo.GetResume(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	if rec == nil {
		return nil, &NotFoundError{Kind: "resume", ID: id}
	}
	return rec, nil
}

// ListResumes returns the newest resumes.
func (s *Service) ListResumes(ctx context.Context, limit int) ([]types.ResumeRecord, error) {
	records, err := s.repo.ListResumes(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	return records, nil
}

// SearchResumes filters stored resumes.
func (s *Service) SearchResumes(ctx context.Context, q types.ResumeQuery) ([]types.ResumeRecord, error) {
	records, err := s.repo.SearchResumes(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	return records, nil
}

// GetSession returns a stored interview session.
func (s *Service) GetSession(ctx context.Context, id string) (*types.InterviewSession, error) {
	return s.getSession(ctx, id)
}

// Health checks the storage backend.
func (s *Service) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func (s *Service) getSession(ctx context.Context, id string) (*types.InterviewSession, error) {
	session, err := s.repo.GetSession(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, &NotFoundError{Kind: "session", ID: id}
	}
	return session, nil
}

func (s *Service) openSession(ctx context.Context, id string) (*types.InterviewSession, error) {
	session, err := s.getSession(ctx, id)
	if err != nil {
		return nil, err
	}
	switch session.Status {
	case types.SessionCompleted, types.SessionAbandoned:
		return nil, &SessionClosedError{SessionID: id, Status: string(session.Status)}
	}
	return session, nil
}

// ResumeContext summarizes a profile for the scoring prompt.
func ResumeContext(p types.CandidateProfile) string {
	skills := "none listed"
	if len(p.Skills) > 0 {
		skills = strings.Join(p.Skills, ", ")
	}
	return fmt.Sprintf("Candidate %s, experience %s, skills: %s", p.DisplayName(), p.Experience, skills)
}
