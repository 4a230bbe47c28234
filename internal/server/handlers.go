package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// AnswerResponse is returned by POST /interviews/{session_id}/answers.
type AnswerResponse struct {
	SessionID      string            `json:"session_id"`
	QuestionID     string            `json:"question_id"`
	Score          types.ScoreResult `json:"score"`
	Acknowledgment string            `json:"acknowledgment"`
	Answered       int               `json:"answered"`
}

// SubmitInterviewResponse is returned by POST /submit-interview.
type SubmitInterviewResponse struct {
	SessionID string                  `json:"session_id"`
	Analysis  types.InterviewAnalysis `json:"analysis"`
}

// ListResponse wraps resume listings.
type ListResponse struct {
	Resumes []types.ResumeRecord `json:"resumes"`
	Count   int                  `json:"count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Health(r.Context()); err != nil {
		s.jsonResponse(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "degraded",
			Database: "unavailable",
			Error:    err.Error(),
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok", Database: "ok"})
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(s.maxUploadBytes + multipartOverhead); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			s.serviceError(w, r, err)
			return
		}
		s.errorResponse(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}

	result, err := s.svc.UploadResume(r.Context(), header.Filename, data)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleIngestURL(w http.ResponseWriter, r *http.Request) {
	var req types.IngestURLRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	result, err := s.svc.IngestURL(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.queryLimit(w, r)
	if !ok {
		return
	}

	records, err := s.svc.ListResumes(r.Context(), limit)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListResponse{Resumes: records, Count: len(records)})
}

func (s *Server) handleSearchResumes(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.queryLimit(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	query := types.ResumeQuery{
		Name:   strings.TrimSpace(q.Get("name")),
		Email:  strings.TrimSpace(q.Get("email")),
		Skills: splitList(q.Get("skills")),
		Limit:  limit,
	}

	records, err := s.svc.SearchResumes(r.Context(), query)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, ListResponse{Resumes: records, Count: len(records)})
}

func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	rec, err := s.svc.GetResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	session, err := s.svc.GetSession(r.Context(), r.PathValue("session_id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, session)
}

func (s *Server) handleNextQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := s.svc.NextQuestion(r.Context(), r.PathValue("session_id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, q)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.AnswerRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	sessionID := r.PathValue("session_id")
	result, err := s.svc.SubmitAnswer(r.Context(), sessionID, req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, AnswerResponse{
		SessionID:      sessionID,
		QuestionID:     req.QuestionID,
		Score:          result.Score,
		Acknowledgment: result.Acknowledgment,
		Answered:       result.Answered,
	})
}

func (s *Server) handleSubmitInterview(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitInterviewRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	analysis, err := s.svc.SubmitInterview(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, SubmitInterviewResponse{SessionID: req.SessionID, Analysis: *analysis})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req types.ScoreRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	result, err := s.svc.ScoreAnswer(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result)
}

func (s *Server) handleTraining(w http.ResponseWriter, r *http.Request) {
	var ex types.TrainingExample
	if !s.decodeJSON(w, r, &ex) {
		return
	}

	if err := s.svc.AddTrainingExample(ex); err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, map[string]string{"status": "added", "skill": ex.Skill})
}

// decodeJSON reads a JSON body into dst, writing a 400 on failure.
func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		s.serviceError(w, r, fmt.Errorf("%w: %v", ErrInvalidBody, err))
		return false
	}
	return true
}

func (s *Server) queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		s.errorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
		return 0, false
	}
	return limit, true
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
