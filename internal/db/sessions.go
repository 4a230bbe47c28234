package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// CreateSession inserts a new interview session.
func (db *DB) CreateSession(ctx context.Context, s *types.InterviewSession) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = types.SessionStarted
	}

	cols, err := encodeSession(s)
	if err != nil {
		return err
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO interview_sessions
		     (session_id, resume_id, candidate_name, candidate_email, profile, questions, responses, analysis, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		s.SessionID, s.ResumeID, s.CandidateName, s.CandidateEmail,
		cols.profile, cols.questions, cols.responses, cols.analysis,
		string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// GetSession returns the session with id, or nil when it does not exist.
func (db *DB) GetSession(ctx context.Context, id string) (*types.InterviewSession, error) {
	var (
		s                                       types.InterviewSession
		status                                  string
		profile, questions, responses, analysis []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT session_id, resume_id, candidate_name, candidate_email, profile, questions,
		        responses, analysis, status, created_at, updated_at
		 FROM interview_sessions WHERE session_id = $1`,
		id,
	).Scan(&s.SessionID, &s.ResumeID, &s.CandidateName, &s.CandidateEmail,
		&profile, &questions, &responses, &analysis, &status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	s.Status = types.SessionStatus(status)
	if err := json.Unmarshal(profile, &s.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode session profile: %w", err)
	}
	if err := json.Unmarshal(questions, &s.Questions); err != nil {
		return nil, fmt.Errorf("failed to decode session questions: %w", err)
	}
	if err := json.Unmarshal(responses, &s.Responses); err != nil {
		return nil, fmt.Errorf("failed to decode session responses: %w", err)
	}
	if len(analysis) > 0 {
		s.Analysis = &types.InterviewAnalysis{}
		if err := json.Unmarshal(analysis, s.Analysis); err != nil {
			return nil, fmt.Errorf("failed to decode session analysis: %w", err)
		}
	}
	return &s, nil
}

// UpdateSession replaces the mutable fields of an existing session.
func (db *DB) UpdateSession(ctx context.Context, s *types.InterviewSession) error {
	s.UpdatedAt = time.Now().UTC()

	cols, err := encodeSession(s)
	if err != nil {
		return err
	}

	result, err := db.pool.Exec(ctx,
		`UPDATE interview_sessions
		 SET questions = $2, responses = $3, analysis = $4, status = $5, updated_at = $6
		 WHERE session_id = $1`,
		s.SessionID, cols.questions, cols.responses, cols.analysis, string(s.Status), s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("session not found: %s", s.SessionID)
	}
	return nil
}

type sessionColumns struct {
	profile, questions, responses, analysis []byte
}

func encodeSession(s *types.InterviewSession) (sessionColumns, error) {
	var (
		cols sessionColumns
		err  error
	)
	if cols.profile, err = json.Marshal(s.Profile); err != nil {
		return cols, fmt.Errorf("failed to marshal session profile: %w", err)
	}
	questions := s.Questions
	if questions == nil {
		questions = []types.GeneratedQuestion{}
	}
	if cols.questions, err = json.Marshal(questions); err != nil {
		return cols, fmt.Errorf("failed to marshal session questions: %w", err)
	}
	responses := s.Responses
	if responses == nil {
		responses = []types.ResponseRecord{}
	}
	if cols.responses, err = json.Marshal(responses); err != nil {
		return cols, fmt.Errorf("failed to marshal session responses: %w", err)
	}
	if s.Analysis != nil {
		if cols.analysis, err = json.Marshal(s.Analysis); err != nil {
			return cols, fmt.Errorf("failed to marshal session analysis: %w", err)
		}
	}
	return cols, nil
}
