package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// DefaultListLimit caps list and search results when no limit is given.
const DefaultListLimit = 50

// Repository persists resumes and interview sessions. Lookups of a missing
// record return nil and no error. db.DB, mongodb.Store and MemoryRepository
// implement it.
type Repository interface {
	SaveResume(ctx context.Context, rec *types.ResumeRecord) error
	GetResume(ctx context.Context, id string) (*types.ResumeRecord, error)
	FindResumeByEmail(ctx context.Context, email string) (*types.ResumeRecord, error)
	ListResumes(ctx context.Context, limit int) ([]types.ResumeRecord, error)
	SearchResumes(ctx context.Context, q types.ResumeQuery) ([]types.ResumeRecord, error)

	CreateSession(ctx context.Context, s *types.InterviewSession) error
	GetSession(ctx context.Context, id string) (*types.InterviewSession, error)
	UpdateSession(ctx context.Context, s *types.InterviewSession) error

	Ping(ctx context.Context) error
}

// MemoryRepository keeps records in process memory. Records are copied on the
// way in and out so callers never share state with the store.
type MemoryRepository struct {
	mu       sync.RWMutex
	resumes  map[string]types.ResumeRecord
	sessions map[string]types.InterviewSession
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		resumes:  make(map[string]types.ResumeRecord),
		sessions: make(map[string]types.InterviewSession),
	}
}

func (m *MemoryRepository) SaveResume(_ context.Context, rec *types.ResumeRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumes[rec.ID] = copyResume(*rec)
	return nil
}

func (m *MemoryRepository) GetResume(_ context.Context, id string) (*types.ResumeRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.resumes[id]
	if !ok {
		return nil, nil
	}
	out := copyResume(rec)
	return &out, nil
}

// FindResumeByEmail matches case-insensitively and returns the newest match.
func (m *MemoryRepository) FindResumeByEmail(_ context.Context, email string) (*types.ResumeRecord, error) {
	if email == "" {
		return nil, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	var found *types.ResumeRecord
	for _, rec := range m.resumes {
		if !strings.EqualFold(rec.Profile.Email, email) {
			continue
		}
		if found == nil || rec.CreatedAt.After(found.CreatedAt) {
			c := copyResume(rec)
			found = &c
		}
	}
	return found, nil
}

func (m *MemoryRepository) ListResumes(ctx context.Context, limit int) ([]types.ResumeRecord, error) {
	return m.SearchResumes(ctx, types.ResumeQuery{Limit: limit})
}

// SearchResumes applies the same criteria as the database backends: name and
// email are case-insensitive regular expressions and skills match when any
// of them is on the profile.
func (m *MemoryRepository) SearchResumes(_ context.Context, q types.ResumeQuery) ([]types.ResumeRecord, error) {
	var nameRe, emailRe *regexp.Regexp
	var err error
	if q.Name != "" {
		if nameRe, err = regexp.Compile("(?i)" + q.Name); err != nil {
			return nil, fmt.Errorf("invalid name pattern: %w", err)
		}
	}
	if q.Email != "" {
		if emailRe, err = regexp.Compile("(?i)" + q.Email); err != nil {
			return nil, fmt.Errorf("invalid email pattern: %w", err)
		}
	}

	m.mu.RLock()
	records := []types.ResumeRecord{}
	for _, rec := range m.resumes {
		if nameRe != nil && !nameRe.MatchString(rec.Profile.Name) {
			continue
		}
		if emailRe != nil && !emailRe.MatchString(rec.Profile.Email) {
			continue
		}
		if len(q.Skills) > 0 && !hasAnySkill(rec.Profile.Skills, q.Skills) {
			continue
		}
		records = append(records, copyResume(rec))
	}
	m.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (m *MemoryRepository) CreateSession(_ context.Context, s *types.InterviewSession) error {
	now := time.Now().UTC()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
	if s.Status == "" {
		s.Status = types.SessionStarted
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.sessions[s.SessionID]; exists {
		return fmt.Errorf("failed to create session: %s already exists", s.SessionID)
	}
	m.sessions[s.SessionID] = copySession(*s)
	return nil
}

func (m *MemoryRepository) GetSession(_ context.Context, id string) (*types.InterviewSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	out := copySession(s)
	return &out, nil
}

func (m *MemoryRepository) UpdateSession(_ context.Context, s *types.InterviewSession) error {
	s.UpdatedAt = time.Now().UTC()

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[s.SessionID]; !ok {
		return fmt.Errorf("session not found: %s", s.SessionID)
	}
	m.sessions[s.SessionID] = copySession(*s)
	return nil
}

func (m *MemoryRepository) Ping(context.Context) error {
	return nil
}

func hasAnySkill(have, want []string) bool {
	for _, w := range want {
		w = strings.ToLower(strings.TrimSpace(w))
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

func copyResume(rec types.ResumeRecord) types.ResumeRecord {
	rec.Profile = copyProfile(rec.Profile)
	return rec
}

func copyProfile(p types.CandidateProfile) types.CandidateProfile {
	p.Skills = append([]string(nil), p.Skills...)
	p.Education = append([]string(nil), p.Education...)
	p.Projects = append([]string(nil), p.Projects...)
	return p
}

func copySession(s types.InterviewSession) types.InterviewSession {
	s.Profile = copyProfile(s.Profile)
	s.Questions = append([]types.GeneratedQuestion(nil), s.Questions...)
	responses := make([]types.ResponseRecord, len(s.Responses))
	for i, r := range s.Responses {
		if r.Score != nil {
			score := *r.Score
			r.Score = &score
		}
		responses[i] = r
	}
	s.Responses = responses
	if s.Analysis != nil {
		a := *s.Analysis
		a.DetailedScores = make(map[string]float64, len(s.Analysis.DetailedScores))
		for k, v := range s.Analysis.DetailedScores {
			a.DetailedScores[k] = v
		}
		s.Analysis = &a
	}
	return s
}
