package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// DefaultListLimit caps resume listings when no limit is given.
const DefaultListLimit = 50

const resumeColumns = `id, filename, session_id, parsed_data, created_at, updated_at`

// SaveResume inserts or replaces a resume record. A missing ID is generated
// and missing timestamps are set to now.
func (db *DB) SaveResume(ctx context.Context, rec *types.ResumeRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return fmt.Errorf("invalid resume id %q: %w", rec.ID, err)
	}

	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now

	profileJSON, err := json.Marshal(rec.Profile)
	if err != nil {
		return fmt.Errorf("failed to marshal parsed resume: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO resumes (id, filename, session_id, name, email, skills, parsed_data, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (id) DO UPDATE SET
		     filename = $2, session_id = $3, name = $4, email = $5,
		     skills = $6, parsed_data = $7, updated_at = $9`,
		id, rec.Filename, rec.SessionID, rec.Profile.Name, rec.Profile.Email,
		nonNil(rec.Profile.Skills), profileJSON, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume: %w", err)
	}
	return nil
}

// GetResume returns the resume with id, or nil when it does not exist.
func (db *DB) GetResume(ctx context.Context, id string) (*types.ResumeRecord, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	row := db.pool.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, parsed)
	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return rec, nil
}

// FindResumeByEmail returns the newest resume whose email matches
// case-insensitively, or nil.
func (db *DB) FindResumeByEmail(ctx context.Context, email string) (*types.ResumeRecord, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes
		 WHERE LOWER(email) = LOWER($1)
		 ORDER BY created_at DESC LIMIT 1`,
		email,
	)
	rec, err := scanResume(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find resume by email: %w", err)
	}
	return rec, nil
}

// ListResumes returns the newest resumes first.
func (db *DB) ListResumes(ctx context.Context, limit int) ([]types.ResumeRecord, error) {
	return db.SearchResumes(ctx, types.ResumeQuery{Limit: limit})
}

// SearchResumes filters resumes by name and email pattern and by any of the
// given skills. Empty criteria are ignored.
func (db *DB) SearchResumes(ctx context.Context, q types.ResumeQuery) ([]types.ResumeRecord, error) {
	query, args := buildResumeSearch(q)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	defer rows.Close()

	records := []types.ResumeRecord{}
	for rows.Next() {
		rec, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to search resumes: %w", err)
	}
	return records, nil
}

func buildResumeSearch(q types.ResumeQuery) (string, []any) {
	limit := q.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE 1=1`
	args := []any{}
	argNum := 1

	if q.Name != "" {
		query += fmt.Sprintf(" AND name ~* $%d", argNum)
		args = append(args, q.Name)
		argNum++
	}
	if q.Email != "" {
		query += fmt.Sprintf(" AND email ~* $%d", argNum)
		args = append(args, q.Email)
		argNum++
	}
	if skills := lowerAll(q.Skills); len(skills) > 0 {
		query += fmt.Sprintf(" AND skills && $%d", argNum)
		args = append(args, skills)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, limit)
	return query, args
}

func scanResume(row pgx.Row) (*types.ResumeRecord, error) {
	var (
		rec         types.ResumeRecord
		id          uuid.UUID
		profileJSON []byte
	)
	if err := row.Scan(&id, &rec.Filename, &rec.SessionID, &profileJSON, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	rec.ID = id.String()
	if err := json.Unmarshal(profileJSON, &rec.Profile); err != nil {
		return nil, fmt.Errorf("failed to decode parsed resume: %w", err)
	}
	return &rec, nil
}

func lowerAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
