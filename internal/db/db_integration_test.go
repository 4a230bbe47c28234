//go:build integration
// +build integration

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// setupTestDB connects to TEST_DATABASE_URL and applies migrations.
func setupTestDB(t *testing.T) *DB {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("Skipping integration test: TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := Connect(ctx, dbURL)
	if err != nil {
		t.Skipf("Skipping integration test: failed to connect to DB: %v", err)
	}
	require.NoError(t, db.Migrate(ctx))
	t.Cleanup(db.Close)
	return db
}

func TestResumeCRUD_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	email := "jane-" + uuid.NewString() + "@example.com"
	rec := &types.ResumeRecord{
		Filename:  "jane.pdf",
		SessionID: uuid.NewString(),
		Profile: types.CandidateProfile{
			Name:       "Jane Doe",
			Email:      email,
			Skills:     []string{"go", "postgresql"},
			Experience: "4 years",
			Education:  []string{},
			Projects:   []string{},
		},
	}
	require.NoError(t, db.SaveResume(ctx, rec))
	require.NotEmpty(t, rec.ID)

	got, err := db.GetResume(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, rec.Profile, got.Profile)
	assert.Equal(t, "jane.pdf", got.Filename)

	byEmail, err := db.FindResumeByEmail(ctx, email)
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, rec.ID, byEmail.ID)

	found, err := db.SearchResumes(ctx, types.ResumeQuery{Email: email, Skills: []string{"GO"}})
	require.NoError(t, err)
	require.Len(t, found, 1)

	none, err := db.SearchResumes(ctx, types.ResumeQuery{Email: email, Skills: []string{"cobol"}})
	require.NoError(t, err)
	assert.Empty(t, none)

	missing, err := db.GetResume(ctx, uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	list, err := db.ListResumes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSessionLifecycle_Integration(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	s := &types.InterviewSession{
		SessionID:     uuid.NewString(),
		ResumeID:      uuid.NewString(),
		CandidateName: "Jane Doe",
		Questions: []types.GeneratedQuestion{
			{ID: "intro_1", Type: types.PhaseIntroduction, Question: "Tell me about yourself.", Duration: 5},
		},
	}
	require.NoError(t, db.CreateSession(ctx, s))
	assert.Equal(t, types.SessionStarted, s.Status)

	s.Responses = append(s.Responses, types.ResponseRecord{
		QuestionID: "intro_1", QuestionText: "Tell me about yourself.", Answer: "I build APIs.", AnswerLength: 13,
	})
	s.Status = types.SessionCompleted
	s.Analysis = &types.InterviewAnalysis{OverallScore: 4.2, Rating: "Average", DetailedScores: map[string]float64{"intro_1": 4.2}}
	require.NoError(t, db.UpdateSession(ctx, s))

	got, err := db.GetSession(ctx, s.SessionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, types.SessionCompleted, got.Status)
	assert.Equal(t, s.Questions, got.Questions)
	assert.Equal(t, s.Responses, got.Responses)
	require.NotNil(t, got.Analysis)
	assert.Equal(t, 4.2, got.Analysis.OverallScore)

	missing, err := db.GetSession(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = db.UpdateSession(ctx, &types.InterviewSession{SessionID: "nope"})
	assert.Error(t, err)
}

func TestSchemaVersion_Integration(t *testing.T) {
	db := setupTestDB(t)

	version, err := db.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)
}
