package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/omkar-nanda-ditstek/AI/internal/config"
	"github.com/omkar-nanda-ditstek/AI/internal/patterns"
	"github.com/omkar-nanda-ditstek/AI/internal/service"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

const testResume = "Priya Raman\nPlatform Engineer\npriya.raman@gmail.com\nSkills: Go, Docker, Redis\n2015 - 2023\n"

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// testConfig returns the default config wired to the in-memory backend and
// the simple provider.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Storage.Backend = config.BackendMemory
	cfg.LLM.Provider = "simple"
	cfg.Interview.TrainingFile = filepath.Join(t.TempDir(), "training_data.json")
	cfg.Interview.SeedPatterns = true
	cfg.Interview.FallbackQuestions = true
	return cfg
}

// scriptedAnswerer replays fixed answers.
type scriptedAnswerer struct {
	answers  []string
	more     bool
	asked    []types.GeneratedQuestion
	finishAt int
}

func (s *scriptedAnswerer) Answer(q types.GeneratedQuestion) (string, error) {
	s.asked = append(s.asked, q)
	if s.finishAt > 0 && len(s.asked) == s.finishAt {
		return "", errFinish
	}
	return s.answers[(len(s.asked)-1)%len(s.answers)], nil
}

func (s *scriptedAnswerer) Continue() (bool, error) {
	return s.more, nil
}

func TestLoadPatterns_SeedsMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.yaml")

	store, err := loadPatterns(config.InterviewConfig{TrainingFile: path, SeedPatterns: true}, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, store.Snapshot().InterviewPatterns, len(patterns.SeedExamples))
	assert.FileExists(t, path)

	reloaded, err := patterns.Load(path)
	require.NoError(t, err)
	q, ok := reloaded.LookupQuestion([]string{"react"})
	assert.True(t, ok)
	assert.Contains(t, q, "React")
}

func TestLoadPatterns_NoSeeding(t *testing.T) {
	store, err := loadPatterns(config.InterviewConfig{TrainingFile: filepath.Join(t.TempDir(), "t.json")}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, store.Snapshot().InterviewPatterns)

	store, err = loadPatterns(config.InterviewConfig{SeedPatterns: true}, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, store.Path())
	assert.NotEmpty(t, store.Snapshot().InterviewPatterns)
}

func TestLoadPatterns_InvalidFile(t *testing.T) {
	path := writeTemp(t, "broken.json", "{not json")

	_, err := loadPatterns(config.InterviewConfig{TrainingFile: path}, zap.NewNop())
	assert.Error(t, err)
}

func TestOpenRepository(t *testing.T) {
	repo, closeFn, err := openRepository(context.Background(), config.StorageConfig{Backend: config.BackendMemory}, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()
	assert.IsType(t, &service.MemoryRepository{}, repo)

	_, _, err = openRepository(context.Background(), config.StorageConfig{Backend: "cassandra"}, zap.NewNop())
	assert.ErrorContains(t, err, "unknown storage backend")
}

func TestAddTrainingExample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	ex := types.TrainingExample{
		Skill:    "Terraform",
		Question: "How do you structure Terraform modules?",
		Keywords: []string{"module", "state"},
		Response: "How do you manage remote state?",
	}

	total, err := addTrainingExample(path, ex)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	ex.Question = "How do you test Terraform changes?"
	total, err = addTrainingExample(path, ex)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	_, err = addTrainingExample("", ex)
	assert.Error(t, err)

	_, err = addTrainingExample(path, types.TrainingExample{Skill: "Go"})
	assert.Error(t, err)
}

func TestRunInterview(t *testing.T) {
	cfg := testConfig(t)
	a, err := newApp(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	path := writeTemp(t, "priya.txt", testResume)
	in := &scriptedAnswerer{
		answers: []string{"I built container platforms with Go and Docker for several teams."},
		more:    true,
	}
	var out bytes.Buffer

	require.NoError(t, runInterview(context.Background(), a.svc, path, in, &out, 8))

	require.Len(t, in.asked, 8)
	assert.Equal(t, "intro_1", in.asked[0].ID)
	assert.Contains(t, in.asked[0].Question, "Priya Raman")
	assert.Equal(t, types.PhaseAdvanced, in.asked[5].Type)
	assert.Equal(t, "technical_8", in.asked[7].ID)

	output := out.String()
	assert.Contains(t, output, "PARSED RESUME")
	assert.Contains(t, output, "INTERVIEW ANALYSIS")
	assert.Equal(t, 8, strings.Count(output, "Score: "))

	records, err := a.svc.ListResumes(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	session, err := a.svc.GetSession(context.Background(), records[0].SessionID)
	require.NoError(t, err)
	assert.Equal(t, types.SessionCompleted, session.Status)
	assert.Len(t, session.Responses, 8)
	require.NotNil(t, session.Analysis)
}

func TestRunInterview_StopsAtSeededQuestions(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	in := &scriptedAnswerer{answers: []string{"Yes."}}
	var out bytes.Buffer
	require.NoError(t, runInterview(context.Background(), a.svc, writeTemp(t, "r.txt", testResume), in, &out, 20))

	assert.Len(t, in.asked, 6)
}

func TestRunInterview_FinishEarly(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	in := &scriptedAnswerer{answers: []string{"Mostly backend work."}, finishAt: 3}
	var out bytes.Buffer
	require.NoError(t, runInterview(context.Background(), a.svc, writeTemp(t, "r.txt", testResume), in, &out, 10))

	records, err := a.svc.ListResumes(context.Background(), 0)
	require.NoError(t, err)
	session, err := a.svc.GetSession(context.Background(), records[0].SessionID)
	require.NoError(t, err)
	assert.Len(t, session.Responses, 2)
	assert.Len(t, session.Analysis.DetailedScores, 2)
}

func TestRunInterview_MissingFile(t *testing.T) {
	a, err := newApp(context.Background(), testConfig(t), zap.NewNop())
	require.NoError(t, err)
	defer a.Close()

	err = runInterview(context.Background(), a.svc, filepath.Join(t.TempDir(), "nope.pdf"), &scriptedAnswerer{}, &bytes.Buffer{}, 1)
	assert.ErrorContains(t, err, "failed to read resume")
}

func TestWriteParseResults(t *testing.T) {
	results := []service.ParseResult{
		{Path: "a.txt", Profile: types.CandidateProfile{Name: "Ana Silva", Skills: []string{"go"}}},
		{Path: "b.png", Err: os.ErrNotExist},
	}

	var buf bytes.Buffer
	require.NoError(t, writeParseResults(&buf, results))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "a.txt", decoded[0]["path"])
	assert.NotContains(t, decoded[0], "error")
	assert.Equal(t, "file does not exist", decoded[1]["error"])
}

func TestCommands(t *testing.T) {
	resume := writeTemp(t, "priya.txt", testResume)
	outPath := filepath.Join(t.TempDir(), "out.json")

	tests := []struct {
		name    string
		args    []string
		wantErr string
		check   func(t *testing.T, stdout string)
	}{
		{
			name: "version",
			args: []string{"version"},
			check: func(t *testing.T, stdout string) {
				assert.Contains(t, stdout, "interview_agent dev")
			},
		},
		{
			name: "parse to file",
			args: []string{"parse", resume, "--out", outPath, "--workers", "2"},
			check: func(t *testing.T, _ string) {
				raw, err := os.ReadFile(outPath)
				require.NoError(t, err)
				assert.Contains(t, string(raw), "priya.raman@gmail.com")
			},
		},
		{
			name:    "parse requires files",
			args:    []string{"parse"},
			wantErr: "requires at least 1 arg",
		},
		{
			name:    "parse all failing",
			args:    []string{"parse", filepath.Join(t.TempDir(), "missing.txt"), "--out", filepath.Join(t.TempDir(), "x.json")},
			wantErr: "all 1 files failed",
		},
		{
			name:    "train missing flags",
			args:    []string{"train", "--skill", "Go"},
			wantErr: "required flag(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout bytes.Buffer
			rootCmd.SetOut(&stdout)
			rootCmd.SetErr(&bytes.Buffer{})
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() {
				rootCmd.SetOut(nil)
				rootCmd.SetErr(nil)
				rootCmd.SetArgs(nil)
			})

			err := rootCmd.Execute()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, stdout.String())
			}
		})
	}
}
