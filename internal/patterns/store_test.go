package patterns

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

func TestLookupQuestion(t *testing.T) {
	s := Seeded()

	tests := []struct {
		name   string
		skills []string
		want   string
		wantOK bool
	}{
		{"exact skill", []string{"react"}, SeedExamples[1].Question, true},
		{"skill contained in pattern skill", []string{"node"}, SeedExamples[0].Question, true},
		{"case insensitive", []string{"IOT"}, SeedExamples[2].Question, true},
		{"first matching profile skill wins", []string{"python", "javascript", "react"}, SeedExamples[3].Question, true},
		{"no match", []string{"rust", "kotlin"}, "", false},
		{"blank skill ignored", []string{"  "}, "", false},
		{"no skills", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.LookupQuestion(tt.skills)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupResponse(t *testing.T) {
	s := Seeded()

	tests := []struct {
		name   string
		answer string
		want   string
		wantOK bool
	}{
		{"keyword present", "I wrote the backend in Express", SeedExamples[0].Response, true},
		{"uppercase answer", "We used HOOKS a lot", SeedExamples[1].Response, true},
		{"earlier pattern wins", "a sensor API", SeedExamples[0].Response, true},
		{"no keyword", "I enjoy hiking", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := s.LookupResponse(tt.answer)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddExample(t *testing.T) {
	s := New(TrainingData{})

	ex := types.TrainingExample{
		Skill:    "Python",
		Question: "What's your experience with Python frameworks like Django or Flask?",
		Keywords: []string{"django", "flask"},
		Response: "Can you describe a Python project you're proud of?",
	}
	require.NoError(t, s.AddExample(ex))
	require.NoError(t, s.AddExample(ex))

	second := ex
	second.Skill = "python"
	second.Question = "How do you manage Python dependencies?"
	require.NoError(t, s.AddExample(second))

	data := s.Snapshot()
	require.Len(t, data.InterviewPatterns, 1)
	assert.Equal(t, "Python", data.InterviewPatterns[0].Skill)
	assert.Equal(t, []string{ex.Question, second.Question}, data.InterviewPatterns[0].Questions)
	assert.Len(t, data.ResponsePatterns, 3)

	q, ok := s.LookupQuestion([]string{"python"})
	require.True(t, ok)
	assert.Equal(t, ex.Question, q)
}

func TestAddExample_Invalid(t *testing.T) {
	s := New(TrainingData{})

	err := s.AddExample(types.TrainingExample{Skill: "Go", Question: "Why Go?"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid training example")
	assert.Empty(t, s.Snapshot().InterviewPatterns)
}

func TestSnapshotIsCopy(t *testing.T) {
	s := Seeded()
	snap := s.Snapshot()
	snap.InterviewPatterns[0].Questions[0] = "changed"

	q, _ := s.LookupQuestion([]string{"node"})
	assert.Equal(t, SeedExamples[0].Question, q)
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"training.json", "training.yaml", "nested/training.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			require.NoError(t, Seeded().SaveTo(path))

			loaded, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, path, loaded.Path())
			assert.Equal(t, Seeded().Snapshot(), loaded.Snapshot())
		})
	}
}

func TestLoad_MissingFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "training.json")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, s.Snapshot().InterviewPatterns)

	require.NoError(t, s.AddExample(SeedExamples[0]))
	require.NoError(t, s.Save())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"malformed json", "bad.json", "{not json", "failed to parse training data"},
		{"malformed yaml", "bad.yaml", "interview_patterns: [", "failed to parse training data"},
		{"empty keywords", "empty.json", `{"interview_patterns":[],"response_patterns":[{"keywords":[],"responses":["x"]}]}`, "invalid training data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSave_InMemoryStore(t *testing.T) {
	err := New(TrainingData{}).Save()
	require.Error(t, err)
}
