// Package patterns stores trained interview patterns: canned questions keyed
// by skill and canned follow-ups keyed by answer keywords.
package patterns

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/omkar-nanda-ditstek/AI/internal/schemas"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// InterviewPattern lists trained questions for one skill.
type InterviewPattern struct {
	Skill     string   `json:"skill" yaml:"skill"`
	Questions []string `json:"questions" yaml:"questions"`
	FollowUps []string `json:"follow_ups" yaml:"follow_ups"`
}

// ResponsePattern maps answer keywords to follow-up responses.
type ResponsePattern struct {
	Keywords  []string `json:"keywords" yaml:"keywords"`
	Responses []string `json:"responses" yaml:"responses"`
}

// TrainingData is the on-disk shape of a pattern file.
type TrainingData struct {
	InterviewPatterns []InterviewPattern `json:"interview_patterns" yaml:"interview_patterns"`
	ResponsePatterns  []ResponsePattern  `json:"response_patterns" yaml:"response_patterns"`
}

// Store is a concurrency-safe pattern table, optionally backed by a file.
type Store struct {
	mu   sync.RWMutex
	data TrainingData
	path string
}

// New creates an in-memory store holding data.
func New(data TrainingData) *Store {
	return &Store{data: normalize(data)}
}

// Load reads a JSON or YAML pattern file, chosen by extension. A missing file
// yields an empty store that Save will create.
func Load(path string) (*Store, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &Store{data: normalize(TrainingData{}), path: path}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read training data: %w", err)
	}

	var data TrainingData
	if isYAML(path) {
		err = yaml.Unmarshal(raw, &data)
	} else {
		err = json.Unmarshal(raw, &data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse training data %s: %w", path, err)
	}

	data = normalize(data)
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("invalid training data %s: %w", path, err)
	}
	return &Store{data: data, path: path}, nil
}

// Path returns the backing file, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// LookupQuestion returns the first trained question whose skill contains one
// of skills, compared case-insensitively. A nil Store has no patterns.
func (s *Store) LookupQuestion(skills []string) (string, bool) {
	if s == nil {
		return "", false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, skill := range skills {
		needle := strings.ToLower(strings.TrimSpace(skill))
		if needle == "" {
			continue
		}
		for _, p := range s.data.InterviewPatterns {
			if strings.Contains(strings.ToLower(p.Skill), needle) && len(p.Questions) > 0 {
				return p.Questions[0], true
			}
		}
	}
	return "", false
}

// LookupResponse returns the first response whose keyword appears in answer.
func (s *Store) LookupResponse(answer string) (string, bool) {
	if s == nil {
		return "", false
	}
	lower := strings.ToLower(answer)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.data.ResponsePatterns {
		for _, kw := range p.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" && strings.Contains(lower, kw) && len(p.Responses) > 0 {
				return p.Responses[0], true
			}
		}
	}
	return "", false
}

// AddExample records a trained question under its skill, merging with an
// existing skill of the same name, and adds a keyword response pattern.
func (s *Store) AddExample(ex types.TrainingExample) error {
	if err := ex.Validate(); err != nil {
		return fmt.Errorf("invalid training example: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.data.InterviewPatterns {
		if strings.EqualFold(p.Skill, ex.Skill) {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.data.InterviewPatterns = append(s.data.InterviewPatterns, InterviewPattern{
			Skill:     ex.Skill,
			Questions: []string{},
			FollowUps: []string{},
		})
		idx = len(s.data.InterviewPatterns) - 1
	}

	pattern := &s.data.InterviewPatterns[idx]
	if !contains(pattern.Questions, ex.Question) {
		pattern.Questions = append(pattern.Questions, ex.Question)
	}

	s.data.ResponsePatterns = append(s.data.ResponsePatterns, ResponsePattern{
		Keywords:  append([]string(nil), ex.Keywords...),
		Responses: []string{ex.Response},
	})
	return nil
}

// Snapshot returns a deep copy of the stored patterns.
func (s *Store) Snapshot() TrainingData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := TrainingData{
		InterviewPatterns: make([]InterviewPattern, len(s.data.InterviewPatterns)),
		ResponsePatterns:  make([]ResponsePattern, len(s.data.ResponsePatterns)),
	}
	for i, p := range s.data.InterviewPatterns {
		out.InterviewPatterns[i] = InterviewPattern{
			Skill:     p.Skill,
			Questions: append([]string{}, p.Questions...),
			FollowUps: append([]string{}, p.FollowUps...),
		}
	}
	for i, p := range s.data.ResponsePatterns {
		out.ResponsePatterns[i] = ResponsePattern{
			Keywords:  append([]string{}, p.Keywords...),
			Responses: append([]string{}, p.Responses...),
		}
	}
	return out
}

// Save writes the store back to its file.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("pattern store has no backing file")
	}
	return s.SaveTo(s.path)
}

// SaveTo writes the store to path as JSON or YAML, chosen by extension.
func (s *Store) SaveTo(path string) error {
	data := s.Snapshot()

	var (
		out []byte
		err error
	)
	if isYAML(path) {
		out, err = yaml.Marshal(data)
	} else {
		out, err = json.MarshalIndent(data, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode training data: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write training data %s: %w", path, err)
	}
	return nil
}

func validate(data TrainingData) error {
	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode training data: %w", err)
	}
	return schemas.ValidateTrainingData(string(encoded))
}

func normalize(data TrainingData) TrainingData {
	if data.InterviewPatterns == nil {
		data.InterviewPatterns = []InterviewPattern{}
	}
	if data.ResponsePatterns == nil {
		data.ResponsePatterns = []ResponsePattern{}
	}
	for i := range data.InterviewPatterns {
		if data.InterviewPatterns[i].Questions == nil {
			data.InterviewPatterns[i].Questions = []string{}
		}
		if data.InterviewPatterns[i].FollowUps == nil {
			data.InterviewPatterns[i].FollowUps = []string{}
		}
	}
	return data
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
