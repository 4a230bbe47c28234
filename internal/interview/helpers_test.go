package interview

import (
	"context"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/llm"
)

type fakeGenerator struct {
	content string
	json    string
	err     error
	prompts []string
	tiers   []llm.ModelTier
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.content, f.err
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.tiers = append(f.tiers, tier)
	return f.json, f.err
}

type fakePatterns struct {
	questions map[string]string
	responses map[string]string
}

func (f *fakePatterns) LookupQuestion(skills []string) (string, bool) {
	for _, s := range skills {
		if q, ok := f.questions[s]; ok {
			return q, true
		}
	}
	return "", false
}

func (f *fakePatterns) LookupResponse(answer string) (string, bool) {
	lower := strings.ToLower(answer)
	for kw, resp := range f.responses {
		if strings.Contains(lower, kw) {
			return resp, true
		}
	}
	return "", false
}
