// Package schemas embeds the JSON Schemas for structured documents exchanged
// with generation providers and training files.
package schemas

import (
	"embed"
	"fmt"
)

// Schema file names.
const (
	QuestionBatch    = "question_batch.schema.json"
	TrainingData     = "training_data.schema.json"
	CandidateProfile = "candidate_profile.schema.json"
)

//go:embed *.schema.json
var files embed.FS

// Load returns the raw content of an embedded schema.
func Load(name string) (string, error) {
	b, err := files.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("failed to read schema %s: %w", name, err)
	}
	return string(b), nil
}

// Names lists the embedded schemas.
func Names() []string {
	return []string{QuestionBatch, TrainingData, CandidateProfile}
}
