// Package types provides type definitions for structured data shared by the
// ingestion, interview, storage and HTTP layers.
package types

// NameNotFound is returned in place of a candidate name when no tier of the
// name extractor produced a plausible person name.
const NameNotFound = "[Name not clearly visible in PDF]"

// ExperienceNotSpecified is the experience value used when no duration could
// be derived from the resume text.
const ExperienceNotSpecified = "Not specified"

// CandidateProfile is the structured record produced by field extraction.
// Every field is always populated, possibly with an empty or sentinel value.
type CandidateProfile struct {
	Name       string   `json:"name" bson:"name"`
	Email      string   `json:"email" bson:"email"`
	Phone      string   `json:"phone" bson:"phone"`
	Skills     []string `json:"skills" bson:"skills"`
	Experience string   `json:"experience" bson:"experience"`
	Education  []string `json:"education" bson:"education"`
	Projects   []string `json:"projects" bson:"projects"`
}

// HasName reports whether the extractor found a name rather than the sentinel.
func (p *CandidateProfile) HasName() bool {
	return p.Name != "" && p.Name != NameNotFound
}

// DisplayName returns the candidate name, or "Candidate" when it is unknown.
func (p *CandidateProfile) DisplayName() string {
	if p.HasName() {
		return p.Name
	}
	return "Candidate"
}
