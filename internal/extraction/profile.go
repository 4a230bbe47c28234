// Package extraction turns plain resume text into a structured candidate
// profile using pattern-matching heuristics.
//
// Every extractor is a pure function of its input. None of them fails: when a
// field cannot be found the documented default is returned instead (an empty
// string, an empty list, types.ExperienceNotSpecified or types.NameNotFound).
package extraction

import "github.com/omkar-nanda-ditstek/AI/internal/types"

// ExtractProfile runs every field extractor over text.
func ExtractProfile(text string) types.CandidateProfile {
	return types.CandidateProfile{
		Name:       ExtractName(text),
		Email:      ExtractEmail(text),
		Phone:      ExtractPhone(text),
		Skills:     ExtractSkills(text),
		Experience: ExtractExperience(text),
		Education:  ExtractEducation(text),
		Projects:   ExtractProjects(text),
	}
}
