package interview

import (
	"fmt"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// StaticQuestions returns the fixed six-question interview, personalized
// with the candidate name and first listed skill. Callers use it when bulk
// generation fails and fallback questions are enabled.
func StaticQuestions(profile types.CandidateProfile) []types.GeneratedQuestion {
	primary := "programming"
	if len(profile.Skills) > 0 {
		primary = profile.Skills[0]
	}

	texts := []string{
		fmt.Sprintf("Hi %s, tell me about yourself and your background in software development.", profile.DisplayName()),
		"What programming languages are you most comfortable with and why?",
		"How do you approach debugging when you encounter an error in your code?",
		fmt.Sprintf("Can you walk me through a project where you used %s? What challenges did you face?", primary),
		fmt.Sprintf("How would you optimize the performance of a %s application?", primary),
		"Design a system that can handle 1 million users. What would be your approach?",
	}
	ids := []string{"intro_1", "basic_1", "basic_2", "tech_1", "tech_2", "advanced_1"}

	questions := make([]types.GeneratedQuestion, len(texts))
	for i, text := range texts {
		questions[i] = newQuestion(ids[i], BatchPhases[i], text)
	}
	return questions
}
