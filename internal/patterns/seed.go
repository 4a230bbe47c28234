package patterns

import "github.com/omkar-nanda-ditstek/AI/internal/types"

// SeedExamples are the examples a fresh pattern file is trained with.
var SeedExamples = []types.TrainingExample{
	{
		Skill:    "Node.js",
		Question: "I see you have Node.js experience. Can you walk me through a specific Node.js project you built?",
		Keywords: []string{"api", "backend", "server"},
		Response: "That's a solid backend approach! How did you handle authentication and security?",
	},
	{
		Skill:    "React",
		Question: "Tell me about your React development experience. What kind of applications have you built?",
		Keywords: []string{"component", "state", "hooks"},
		Response: "Great! Can you explain how you structured your React components?",
	},
	{
		Skill:    "IoT",
		Question: "IoT projects are fascinating! Can you describe the IoT systems you've worked on?",
		Keywords: []string{"sensor", "device", "communication"},
		Response: "That sounds complex! How did you handle device communication and data processing?",
	},
	{
		Skill:    "JavaScript",
		Question: "What JavaScript frameworks and libraries do you prefer working with?",
		Keywords: []string{"async", "promise", "callback"},
		Response: "Excellent! How do you handle asynchronous operations in your JavaScript code?",
	},
}

// Seeded returns an in-memory store trained with SeedExamples.
func Seeded() *Store {
	s := New(TrainingData{})
	for _, ex := range SeedExamples {
		// Seed examples are static and valid.
		_ = s.AddExample(ex)
	}
	return s
}
