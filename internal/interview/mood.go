package interview

import (
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

type moodKeywords struct {
	mood    types.Mood
	phrases []string
}

// moodTable is scored in order; on a tie the earlier mood wins.
var moodTable = []moodKeywords{
	{types.MoodNegative, []string{
		"not good", "bad", "terrible", "awful", "stressed", "tired", "sad",
		"difficult", "failed", "stuck", "frustrated", "frustrating", "upset",
		"exhausted", "struggling", "hate", "worst", "overwhelmed",
		"disappointed", "rough day",
	}},
	{types.MoodPositive, []string{
		"great", "good", "excellent", "wonderful", "amazing", "fantastic",
		"happy", "excited", "love", "enjoy", "awesome", "thrilled", "glad",
		"passionate", "had fun", "brilliant", "perfect",
	}},
	{types.MoodNervous, []string{
		"nervous", "anxious", "worried", "scared", "afraid", "panic",
		"jittery", "on edge", "intimidated", "tense", "uneasy", "butterflies",
		"mind went blank", "freaking out", "shaky",
	}},
	{types.MoodProud, []string{
		"proud", "accomplished", "achieved", "achievement", "led the", "award",
		"promoted", "recognized", "successfully", "delivered", "launched",
		"built from scratch", "shipped", "won the", "praised", "top performer",
	}},
	{types.MoodUncertain, []string{
		"not sure", "i think", "maybe", "perhaps", "i guess", "don't know",
		"dont know", "unsure", "probably", "might be", "not certain", "no idea",
		"kind of", "sort of", "i believe", "hopefully", "possibly",
	}},
}

// DetectMood classifies the latest answer in history. Earlier turns are
// ignored and an empty history is neutral.
func DetectMood(history []types.ConversationTurn) types.Mood {
	if len(history) == 0 {
		return types.MoodNeutral
	}
	return MoodOf(history[len(history)-1].Answer)
}

// MoodOf scores answer against every mood keyword table.
func MoodOf(answer string) types.Mood {
	lower := strings.ToLower(answer)

	best, bestScore := types.MoodNeutral, 0
	for _, entry := range moodTable {
		score := 0
		for _, phrase := range entry.phrases {
			if strings.Contains(lower, phrase) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = entry.mood, score
		}
	}
	return best
}
