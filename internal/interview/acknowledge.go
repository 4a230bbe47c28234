package interview

import (
	"hash/fnv"
	"strings"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

var acknowledgments = map[types.Mood][]string{
	types.MoodNegative: {
		"Oh, I'm sorry to hear that. I hope our conversation can brighten your day a bit. I'm Sarah, and I'm here to listen.",
		"I understand, some days are tougher than others. I'm Sarah, and I appreciate you taking the time to chat despite not feeling your best.",
		"That sounds challenging. I'm Sarah, and I want you to know that it's okay to have difficult days. Let's take this conversation at your pace.",
	},
	types.MoodPositive: {
		"That's wonderful to hear! Your positive energy is contagious. I'm Sarah, and I'm excited to chat with someone in such great spirits!",
		"That's fantastic! I love talking with people who are having a great day. I'm Sarah, and your enthusiasm is already making this conversation better!",
		"That's amazing! It's so refreshing to meet someone with such positive energy. I'm Sarah, and I'm thrilled to be chatting with you!",
	},
	types.MoodNervous: {
		"No need to worry, there are no trick questions here. I'm Sarah, and we'll go at whatever pace suits you.",
		"It's completely normal to feel a little nervous. I'm Sarah, and this is just a conversation about your work.",
		"Take a breath, you're doing fine. I'm Sarah, and I'm here to get to know you, not to catch you out.",
	},
	types.MoodProud: {
		"That's a real accomplishment! I'm Sarah, and I'd love to hear more about how you pulled it off.",
		"You should be proud of that. I'm Sarah, and achievements like that tell me a lot about how you work.",
		"Impressive! I'm Sarah, and I'm curious about the decisions that led to that result.",
	},
	types.MoodUncertain: {
		"That's okay, thinking out loud is welcome here. I'm Sarah, and there's no single right answer.",
		"No problem if you're not certain. I'm Sarah, and I'm more interested in how you reason about it.",
		"Fair enough, let's explore it together. I'm Sarah, and we can take it one step at a time.",
	},
	types.MoodNeutral: {
		"That's perfectly fine! I'm Sarah, and I'm glad we can have this conversation together.",
		"Fair enough! I'm Sarah, and I appreciate your honesty. Let's have a nice chat.",
		"I understand! I'm Sarah, and I'm looking forward to getting to know you better.",
	},
}

// Acknowledge replies to the latest answer. A trained response pattern wins;
// otherwise a phrase for the detected mood is chosen from the answer text, so
// the same answer always gets the same reply.
func (iv *Interviewer) Acknowledge(history []types.ConversationTurn) string {
	answer := ""
	if len(history) > 0 {
		answer = history[len(history)-1].Answer
	}
	if iv.patterns != nil && answer != "" {
		if resp, ok := iv.patterns.LookupResponse(answer); ok {
			return resp
		}
	}
	return AcknowledgmentFor(DetectMood(history), answer)
}

// AcknowledgmentFor picks the mood phrase for answer.
func AcknowledgmentFor(mood types.Mood, answer string) string {
	phrases, ok := acknowledgments[mood]
	if !ok {
		phrases = acknowledgments[types.MoodNeutral]
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(answer))
	return phrases[int(h.Sum32()%uint32(len(phrases)))]
}

// AdaptQuestion softens or energizes introduction and background questions
// for negative and positive moods. Other questions are returned unchanged.
func AdaptQuestion(question string, mood types.Mood) string {
	lower := strings.ToLower(question)
	aboutYourself := strings.Contains(lower, "tell me about yourself")
	background := strings.Contains(lower, "background") || strings.Contains(lower, "experience")

	switch mood {
	case types.MoodNegative:
		if aboutYourself {
			return "When you're ready, could you share a bit about yourself? Take your time, there's no pressure."
		}
		if background {
			return "I'd love to hear about your background when you feel comfortable sharing. What aspects of your experience bring you some satisfaction?"
		}
	case types.MoodPositive:
		if aboutYourself {
			return "I can tell you're in great spirits! I'd love to hear all about yourself and what makes you so enthusiastic!"
		}
		if background {
			return "With that positive energy, I'm excited to hear about your background! What experiences have you enjoyed most?"
		}
	}
	return question
}
