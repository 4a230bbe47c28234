package interview

import (
	"strconv"

	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

// BatchPhases is the phase of each question in a seeded interview, in order.
var BatchPhases = []types.InterviewPhase{
	types.PhaseIntroduction,
	types.PhaseBasics,
	types.PhaseBasics,
	types.PhaseTechnical,
	types.PhaseTechnical,
	types.PhaseAdvanced,
}

// PhaseFor maps a zero-based question index to its interview phase.
// Negative indexes are treated as the first question.
func PhaseFor(index int) types.InterviewPhase {
	switch {
	case index <= 2:
		return types.PhaseIntroduction
	case index <= 6:
		return types.PhaseBasics
	case index <= 11:
		return types.PhaseTechnical
	default:
		return types.PhaseAdvanced
	}
}

// QuestionID formats the id of the question asked at index.
func QuestionID(phase types.InterviewPhase, index int) string {
	return string(phase) + "_" + strconv.Itoa(index+1)
}
