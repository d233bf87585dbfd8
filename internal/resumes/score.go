package resumes

import (
	"math"

	"resume-analyzer/internal/hf"
)

// NeutralScore is substituted when classification is unavailable.
const NeutralScore = 50

// ComputeScore derives the 0-100 quality score from a classification result.
// A nil or empty classification falls back to NeutralScore. The clamp guards
// against a top confidence of exactly 1.0 rounding past 100 and against
// out-of-range upstream values.
func ComputeScore(classification []hf.Label) int {
	if len(classification) == 0 {
		return NeutralScore
	}
	score := int(math.Round(classification[0].Confidence * 100))
	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
