package resumes

import "math"

// CosineSimilarity computes dot(a,b) / (|a|*|b|) for equal-length vectors.
// Returns exactly 0 when either magnitude is zero rather than dividing by
// zero. Result is bounded to [-1, 1]; no rounding here.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, ErrDimensionMismatch
	}

	var dot, magA, magB float64
	for i := range a {
		dot += a[i] * b[i]
		magA += a[i] * a[i]
		magB += b[i] * b[i]
	}
	if magA == 0 || magB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(magA) * math.Sqrt(magB)), nil
}
