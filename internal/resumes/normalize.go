package resumes

import (
	"strings"
	"unicode/utf8"
)

const (
	// MinTextLength is the smallest normalized text accepted for analysis.
	MinTextLength = 30
	// ClassificationBudget bounds text sent to the classification model.
	ClassificationBudget = 3000
	// EmbeddingBudget bounds text sent to the embedding model. Embedding
	// providers choke on long inputs more readily than classifiers.
	EmbeddingBudget = 1000
	// ExcerptBudget bounds the resume excerpt stored with the record.
	ExcerptBudget = 500
)

// Normalize collapses whitespace runs to single spaces, trims, and truncates
// to budget characters. Returns ErrTextTooShort when the result is under
// MinTextLength. Idempotent for equal budgets.
func Normalize(raw string, budget int) (string, error) {
	collapsed := strings.Join(strings.Fields(raw), " ")
	collapsed = Truncate(collapsed, budget)
	if len(collapsed) < MinTextLength {
		return "", ErrTextTooShort
	}
	return collapsed, nil
}

// Truncate bounds s to at most budget bytes without splitting a UTF-8 rune.
func Truncate(s string, budget int) string {
	if budget <= 0 || len(s) <= budget {
		return s
	}
	cut := s[:budget]
	for len(cut) > 0 && !utf8.ValidString(cut) {
		cut = cut[:len(cut)-1]
	}
	return strings.TrimRight(cut, " ")
}
