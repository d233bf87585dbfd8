package resumes

import (
	"errors"
	"strings"
	"testing"
)

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	raw := "  Experienced\tbackend\n\nengineer   with five years   in distributed systems. "

	got, err := Normalize(raw, ClassificationBudget)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	want := "Experienced backend engineer with five years in distributed systems."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	raw := "Senior   engineer \n with a decade \t of platform work across teams."

	once, err := Normalize(raw, ClassificationBudget)
	if err != nil {
		t.Fatalf("first Normalize: %v", err)
	}
	twice, err := Normalize(once, ClassificationBudget)
	if err != nil {
		t.Fatalf("second Normalize: %v", err)
	}
	if once != twice {
		t.Fatalf("expected idempotent normalization, got %q then %q", once, twice)
	}
}

func TestNormalizeTooShort(t *testing.T) {
	cases := []string{"", "   \n\t  ", "short resume"}
	for _, raw := range cases {
		if _, err := Normalize(raw, ClassificationBudget); !errors.Is(err, ErrTextTooShort) {
			t.Fatalf("input %q: expected ErrTextTooShort, got %v", raw, err)
		}
	}
}

func TestNormalizeAppliesBudget(t *testing.T) {
	raw := strings.Repeat("word ", 100)

	got, err := Normalize(raw, 50)
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if len(got) > 50 {
		t.Fatalf("expected at most 50 chars, got %d", len(got))
	}
}

func TestTruncateKeepsRuneBoundary(t *testing.T) {
	s := "résumé résumé résumé"
	for budget := 1; budget <= len(s); budget++ {
		cut := Truncate(s, budget)
		if len(cut) > budget {
			t.Fatalf("budget %d: got %d bytes", budget, len(cut))
		}
		for _, r := range cut {
			if r == '�' {
				t.Fatalf("budget %d: split a rune: %q", budget, cut)
			}
		}
	}
}
