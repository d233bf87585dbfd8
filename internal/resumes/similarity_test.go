package resumes

import (
	"errors"
	"math"
	"testing"
)

func TestCosineSimilarityKnownValue(t *testing.T) {
	a := []float64{1, 0}
	b := []float64{1, 1}

	got, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestCosineSimilaritySymmetric(t *testing.T) {
	a := []float64{0.3, -0.7, 0.2, 0.9}
	b := []float64{-0.1, 0.4, 0.8, -0.2}

	ab, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity(a,b): %v", err)
	}
	ba, err := CosineSimilarity(b, a)
	if err != nil {
		t.Fatalf("CosineSimilarity(b,a): %v", err)
	}
	if ab != ba {
		t.Fatalf("expected symmetry, got %v and %v", ab, ba)
	}
}

func TestCosineSimilarityZeroVector(t *testing.T) {
	zero := []float64{0, 0, 0}
	other := []float64{1, 2, 3}

	got, err := CosineSimilarity(zero, other)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected exactly 0 for zero vector, got %v", got)
	}

	got, err = CosineSimilarity(other, zero)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected exactly 0 for zero vector, got %v", got)
	}
}

func TestCosineSimilarityDimensionMismatch(t *testing.T) {
	_, err := CosineSimilarity([]float64{1, 2}, []float64{1, 2, 3})
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestCosineSimilarityBounded(t *testing.T) {
	a := []float64{2, -5, 7}
	b := []float64{-3, 11, 0.5}

	got, err := CosineSimilarity(a, b)
	if err != nil {
		t.Fatalf("CosineSimilarity: %v", err)
	}
	if got < -1-1e-12 || got > 1+1e-12 {
		t.Fatalf("expected result in [-1,1], got %v", got)
	}
}
