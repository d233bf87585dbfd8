// Package hf talks to the HuggingFace Inference API. It exposes the two
// narrow capabilities the analysis pipeline needs: text classification and
// feature-extraction embeddings.
package hf

import (
	"context"
	"errors"
)

// Label is a single classification entry, ordered by confidence upstream.
type Label struct {
	Name       string  `json:"label"`
	Confidence float64 `json:"confidence"`
}

// Classifier obtains a label/confidence distribution for a text span.
type Classifier interface {
	Classify(ctx context.Context, text string) ([]Label, error)
}

// Embedder obtains a fixed-length vector for a text span. Two calls against
// the same model return vectors of equal length.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

var (
	// ErrUnavailable covers transport failures, timeouts and non-2xx replies.
	ErrUnavailable = errors.New("hf: upstream unavailable")
	// ErrMalformed covers replies that cannot be parsed into the expected shape.
	ErrMalformed = errors.New("hf: malformed upstream response")
)
