package resumes

import (
	"context"
	"math"
	"strings"

	"golang.org/x/sync/errgroup"

	"resume-analyzer/internal/hf"
)

// Matcher computes the semantic match between a resume and a job description.
type Matcher struct {
	Embedder hf.Embedder
}

// Match embeds both texts and scores their cosine similarity as a 0-100
// percentage. Returns (nil, nil) when jobText is blank: job matching is
// strictly optional. The two embedding calls are independent and run
// concurrently; the first failure cancels the sibling. Negative similarity
// clamps to 0 before scaling, a negative "percentage match" means nothing to
// the caller.
func (m *Matcher) Match(ctx context.Context, resumeText, jobText string) (*JobMatch, error) {
	if strings.TrimSpace(jobText) == "" {
		return nil, nil
	}

	var resumeVec, jobVec []float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		vec, err := m.Embedder.Embed(gctx, Truncate(resumeText, EmbeddingBudget))
		if err != nil {
			return err
		}
		resumeVec = vec
		return nil
	})
	g.Go(func() error {
		vec, err := m.Embedder.Embed(gctx, Truncate(strings.TrimSpace(jobText), EmbeddingBudget))
		if err != nil {
			return err
		}
		jobVec = vec
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	similarity, err := CosineSimilarity(resumeVec, jobVec)
	if err != nil {
		return nil, err
	}

	score := int(math.Round(math.Max(similarity, 0) * 100))
	return &JobMatch{MatchScore: clampScore(score)}, nil
}
