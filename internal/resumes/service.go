package resumes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"resume-analyzer/internal/hf"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/telemetry"
)

// Service runs the submission-to-result pipeline: normalize, classify, match,
// score, generate feedback, persist.
type Service struct {
	Repo       Repo
	Classifier hf.Classifier
	Matcher    *Matcher
}

// Analyze processes one submission. The only validation failure it surfaces
// is ErrTextTooShort from normalization; upstream classification and
// embedding failures are absorbed into fallback values so the pipeline always
// produces a complete result. A persistence failure is returned wrapped: the
// analysis was computed but could not be stored.
func (s *Service) Analyze(ctx context.Context, sub Submission) (Resume, error) {
	normalized, err := Normalize(sub.RawText, ClassificationBudget)
	if err != nil {
		metrics.IncAnalysisRejected()
		return Resume{}, err
	}

	metrics.IncAnalysisStarted()
	startedAt := time.Now().UTC()

	// Classification and job matching are independent; run both at once.
	// Each branch absorbs its own upstream failure, so the group never
	// cancels or errors.
	var classification []hf.Label
	var match *JobMatch
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		labels, err := s.Classifier.Classify(gctx, normalized)
		if err != nil {
			telemetry.Warn("analysis.classification_fallback", map[string]any{
				"error": err.Error(),
			})
			metrics.IncClassificationFallback()
			return nil
		}
		classification = labels
		return nil
	})
	g.Go(func() error {
		m, err := s.Matcher.Match(gctx, normalized, sub.JobDescription)
		if err != nil {
			telemetry.Warn("analysis.job_match_fallback", map[string]any{
				"error": err.Error(),
			})
			metrics.IncJobMatchFallback()
			return nil
		}
		match = m
		return nil
	})
	_ = g.Wait()

	score := ComputeScore(classification)

	var skillsCount *int
	if sub.Skills != nil {
		count := len(sub.Skills)
		skillsCount = &count
	}
	feedback := GenerateFeedback(FeedbackInput{
		Score:           score,
		ExperienceYears: sub.ExperienceYears,
		SkillsCount:     skillsCount,
		JobMatch:        match,
	})

	record := Resume{
		ID:              uuid.NewString(),
		Name:            sub.Name,
		Email:           sub.Email,
		ExperienceYears: sub.ExperienceYears,
		Skills:          sub.Skills,
		Excerpt:         Truncate(normalized, ExcerptBudget),
		JobDescription:  sub.JobDescription,
		Source:          sub.Source,
		Score:           score,
		Classification:  classification,
		JobMatch:        match,
		Feedback:        feedback,
	}

	saved, err := s.Repo.Create(ctx, record)
	if err != nil {
		return Resume{}, fmt.Errorf("persist analysis: %w", err)
	}

	completedAt := time.Now().UTC()
	metrics.IncAnalysisCompleted()
	metrics.ObserveAnalysisDurationMs(float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0)
	telemetry.Info("analysis.completed", map[string]any{
		"resume_id":      saved.ID,
		"score":          saved.Score,
		"classified":     classification != nil,
		"job_match":      match != nil,
		"text_source":    string(saved.Source),
		"feedback_count": len(saved.Feedback),
		"duration_ms":    float64(completedAt.Sub(startedAt).Microseconds()) / 1000.0,
	})

	return saved, nil
}

// List returns persisted analyses, most recent first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.ListAll(ctx)
}
