package resumes

// Feedback messages, keyed to the fixed rule order below.
const (
	feedbackStrong       = "Strong overall resume quality."
	feedbackGood         = "Good resume, but can be improved."
	feedbackNeedsWork    = "Resume needs improvement in structure and clarity."
	feedbackFewSkills    = "List more skills to showcase the breadth of your expertise."
	feedbackLittleExp    = "Consider adding more projects or internship experience."
	feedbackGoodMatch    = "Resume matches well with the job description."
	feedbackTailorResume = "Tailor your resume more closely to the job role."
)

// FeedbackInput carries the signals the rule table evaluates.
type FeedbackInput struct {
	Score           int
	ExperienceYears float64
	// SkillsCount is nil when no skills were supplied; the skills rule only
	// fires when the count is known.
	SkillsCount *int
	JobMatch    *JobMatch
}

// GenerateFeedback applies the fixed rule table in order. The score band
// always contributes one message, so the result is never empty; the remaining
// rules are independently additive.
func GenerateFeedback(in FeedbackInput) []string {
	feedback := make([]string, 0, 4)

	switch {
	case in.Score >= 80:
		feedback = append(feedback, feedbackStrong)
	case in.Score >= 60:
		feedback = append(feedback, feedbackGood)
	default:
		feedback = append(feedback, feedbackNeedsWork)
	}

	if in.SkillsCount != nil && *in.SkillsCount < 3 {
		feedback = append(feedback, feedbackFewSkills)
	}

	if in.ExperienceYears < 2 {
		feedback = append(feedback, feedbackLittleExp)
	}

	if in.JobMatch != nil {
		if in.JobMatch.MatchScore >= 75 {
			feedback = append(feedback, feedbackGoodMatch)
		} else {
			feedback = append(feedback, feedbackTailorResume)
		}
	}

	return feedback
}
