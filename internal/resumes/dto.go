package resumes

import (
	"time"

	"resume-analyzer/internal/hf"
)

type resumeResponse struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	ExperienceYears float64    `json:"experienceYears"`
	Skills          []string   `json:"skills,omitempty"`
	Excerpt         string     `json:"excerpt"`
	JobDescription  string     `json:"jobDescription,omitempty"`
	TextSource      string     `json:"textSource"`
	Score           int        `json:"score"`
	Classification  []hf.Label `json:"classification"`
	JobMatch        *JobMatch  `json:"jobMatch"`
	Feedback        []string   `json:"feedback"`
	CreatedAt       time.Time  `json:"createdAt"`
}

func toResponse(record Resume) resumeResponse {
	return resumeResponse{
		ID:              record.ID,
		Name:            record.Name,
		Email:           record.Email,
		ExperienceYears: record.ExperienceYears,
		Skills:          record.Skills,
		Excerpt:         record.Excerpt,
		JobDescription:  record.JobDescription,
		TextSource:      string(record.Source),
		Score:           record.Score,
		Classification:  record.Classification,
		JobMatch:        record.JobMatch,
		Feedback:        record.Feedback,
		CreatedAt:       record.CreatedAt,
	}
}
