package resumes

import (
	"time"

	"resume-analyzer/internal/hf"
)

// TextSource tells where the analyzed resume text came from.
type TextSource string

const (
	// SourceDocument marks text extracted from an uploaded file.
	SourceDocument TextSource = "document"
	// SourceManualFields marks text synthesized from submitted form fields.
	SourceManualFields TextSource = "manual"
)

// Submission is one validated analysis request. Immutable once built by the
// handler boundary.
type Submission struct {
	Name            string
	Email           string
	ExperienceYears float64
	Skills          []string
	RawText         string
	JobDescription  string
	Source          TextSource
}

// JobMatch is the semantic match between resume and job description.
type JobMatch struct {
	MatchScore int `json:"matchScore"`
}

// Resume is the persisted analysis record.
type Resume struct {
	ID              string
	Name            string
	Email           string
	ExperienceYears float64
	Skills          []string
	Excerpt         string
	JobDescription  string
	Source          TextSource
	Score           int
	Classification  []hf.Label
	JobMatch        *JobMatch
	Feedback        []string
	CreatedAt       time.Time
}
