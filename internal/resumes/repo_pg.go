package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"resume-analyzer/internal/hf"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a record; created_at is assigned by the database.
func (r *PGRepo) Create(ctx context.Context, record Resume) (Resume, error) {
	const query = `
INSERT INTO resumes (
	id, name, email, experience_years, skills, excerpt, job_description,
	text_source, score, classification, match_score, feedback
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING created_at`

	classificationPayload, err := marshalNullableJSON(record.Classification)
	if err != nil {
		return Resume{}, err
	}
	feedbackPayload, err := json.Marshal(record.Feedback)
	if err != nil {
		return Resume{}, err
	}

	var matchScore sql.NullInt64
	if record.JobMatch != nil {
		matchScore = sql.NullInt64{Int64: int64(record.JobMatch.MatchScore), Valid: true}
	}

	err = r.DB.QueryRowContext(ctx, query,
		record.ID,
		record.Name,
		record.Email,
		record.ExperienceYears,
		strings.Join(record.Skills, ","),
		record.Excerpt,
		record.JobDescription,
		string(record.Source),
		record.Score,
		classificationPayload,
		matchScore,
		feedbackPayload,
	).Scan(&record.CreatedAt)
	if err != nil {
		return Resume{}, err
	}
	return record, nil
}

// ListAll returns all records, most recent first.
func (r *PGRepo) ListAll(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT id, name, email, experience_years, skills, excerpt, job_description,
       text_source, score, classification, match_score, feedback, created_at
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Resume
	for rows.Next() {
		record, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func scanResume(rows *sql.Rows) (Resume, error) {
	var record Resume
	var skills string
	var source string
	var classification sql.NullString
	var matchScore sql.NullInt64
	var feedback []byte

	err := rows.Scan(
		&record.ID,
		&record.Name,
		&record.Email,
		&record.ExperienceYears,
		&skills,
		&record.Excerpt,
		&record.JobDescription,
		&source,
		&record.Score,
		&classification,
		&matchScore,
		&feedback,
		&record.CreatedAt,
	)
	if err != nil {
		return Resume{}, err
	}

	if skills != "" {
		record.Skills = strings.Split(skills, ",")
	}
	record.Source = TextSource(source)
	if classification.Valid && classification.String != "" {
		var labels []hf.Label
		if err := json.Unmarshal([]byte(classification.String), &labels); err != nil {
			return Resume{}, err
		}
		record.Classification = labels
	}
	if matchScore.Valid {
		record.JobMatch = &JobMatch{MatchScore: int(matchScore.Int64)}
	}
	if len(feedback) > 0 {
		if err := json.Unmarshal(feedback, &record.Feedback); err != nil {
			return Resume{}, err
		}
	}
	return record, nil
}

func marshalNullableJSON(labels []hf.Label) (any, error) {
	if labels == nil {
		return nil, nil
	}
	data, err := json.Marshal(labels)
	if err != nil {
		return nil, err
	}
	return data, nil
}
