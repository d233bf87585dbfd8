package resumes

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"resume-analyzer/internal/hf"
)

func TestPGRepoCreateReturnsStoredTime(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	classification := []hf.Label{{Name: "POSITIVE", Confidence: 0.91}}
	classificationJSON, _ := json.Marshal(classification)
	feedbackJSON, _ := json.Marshal([]string{feedbackStrong})

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs(
			"res-1", "Ada", "ada@example.com", 6.0, "Go,Postgres",
			"excerpt text", "job text", "document", 91,
			classificationJSON, int64(82), feedbackJSON,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	repo := &PGRepo{DB: db}
	got, err := repo.Create(context.Background(), Resume{
		ID:              "res-1",
		Name:            "Ada",
		Email:           "ada@example.com",
		ExperienceYears: 6,
		Skills:          []string{"Go", "Postgres"},
		Excerpt:         "excerpt text",
		JobDescription:  "job text",
		Source:          SourceDocument,
		Score:           91,
		Classification:  classification,
		JobMatch:        &JobMatch{MatchScore: 82},
		Feedback:        []string{feedbackStrong},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected created_at %v, got %v", createdAt, got.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoCreateNullableColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	feedbackJSON, _ := json.Marshal([]string{feedbackNeedsWork, feedbackLittleExp})

	mock.ExpectQuery("INSERT INTO resumes").
		WithArgs(
			"res-2", "Grace", "grace@example.com", 1.0, "",
			"excerpt text", "", "manual", 50,
			nil, nil, feedbackJSON,
		).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	repo := &PGRepo{DB: db}
	_, err = repo.Create(context.Background(), Resume{
		ID:              "res-2",
		Name:            "Grace",
		Email:           "grace@example.com",
		ExperienceYears: 1,
		Excerpt:         "excerpt text",
		Source:          SourceManualFields,
		Score:           50,
		Feedback:        []string{feedbackNeedsWork, feedbackLittleExp},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoListAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	newer := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	older := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	classificationJSON := `[{"label":"POSITIVE","confidence":0.91}]`
	feedbackJSON := `["` + feedbackStrong + `"]`

	columns := []string{
		"id", "name", "email", "experience_years", "skills", "excerpt",
		"job_description", "text_source", "score", "classification",
		"match_score", "feedback", "created_at",
	}
	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow("res-2", "Grace", "grace@example.com", 9.0, "", "later excerpt",
				"", "manual", 50, nil, nil, feedbackJSON, newer).
			AddRow("res-1", "Ada", "ada@example.com", 6.0, "Go,Postgres", "earlier excerpt",
				"job text", "document", 91, classificationJSON, int64(82), feedbackJSON, older))

	repo := &PGRepo{DB: db}
	got, err := repo.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 records, got %d", len(got))
	}

	if got[0].ID != "res-2" || got[1].ID != "res-1" {
		t.Fatalf("unexpected order: %s then %s", got[0].ID, got[1].ID)
	}
	if got[0].Classification != nil || got[0].JobMatch != nil || got[0].Skills != nil {
		t.Fatalf("expected nil optional fields, got %+v", got[0])
	}
	if got[1].JobMatch == nil || got[1].JobMatch.MatchScore != 82 {
		t.Fatalf("expected match score 82, got %+v", got[1].JobMatch)
	}
	if len(got[1].Classification) != 1 || got[1].Classification[0].Name != "POSITIVE" {
		t.Fatalf("unexpected classification %+v", got[1].Classification)
	}
	if len(got[1].Skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", got[1].Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPGRepoListAllQueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM resumes").
		WillReturnError(context.DeadlineExceeded)

	repo := &PGRepo{DB: db}
	if _, err := repo.ListAll(context.Background()); err == nil {
		t.Fatal("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
