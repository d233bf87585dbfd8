// Package bootstrap wires configuration, storage, upstream clients, and the
// HTTP router into a runnable application.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/hf"
	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/server"
	"resume-analyzer/internal/shared/storage/db"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	DB            *sql.DB
	ResumesRepo   resumes.Repo
	ResumeService *resumes.Service
	ResumeHandler *resumes.Handler
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var repo resumes.Repo
	if sqlDB != nil {
		repo = &resumes.PGRepo{DB: sqlDB}
	} else {
		repo = resumes.NewMemoryRepo()
	}

	classifier, err := hf.NewClassificationClient(cfg.HFAPIKey, cfg.HFClassifier, cfg.HFLabels, cfg.HFTimeout)
	if err != nil {
		return nil, fmt.Errorf("build classification client: %w", err)
	}
	embedder, err := hf.NewEmbeddingClient(cfg.HFAPIKey, cfg.HFEmbedder, cfg.HFTimeout)
	if err != nil {
		return nil, fmt.Errorf("build embedding client: %w", err)
	}

	svc := &resumes.Service{
		Repo:       repo,
		Classifier: classifier,
		Matcher:    &resumes.Matcher{Embedder: embedder},
	}
	handler := resumes.NewHandler(svc)

	app := &App{
		Config:        cfg,
		DB:            sqlDB,
		ResumesRepo:   repo,
		ResumeService: svc,
		ResumeHandler: handler,
	}

	var dbPing func() error
	if sqlDB != nil {
		dbPing = sqlDB.Ping
	}
	app.Router = server.NewRouter(server.RouterDeps{
		Config:        cfg,
		ResumeHandler: handler,
		DBPing:        dbPing,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repository")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repository: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return sqlDB, nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
