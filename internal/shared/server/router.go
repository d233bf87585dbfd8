package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-analyzer/internal/resumes"
	"resume-analyzer/internal/services/health"
	"resume-analyzer/internal/shared/config"
	"resume-analyzer/internal/shared/metrics"
	"resume-analyzer/internal/shared/server/middleware"
	"resume-analyzer/internal/shared/server/respond"
)

// Rate limit groups. Analysis submissions call the upstream inference API
// twice per request, so they get a much tighter budget than reads.
const (
	groupAnalyze = "ANALYZE"
	groupDefault = "DEFAULT"
)

// RouterDeps carries the handlers and probes the router wires up.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	// DBPing is optional; when set the health endpoint reports storage state.
	DBPing func() error
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				groupAnalyze: {Rate: 0.5, Burst: 5},
				groupDefault: {Rate: 10, Burst: 30},
			},
			DefaultGroup: groupDefault,
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/resumes" {
					return groupAnalyze
				}
				return groupDefault
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", healthHandler(health.NewService(deps.DBPing)))
	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(api)
	}

	return r
}

func healthHandler(svc *health.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, healthy := svc.Status()
		if !healthy {
			respond.JSON(c, http.StatusServiceUnavailable, payload)
			return
		}
		respond.JSON(c, http.StatusOK, payload)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
