package server

import (
	"github.com/gin-gonic/gin"

	"resume-coach/internal/analysis"
	"resume-coach/internal/interviews"
	"resume-coach/internal/llm"
	"resume-coach/internal/services/health"
	"resume-coach/internal/shared/config"
	"resume-coach/internal/shared/metrics"
	"resume-coach/internal/shared/server/middleware"
	"resume-coach/internal/shared/server/respond"
	"resume-coach/internal/shared/storage/scratch"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// The completion client is injected so tests can substitute a fake.
func NewRouter(cfg config.Config, llmClient llm.Client) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	store, err := scratch.New(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	healthSvc := health.NewService()
	r.GET("/", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api")
	api.Use(middleware.RateLimit(middleware.RateLimitRule{Rate: 5, Burst: 30}, nil))

	analysisHandler := analysis.NewHandler(&analysis.Service{LLM: llmClient}, store)
	analysisHandler.RegisterRoutes(api)

	interviewsHandler := interviews.NewHandler(&interviews.Service{LLM: llmClient}, store)
	interviewsHandler.RegisterRoutes(api)

	return r, nil
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
