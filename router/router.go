package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/config"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/handlers"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/middleware"
	"github.com/redis/go-redis/v9"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	FeedbackHandler *handlers.FeedbackHandler
	EventHandler    *handlers.EventHandler
	HealthHandler   *handlers.HealthHandler
	// RedisClient is optional; rate limiting is skipped when nil.
	RedisClient *redis.Client
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Root, health and metrics routes
	r.GET("/", deps.HealthHandler.Root)
	r.GET("/health", deps.HealthHandler.HealthCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Paginated listing (unversioned path kept for frontend compatibility)
	r.GET("/feedbacks", deps.FeedbackHandler.ListFeedbacks)

	api := r.Group("/api")
	{
		submit := api.Group("")
		if deps.Config.RateLimit.Enabled && deps.RedisClient != nil {
			submit.Use(middleware.RateLimiter(
				deps.RedisClient,
				deps.Config.RateLimit.RequestsPerMinute,
				time.Duration(deps.Config.RateLimit.WindowSeconds)*time.Second,
			))
		}
		submit.POST("/submit-feedback", deps.FeedbackHandler.SubmitFeedback)

		api.GET("/feedback-summary", deps.FeedbackHandler.FeedbackSummary)
		api.GET("/events", deps.EventHandler.ListEvents)

		// Event mutations sit behind the API key boundary when configured.
		apiKeyAuth := middleware.APIKeyAuth(deps.Config.Server.APIKey)
		api.POST("/events", apiKeyAuth, deps.EventHandler.CreateEvent)
		api.DELETE("/events/:event_name", apiKeyAuth, deps.EventHandler.DeleteEvent)
	}

	return r
}
