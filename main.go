package main

import (
	"context"
	"time"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/config"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/handlers"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/sentiment"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store/memory"
	mongostore "github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store/mongo"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/logger"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/metrics"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/router"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/services"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() { _ = logger.Close() }()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Select the storage variant once at startup. When Mongo is unreachable
	// and degraded mode is allowed, the process runs on in-memory storage
	// until restart; the two modes are never mixed.
	feedbackStore := connectStore(cfg)
	if feedbackStore.Mode() == store.ModeDegraded {
		metrics.StoreDegradedMode.Set(1)
	} else {
		metrics.StoreDegradedMode.Set(0)
		defer func() {
			if closer, ok := feedbackStore.(*mongostore.FeedbackStore); ok {
				_ = closer.Close(context.Background())
			}
		}()
	}

	// Initialize Redis client only when rate limiting is enabled
	var redisClient *redis.Client
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()
	}

	// Services and handlers
	analyzer := sentiment.NewAnalyzer(cfg.Sentiment.CacheSize)
	feedbackService := services.NewFeedbackService(feedbackStore, analyzer)
	healthService := services.NewHealthService(feedbackStore, cfg.Server.Version)

	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		FeedbackHandler: handlers.NewFeedbackHandler(feedbackService),
		EventHandler:    handlers.NewEventHandler(feedbackService),
		HealthHandler:   handlers.NewHealthHandler(healthService, cfg.Server.AppName, cfg.Server.Version),
		RedisClient:     redisClient,
	})

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// connectStore connects to MongoDB, falling back to the in-memory store when
// allowed. Fallback happens only here; per-request storage errors after a
// successful startup surface as server errors.
func connectStore(cfg *config.Config) store.FeedbackStore {
	log := logger.GetLogger()

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Mongo.ConnectTimeoutSeconds)*time.Second)
	defer cancel()

	mongoStore, err := mongostore.Connect(ctx, mongostore.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		Collection:     cfg.Mongo.Collection,
		ConnectTimeout: time.Duration(cfg.Mongo.ConnectTimeoutSeconds) * time.Second,
	})
	if err == nil {
		log.Infow("Connected to MongoDB",
			"uri", logger.MaskConnectionString(cfg.Mongo.URI),
			"database", cfg.Mongo.Database,
		)
		return mongoStore
	}

	if !cfg.Mongo.AllowDegraded {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	log.Warnw("MongoDB unreachable, running on in-memory fallback storage",
		"error", err,
		"uri", logger.MaskConnectionString(cfg.Mongo.URI),
	)
	return memory.NewFeedbackStore()
}
