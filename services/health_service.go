package services

import (
	"context"
	"time"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/logger"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"go.uber.org/zap"
)

type HealthService struct {
	store   store.FeedbackStore
	version string
	log     *zap.SugaredLogger
}

func NewHealthService(feedbackStore store.FeedbackStore, version string) *HealthService {
	return &HealthService{
		store:   feedbackStore,
		version: version,
		log:     logger.GetLogger(),
	}
}

// CheckHealth reports overall status plus the database component. A store
// running in degraded mode reports DEGRADED for the process lifetime; a
// connected store reports UP or DOWN depending on reachability.
func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	database := h.checkDatabase(ctx)

	overall := types.HealthStatusUp
	if database.Status != types.HealthStatusUp {
		overall = database.Status
	}

	return types.HealthCheck{
		Status:    overall,
		Database:  database,
		Version:   h.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func (h *HealthService) checkDatabase(ctx context.Context) types.HealthComponent {
	if h.store.Mode() == store.ModeDegraded {
		return types.HealthComponent{
			Status:  types.HealthStatusDegraded,
			Details: "Running on in-memory fallback storage",
		}
	}

	if err := h.store.Ping(ctx); err != nil {
		h.log.Errorw("Database health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Database connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
