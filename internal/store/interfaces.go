// Package store defines the persistence interface for feedback records.
package store

import (
	"context"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

// Mode reports which storage variant a FeedbackStore runs on. The mode is
// fixed when the store is constructed at startup and never changes for the
// lifetime of the process.
type Mode string

const (
	ModeConnected Mode = "connected"
	ModeDegraded  Mode = "degraded"
)

// FeedbackFilter restricts reads to records matching every supplied field.
// Empty fields are unconstrained.
type FeedbackFilter struct {
	Event     string
	EventType string
}

// FeedbackStore handles feedback record persistence. Records are append-only:
// the only destructive operation is bulk deletion by event name.
type FeedbackStore interface {
	// InsertFeedback appends a record. No uniqueness constraints apply.
	InsertFeedback(ctx context.Context, fb *types.Feedback) error

	// ListFeedback returns records matching filter ordered by submission
	// date ascending, plus the total match count ignoring pagination.
	// A non-positive limit returns all matching records.
	ListFeedback(ctx context.Context, filter FeedbackFilter, limit, skip int) ([]*types.Feedback, int, error)

	// DeleteByEvent removes every record whose event matches and returns
	// the number deleted. A zero count is not an error at this layer.
	DeleteByEvent(ctx context.Context, event string) (int64, error)

	// DistinctEvents returns the distinct non-empty event names,
	// sorted ascending.
	DistinctEvents(ctx context.Context) ([]string, error)

	// Ping verifies the underlying store is reachable.
	Ping(ctx context.Context) error

	// Mode reports the storage variant selected at startup.
	Mode() Mode
}
