// Package memory implements the feedback store over a process-local slice.
// It backs the degraded mode entered when MongoDB is unreachable at startup:
// the same operations, no persistence across restarts.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore keeps feedback records in memory, guarded by a RWMutex so
// concurrent request handlers can read and append safely.
type FeedbackStore struct {
	mu      sync.RWMutex
	records []*types.Feedback
}

// NewFeedbackStore creates an empty in-memory feedback store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

// InsertFeedback appends a copy of the record, preserving insertion order.
func (s *FeedbackStore) InsertFeedback(_ context.Context, fb *types.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Copy so later caller mutations cannot reach stored state.
	stored := *fb
	s.records = append(s.records, &stored)
	return nil
}

// ListFeedback returns records matching filter in submission date order,
// plus the total match count ignoring pagination.
func (s *FeedbackStore) ListFeedback(_ context.Context, filter store.FeedbackFilter, limit, skip int) ([]*types.Feedback, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*types.Feedback, 0)
	for _, rec := range s.records {
		if filter.Event != "" && rec.Event != filter.Event {
			continue
		}
		if filter.EventType != "" && rec.EventType != filter.EventType {
			continue
		}
		copied := *rec
		matched = append(matched, &copied)
	}

	// Insertion order already tracks submission date, but a stable sort
	// keeps pagination deterministic if timestamps ever tie.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].SubmissionDate.Before(matched[j].SubmissionDate)
	})

	total := len(matched)
	if skip > 0 {
		if skip >= len(matched) {
			matched = matched[:0]
		} else {
			matched = matched[skip:]
		}
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

// DeleteByEvent removes every record whose event matches and returns the
// number deleted.
func (s *FeedbackStore) DeleteByEvent(_ context.Context, event string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0]
	var deleted int64
	for _, rec := range s.records {
		if rec.Event == event {
			deleted++
			continue
		}
		kept = append(kept, rec)
	}
	s.records = kept
	return deleted, nil
}

// DistinctEvents returns the distinct non-empty event names, sorted ascending.
func (s *FeedbackStore) DistinctEvents(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	events := make([]string, 0)
	for _, rec := range s.records {
		if rec.Event == "" || seen[rec.Event] {
			continue
		}
		seen[rec.Event] = true
		events = append(events, rec.Event)
	}

	sort.Strings(events)
	return events, nil
}

// Ping always succeeds; the process-local store has nothing to reach.
func (s *FeedbackStore) Ping(_ context.Context) error {
	return nil
}

// Mode reports that this store runs as the degraded fallback.
func (s *FeedbackStore) Mode() store.Mode {
	return store.ModeDegraded
}
