// Package mongo implements the feedback store against MongoDB.
package mongo

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Config holds the connection parameters for the feedback collection.
type Config struct {
	URI            string
	Database       string
	Collection     string
	ConnectTimeout time.Duration
}

// Ensure FeedbackStore implements store.FeedbackStore
var _ store.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore persists feedback records in a MongoDB collection.
// Each insert and delete is a single atomic operation; no multi-document
// transactions are used.
type FeedbackStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect establishes a MongoDB connection, verifies it with a ping, and
// returns a FeedbackStore bound to the configured collection.
func Connect(ctx context.Context, cfg Config) (*FeedbackStore, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	return &FeedbackStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// InsertFeedback appends a record to the collection.
func (s *FeedbackStore) InsertFeedback(ctx context.Context, fb *types.Feedback) error {
	if _, err := s.coll.InsertOne(ctx, fb); err != nil {
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

// ListFeedback returns records matching filter ordered by submission date
// ascending, plus the total match count ignoring pagination.
func (s *FeedbackStore) ListFeedback(ctx context.Context, filter store.FeedbackFilter, limit, skip int) ([]*types.Feedback, int, error) {
	query := filterToQuery(filter)

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count feedback: %w", err)
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "submissionDate", Value: 1}})
	if skip > 0 {
		findOpts = findOpts.SetSkip(int64(skip))
	}
	if limit > 0 {
		findOpts = findOpts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(ctx, query, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query feedback: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	records := make([]*types.Feedback, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, 0, fmt.Errorf("failed to decode feedback: %w", err)
	}

	return records, int(total), nil
}

// DeleteByEvent removes every record whose event matches and returns the
// number deleted.
func (s *FeedbackStore) DeleteByEvent(ctx context.Context, event string) (int64, error) {
	res, err := s.coll.DeleteMany(ctx, bson.M{"event": event})
	if err != nil {
		return 0, fmt.Errorf("failed to delete feedback for event %q: %w", event, err)
	}
	return res.DeletedCount, nil
}

// DistinctEvents returns the distinct non-empty event names, sorted ascending.
func (s *FeedbackStore) DistinctEvents(ctx context.Context) ([]string, error) {
	res := s.coll.Distinct(ctx, "event", bson.M{"event": bson.M{"$nin": bson.A{"", nil}}})
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("failed to query distinct events: %w", err)
	}

	var events []string
	if err := res.Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode distinct events: %w", err)
	}

	sort.Strings(events)
	return events, nil
}

// Ping verifies the MongoDB deployment is reachable.
func (s *FeedbackStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// Mode reports that this store runs against the primary database.
func (s *FeedbackStore) Mode() store.Mode {
	return store.ModeConnected
}

// Close disconnects the underlying client.
func (s *FeedbackStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// filterToQuery builds the conjunction query for the supplied filter fields.
func filterToQuery(filter store.FeedbackFilter) bson.M {
	query := bson.M{}
	if filter.Event != "" {
		query["event"] = filter.Event
	}
	if filter.EventType != "" {
		query["eventType"] = filter.EventType
	}
	return query
}
