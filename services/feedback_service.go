package services

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	apperrors "github.com/rahulrai19/Sentiment-Analysis-WebApp/errors"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/sentiment"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/logger"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/metrics"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"go.uber.org/zap"
)

const (
	// minCommentLength is the minimum comment length in characters after trimming.
	minCommentLength = 3

	// eventPlaceholderComment is the filler comment carried by the record
	// inserted when an event is created before any feedback exists for it.
	eventPlaceholderComment = "Event created"
)

// FeedbackService implements the feedback pipeline: validate and classify a
// submission into an immutable record, persist it, and reduce stored records
// into sentiment summaries. Events are a projection over records, so event
// creation and deletion also live here.
type FeedbackService struct {
	store    store.FeedbackStore
	analyzer *sentiment.Analyzer
	log      *zap.SugaredLogger
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(feedbackStore store.FeedbackStore, analyzer *sentiment.Analyzer) *FeedbackService {
	return &FeedbackService{
		store:    feedbackStore,
		analyzer: analyzer,
		log:      logger.GetLogger(),
	}
}

// BuildFeedback validates and normalizes a submission into a persistable
// record: sentiment computed from the comment, submission date stamped with
// the current UTC time. It performs no I/O.
func (s *FeedbackService) BuildFeedback(input types.FeedbackCreate) (*types.Feedback, error) {
	comment := strings.TrimSpace(input.Comment)
	if utf8.RuneCountInString(comment) < minCommentLength {
		return nil, apperrors.ValidationFailed("invalid_comment",
			"comment must be at least 3 characters after trimming")
	}

	label := s.analyzer.Classify(comment)

	return &types.Feedback{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Event:          strings.TrimSpace(input.Event),
		EventType:      strings.TrimSpace(input.EventType),
		Comment:        comment,
		Rating:         input.Rating,
		Sentiment:      string(label),
		SubmissionDate: time.Now().UTC(),
	}, nil
}

// SubmitFeedback builds a record from input and persists it.
func (s *FeedbackService) SubmitFeedback(ctx context.Context, input types.FeedbackCreate) (*types.Feedback, error) {
	fb, err := s.BuildFeedback(input)
	if err != nil {
		return nil, err
	}

	if err := s.store.InsertFeedback(ctx, fb); err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	metrics.FeedbackSubmissionsTotal.WithLabelValues(fb.Sentiment).Inc()
	s.log.Infow("Feedback saved", "event", fb.Event, "sentiment", fb.Sentiment)
	return fb, nil
}

// GetSummary reads records matching params and reduces them into sentiment
// counts plus the record list.
func (s *FeedbackService) GetSummary(ctx context.Context, params types.FeedbackSummaryParams) (*types.FeedbackSummary, error) {
	filter := store.FeedbackFilter{
		Event:     strings.TrimSpace(params.EventName),
		EventType: strings.TrimSpace(params.EventType),
	}

	records, _, err := s.store.ListFeedback(ctx, filter, 0, 0)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	summary := Summarize(records)
	return &summary, nil
}

// Summarize reduces records into sentiment counts in a single linear scan.
// Sentiment values are matched case-insensitively; records with a missing or
// unrecognized sentiment are skipped from the counts but kept in the list.
func Summarize(records []*types.Feedback) types.FeedbackSummary {
	summary := types.FeedbackSummary{RecentFeedback: records}
	if summary.RecentFeedback == nil {
		summary.RecentFeedback = []*types.Feedback{}
	}

	for _, rec := range records {
		label, ok := types.ParseSentiment(rec.Sentiment)
		if !ok {
			continue
		}
		switch label {
		case types.SentimentPositive:
			summary.Sentiments.Positive++
		case types.SentimentNeutral:
			summary.Sentiments.Neutral++
		case types.SentimentNegative:
			summary.Sentiments.Negative++
		}
	}

	return summary
}

// ListFeedback returns a page of records plus the total record count.
func (s *FeedbackService) ListFeedback(ctx context.Context, params types.FeedbackListParams) (*types.FeedbackListResponse, error) {
	records, total, err := s.store.ListFeedback(ctx, store.FeedbackFilter{}, params.Limit, params.Skip)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}

	return &types.FeedbackListResponse{
		Data:  records,
		Total: total,
		Limit: params.Limit,
		Skip:  params.Skip,
	}, nil
}

// ListEvents returns the distinct event names, sorted ascending.
func (s *FeedbackService) ListEvents(ctx context.Context) ([]string, error) {
	events, err := s.store.DistinctEvents(ctx)
	if err != nil {
		return nil, apperrors.NewDatabaseError(err)
	}
	return events, nil
}

// CreateEvent registers an event by inserting a placeholder record carrying
// the event name. Creating an event that already exists is a conflict.
func (s *FeedbackService) CreateEvent(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return apperrors.ValidationFailed("invalid_event_name", "event name must not be blank")
	}

	existing, err := s.store.DistinctEvents(ctx)
	if err != nil {
		return apperrors.NewDatabaseError(err)
	}
	for _, event := range existing {
		if event == name {
			return apperrors.NewConflictError("Event already exists", "Event: "+name)
		}
	}

	placeholder := &types.Feedback{
		ID:             uuid.New().String(),
		Event:          name,
		Comment:        eventPlaceholderComment,
		Sentiment:      string(types.SentimentNeutral),
		SubmissionDate: time.Now().UTC(),
	}
	if err := s.store.InsertFeedback(ctx, placeholder); err != nil {
		return apperrors.NewDatabaseError(err)
	}

	s.log.Infow("Event created", "event", name)
	return nil
}

// DeleteEvent removes every record attached to the named event and returns
// the number deleted. Deleting an unknown event is a not-found error.
func (s *FeedbackService) DeleteEvent(ctx context.Context, name string) (int64, error) {
	deleted, err := s.store.DeleteByEvent(ctx, name)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	if deleted == 0 {
		return 0, apperrors.NotFound("Event", name)
	}

	metrics.EventsDeletedTotal.Add(float64(deleted))
	s.log.Infow("Event deleted", "event", name, "records_deleted", deleted)
	return deleted, nil
}
