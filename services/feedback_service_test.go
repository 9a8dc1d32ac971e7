package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	apperrors "github.com/rahulrai19/Sentiment-Analysis-WebApp/errors"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/sentiment"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store/memory"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/logger"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	os.Exit(m.Run())
}

// MockFeedbackStore implements store.FeedbackStore for error path tests.
type MockFeedbackStore struct {
	mock.Mock
}

func (m *MockFeedbackStore) InsertFeedback(ctx context.Context, fb *types.Feedback) error {
	args := m.Called(ctx, fb)
	return args.Error(0)
}

func (m *MockFeedbackStore) ListFeedback(ctx context.Context, filter store.FeedbackFilter, limit, skip int) ([]*types.Feedback, int, error) {
	args := m.Called(ctx, filter, limit, skip)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]*types.Feedback), args.Int(1), args.Error(2)
}

func (m *MockFeedbackStore) DeleteByEvent(ctx context.Context, event string) (int64, error) {
	args := m.Called(ctx, event)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackStore) DistinctEvents(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFeedbackStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockFeedbackStore) Mode() store.Mode {
	args := m.Called()
	return args.Get(0).(store.Mode)
}

// Compile-time interface check
var _ store.FeedbackStore = (*MockFeedbackStore)(nil)

func newTestService() *FeedbackService {
	return NewFeedbackService(memory.NewFeedbackStore(), sentiment.NewAnalyzer(64))
}

func TestBuildFeedbackValidation(t *testing.T) {
	svc := newTestService()

	tests := []struct {
		name      string
		comment   string
		expectErr bool
	}{
		{"two characters", "ok", true},
		{"two characters padded", "  ok  ", true},
		{"two chars padded rejected", " ab ", true},
		{"three chars padded accepted", " abc ", false},
		{"two multibyte characters", "日本", true},
		{"three multibyte characters", "日本語", false},
		{"empty", "", true},
		{"whitespace only", "   \t  ", true},
		{"normal comment", "This was a fantastic session!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, err := svc.BuildFeedback(types.FeedbackCreate{
				Name:    "A",
				Event:   "E1",
				Comment: tt.comment,
			})

			if tt.expectErr {
				require.Error(t, err)
				var appErr *apperrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, apperrors.ValidationError, appErr.Type)
				assert.Nil(t, fb)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, fb)
			assert.NotEmpty(t, fb.ID)
			assert.NotEmpty(t, fb.Sentiment)
			assert.False(t, fb.SubmissionDate.IsZero())
			assert.Equal(t, strings.TrimSpace(tt.comment), fb.Comment)
		})
	}
}

func TestBuildFeedbackComputesSentiment(t *testing.T) {
	svc := newTestService()

	fb, err := svc.BuildFeedback(types.FeedbackCreate{
		Name:    "A",
		Event:   "E1",
		Comment: "This was a fantastic session!",
	})
	require.NoError(t, err)
	assert.Equal(t, string(types.SentimentPositive), fb.Sentiment)

	fb, err = svc.BuildFeedback(types.FeedbackCreate{
		Name:    "B",
		Event:   "E1",
		Comment: "terrible and boring",
	})
	require.NoError(t, err)
	assert.Equal(t, string(types.SentimentNegative), fb.Sentiment)
}

func TestBuildFeedbackStampsUTCTime(t *testing.T) {
	svc := newTestService()

	before := time.Now().UTC()
	fb, err := svc.BuildFeedback(types.FeedbackCreate{Name: "A", Event: "E1", Comment: "fine session"})
	after := time.Now().UTC()

	require.NoError(t, err)
	assert.False(t, fb.SubmissionDate.Before(before))
	assert.False(t, fb.SubmissionDate.After(after))
	assert.Equal(t, time.UTC, fb.SubmissionDate.Location())
}

func TestSubmitFeedbackPersists(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	fb, err := svc.SubmitFeedback(ctx, types.FeedbackCreate{
		Name:      "A",
		Event:     "E1",
		EventType: "Talk",
		Comment:   "This was a fantastic session!",
		Rating:    5,
	})
	require.NoError(t, err)

	page, err := svc.ListFeedback(ctx, types.FeedbackListParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Equal(t, fb.ID, page.Data[0].ID)
	assert.Equal(t, fb.Sentiment, page.Data[0].Sentiment)
}

func TestSubmitFeedbackStorageError(t *testing.T) {
	mockStore := new(MockFeedbackStore)
	mockStore.On("InsertFeedback", mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	svc := NewFeedbackService(mockStore, sentiment.NewAnalyzer(0))
	_, err := svc.SubmitFeedback(context.Background(), types.FeedbackCreate{
		Name:    "A",
		Event:   "E1",
		Comment: "good session",
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.DatabaseError, appErr.Type)
	// Raw driver text stays out of the client-facing fields.
	assert.NotContains(t, appErr.Message, "connection reset")
	assert.NotContains(t, appErr.Detail, "connection reset")
}

func TestSummarize(t *testing.T) {
	records := []*types.Feedback{
		{Sentiment: "Positive"},
		{Sentiment: "negative"},
		{Sentiment: "bogus"},
	}

	summary := Summarize(records)

	assert.Equal(t, 1, summary.Sentiments.Positive)
	assert.Equal(t, 0, summary.Sentiments.Neutral)
	assert.Equal(t, 1, summary.Sentiments.Negative)
	assert.Len(t, summary.RecentFeedback, 3, "unrecognized sentiment stays in the list")
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	assert.Equal(t, types.SentimentCounts{}, summary.Sentiments)
	assert.NotNil(t, summary.RecentFeedback)
	assert.Empty(t, summary.RecentFeedback)
}

func TestGetSummaryFiltersByEvent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.SubmitFeedback(ctx, types.FeedbackCreate{Name: "A", Event: "E1", Comment: "fantastic session!"})
	require.NoError(t, err)
	_, err = svc.SubmitFeedback(ctx, types.FeedbackCreate{Name: "B", Event: "E2", Comment: "boring and pointless"})
	require.NoError(t, err)

	summary, err := svc.GetSummary(ctx, types.FeedbackSummaryParams{EventName: "E1"})
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Sentiments.Positive)
	assert.Equal(t, 0, summary.Sentiments.Negative)
	require.Len(t, summary.RecentFeedback, 1)
	assert.Equal(t, "E1", summary.RecentFeedback[0].Event)
}

func TestEventLifecycle(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// Create, then verify projection.
	require.NoError(t, svc.CreateEvent(ctx, "Foo"))
	events, err := svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.Contains(t, events, "Foo")

	// Duplicate creation conflicts.
	err = svc.CreateEvent(ctx, "Foo")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ConflictError, appErr.Type)

	// Feedback attached to the event is removed with it.
	_, err = svc.SubmitFeedback(ctx, types.FeedbackCreate{Name: "A", Event: "Foo", Comment: "great talk"})
	require.NoError(t, err)

	deleted, err := svc.DeleteEvent(ctx, "Foo")
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted, "placeholder plus one feedback record")

	events, err = svc.ListEvents(ctx)
	require.NoError(t, err)
	assert.NotContains(t, events, "Foo")

	// Second deletion finds nothing.
	_, err = svc.DeleteEvent(ctx, "Foo")
	require.Error(t, err)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.NotFoundError, appErr.Type)
}

func TestCreateEventBlankName(t *testing.T) {
	svc := newTestService()

	err := svc.CreateEvent(context.Background(), "   ")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ValidationError, appErr.Type)
}

func TestCreateEventPlaceholderShape(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.CreateEvent(ctx, "Bar"))

	page, err := svc.ListFeedback(ctx, types.FeedbackListParams{})
	require.NoError(t, err)
	require.Len(t, page.Data, 1)

	placeholder := page.Data[0]
	assert.Equal(t, "Bar", placeholder.Event)
	assert.Equal(t, string(types.SentimentNeutral), placeholder.Sentiment)
	assert.Equal(t, 0, placeholder.Rating)
}
