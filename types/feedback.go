package types

import (
	"strings"
	"time"
)

// Sentiment is the classifier output label attached to a feedback comment.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNeutral  Sentiment = "Neutral"
	SentimentNegative Sentiment = "Negative"
)

// ParseSentiment maps a stored sentiment value to a known label,
// case-insensitively. Returns false for missing or unrecognized values.
func ParseSentiment(s string) (Sentiment, bool) {
	switch {
	case strings.EqualFold(s, string(SentimentPositive)):
		return SentimentPositive, true
	case strings.EqualFold(s, string(SentimentNeutral)):
		return SentimentNeutral, true
	case strings.EqualFold(s, string(SentimentNegative)):
		return SentimentNegative, true
	default:
		return "", false
	}
}

// Feedback represents a feedback entry stored in the database.
// Records are immutable after creation; there is no update operation.
type Feedback struct {
	ID             string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Event          string    `json:"event" bson:"event"`
	EventType      string    `json:"eventType" bson:"eventType"`
	Comment        string    `json:"comment" bson:"comment"`
	Rating         int       `json:"rating" bson:"rating"`
	Sentiment      string    `json:"sentiment" bson:"sentiment"`
	SubmissionDate time.Time `json:"submissionDate" bson:"submissionDate"`
}

// FeedbackCreate represents the request body for submitting feedback.
// Sentiment is never accepted from the client; it is always server-computed.
type FeedbackCreate struct {
	Name      string `json:"name" binding:"required,max=100"`
	Event     string `json:"event" binding:"required,max=200"`
	EventType string `json:"eventType" binding:"omitempty,max=100"`
	Comment   string `json:"comment" binding:"required,max=5000"`
	Rating    int    `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// SubmitFeedbackResponse is returned by POST /api/submit-feedback.
type SubmitFeedbackResponse struct {
	Status    string `json:"status"`
	Sentiment string `json:"sentiment"`
}

// SentimentCounts holds aggregate sentiment tallies.
type SentimentCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// FeedbackSummary is returned by GET /api/feedback-summary.
type FeedbackSummary struct {
	Sentiments     SentimentCounts `json:"sentiments"`
	RecentFeedback []*Feedback     `json:"recent_feedback"`
}

// FeedbackSummaryParams defines the query parameters for the summary endpoint.
type FeedbackSummaryParams struct {
	EventName string `form:"event_name"`
	EventType string `form:"event_type"`
}

// FeedbackListParams defines the query parameters for the paginated listing.
type FeedbackListParams struct {
	Limit int `form:"limit,default=20" binding:"omitempty,gte=0"`
	Skip  int `form:"skip,default=0" binding:"omitempty,gte=0"`
}

// FeedbackListResponse is returned by GET /feedbacks.
type FeedbackListResponse struct {
	Data  []*Feedback `json:"data"`
	Total int         `json:"total"`
	Limit int         `json:"limit"`
	Skip  int         `json:"skip"`
}
