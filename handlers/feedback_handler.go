package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/rahulrai19/Sentiment-Analysis-WebApp/errors"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/services"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
)

// FeedbackHandler handles feedback submission and read endpoints.
type FeedbackHandler struct {
	feedbackService *services.FeedbackService
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(feedbackService *services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// SubmitFeedback godoc
// @Summary      Submit feedback
// @Description  Submit a feedback comment for an event; sentiment is computed server-side
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        body  body      types.FeedbackCreate  true  "Feedback payload"
// @Success      200   {object}  types.SubmitFeedbackResponse
// @Failure      400   {object}  types.ErrorResponse
// @Failure      500   {object}  types.ErrorResponse
// @Router       /api/submit-feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req types.FeedbackCreate
	if !bindJSONOrError(c, &req) {
		return
	}

	fb, err := h.feedbackService.SubmitFeedback(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, types.SubmitFeedbackResponse{
		Status:    "Feedback saved!",
		Sentiment: fb.Sentiment,
	})
}

// FeedbackSummary godoc
// @Summary      Feedback summary
// @Description  Sentiment counts plus the matching feedback records
// @Tags         feedback
// @Produce      json
// @Param        event_name  query     string  false  "Filter by event name"
// @Param        event_type  query     string  false  "Filter by event type"
// @Success      200         {object}  types.FeedbackSummary
// @Failure      400         {object}  types.ErrorResponse
// @Failure      500         {object}  types.ErrorResponse
// @Router       /api/feedback-summary [get]
func (h *FeedbackHandler) FeedbackSummary(c *gin.Context) {
	var params types.FeedbackSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_query_parameters", err.Error()))
		return
	}

	summary, err := h.feedbackService.GetSummary(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ListFeedbacks godoc
// @Summary      List feedback records
// @Description  Paginated listing of all stored feedback records
// @Tags         feedback
// @Produce      json
// @Param        limit  query     int  false  "Page size"      default(20)
// @Param        skip   query     int  false  "Records to skip" default(0)
// @Success      200    {object}  types.FeedbackListResponse
// @Failure      400    {object}  types.ErrorResponse
// @Failure      500    {object}  types.ErrorResponse
// @Router       /feedbacks [get]
func (h *FeedbackHandler) ListFeedbacks(c *gin.Context) {
	var params types.FeedbackListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_query_parameters", err.Error()))
		return
	}

	page, err := h.feedbackService.ListFeedback(c.Request.Context(), params)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// bindJSONOrError binds JSON request body and sets validation error if binding fails.
// Returns true if binding succeeded, false if error was set (caller should return).
func bindJSONOrError(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		_ = c.Error(apperrors.ValidationFailed("invalid_request_payload", err.Error()))
		return false
	}
	return true
}
