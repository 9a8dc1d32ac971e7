package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/sentiment"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/internal/store/memory"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/middleware"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/services"
	"github.com/rahulrai19/Sentiment-Analysis-WebApp/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deleteReq(r *gin.Engine, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestEventLifecycleOverHTTP(t *testing.T) {
	r, _ := setupFeedbackRouter()

	// Create.
	w := postJSON(t, r, "/api/events", types.EventCreate{Name: "GopherCon"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created types.EventCreateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Event created", created.Message)
	assert.Equal(t, "GopherCon", created.Event)

	// Duplicate create conflicts.
	w = postJSON(t, r, "/api/events", types.EventCreate{Name: "GopherCon"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Listed.
	w = getJSON(r, "/api/events")
	require.Equal(t, http.StatusOK, w.Code)

	var list types.EventListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Contains(t, list.Events, "GopherCon")

	// Delete removes the event and all its feedback.
	w = postJSON(t, r, "/api/submit-feedback", types.FeedbackCreate{
		Name: "A", Event: "GopherCon", Comment: "great talks all around",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = deleteReq(r, "/api/events/GopherCon", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var msg types.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &msg))
	assert.Equal(t, "Event deleted", msg.Message)

	// Deleting again is a 404.
	w = deleteReq(r, "/api/events/GopherCon", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = getJSON(r, "/api/events")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.NotContains(t, list.Events, "GopherCon")
}

func TestCreateEventBlankNameHTTP(t *testing.T) {
	r, _ := setupFeedbackRouter()

	w := postJSON(t, r, "/api/events", map[string]interface{}{"name": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/api/events", map[string]interface{}{"name": "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEventAdminRoutesRequireAPIKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := services.NewFeedbackService(memory.NewFeedbackStore(), sentiment.NewAnalyzer(0))
	eh := NewEventHandler(svc)

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	admin := r.Group("/api", middleware.APIKeyAuth("secret"))
	admin.POST("/events", eh.CreateEvent)
	admin.DELETE("/events/:event_name", eh.DeleteEvent)

	// No key.
	w := postJSON(t, r, "/api/events", types.EventCreate{Name: "KubeCon"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Wrong key.
	req := httptest.NewRequest(http.MethodPost, "/api/events", nil)
	req.Header.Set("X-API-Key", "wrong")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct key passes through to the handler.
	req = httptest.NewRequest(http.MethodPost, "/api/events", strings.NewReader(`{"name":"KubeCon"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", "secret")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = deleteReq(r, "/api/events/KubeCon", map[string]string{"X-API-Key": "secret"})
	assert.Equal(t, http.StatusOK, w.Code)
}
