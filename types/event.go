package types

// Events are a derived projection: the distinct event values among stored
// feedback records. Creating an event inserts a placeholder record carrying
// the event name; deleting an event removes every matching record.

// EventCreate represents the request body for creating an event.
type EventCreate struct {
	Name string `json:"name" binding:"required,max=200"`
}

// EventListResponse is returned by GET /api/events.
type EventListResponse struct {
	Events []string `json:"events"`
}

// EventCreateResponse is returned by POST /api/events.
type EventCreateResponse struct {
	Message string `json:"message"`
	Event   string `json:"event"`
}

// MessageResponse is a generic single-message response body.
type MessageResponse struct {
	Message string `json:"message"`
}
