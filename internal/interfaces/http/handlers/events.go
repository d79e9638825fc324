// internal/interfaces/http/handlers/events.go
package handlers

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Event is a recorded telemetry event
type Event struct {
	ProductID  string    `json:"product_id"`
	Category   string    `json:"category"`
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

// EventHandler accepts telemetry events into an in-memory sink
type EventHandler struct {
	mu     sync.Mutex
	events []Event
}

// NewEventHandler creates a new event handler
func NewEventHandler() *EventHandler {
	return &EventHandler{}
}

// Record accepts a telemetry event
func (h *EventHandler) Record(c *gin.Context) {
	var req struct {
		ProductID string `json:"product_id"`
		Category  string `json:"category"`
		EventType string `json:"event_type" binding:"required"`
		UserID    string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	h.mu.Lock()
	h.events = append(h.events, Event{
		ProductID:  req.ProductID,
		Category:   req.Category,
		EventType:  req.EventType,
		UserID:     req.UserID,
		RecordedAt: time.Now().UTC(),
	})
	h.mu.Unlock()

	c.JSON(http.StatusAccepted, gin.H{
		"message": "Event recorded",
	})
}

// Recorded returns a snapshot of accepted events
func (h *EventHandler) Recorded() []Event {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}
