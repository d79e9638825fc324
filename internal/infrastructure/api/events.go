// internal/infrastructure/api/events.go
package api

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
)

// EventsClient records telemetry events. Recording is best-effort: failures
// are logged and swallowed, never surfaced to callers.
type EventsClient struct {
	client     *Client
	userSource func() string
	log        *logrus.Logger
}

// NewEventsClient creates an events client. userSource supplies the current
// user identifier, empty for anonymous events.
func NewEventsClient(client *Client, userSource func() string, log *logrus.Logger) *EventsClient {
	return &EventsClient{
		client:     client,
		userSource: userSource,
		log:        log,
	}
}

// Record sends a telemetry event.
func (e *EventsClient) Record(ctx context.Context, productID, category, eventType string) {
	req := map[string]string{
		"product_id": productID,
		"category":   category,
		"event_type": eventType,
	}
	if e.userSource != nil {
		req["user_id"] = e.userSource()
	}

	if err := e.client.do(ctx, http.MethodPost, "/events", req, nil); err != nil {
		e.log.WithError(err).WithField("event_type", eventType).Debug("Failed to record event")
	}
}
