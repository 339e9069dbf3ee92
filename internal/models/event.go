// Package models defines the records Showcase persists.
package models

import (
	"encoding/json"
	"errors"
	"strings"
	"time"
)

// EventType categorizes events in the system.
type EventType string

const (
	// Tour events
	EventTypeTourStarted   EventType = "tour.started"
	EventTypeStepShown     EventType = "tour.step_shown"
	EventTypeTourCompleted EventType = "tour.completed"
	EventTypeTourDismissed EventType = "tour.dismissed"

	// System events
	EventTypeError EventType = "error"
)

// EntityType identifies the type of entity an event relates to.
type EntityType string

const (
	EntityTypeTour   EntityType = "tour"
	EntityTypeSystem EntityType = "system"
)

// Event represents an append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// EntityType identifies what kind of entity this event relates to.
	EntityType EntityType `json:"entity_type"`

	// EntityID is the ID of the related entity. For tours this is the tour name.
	EntityID string `json:"entity_id"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`

	// Metadata contains additional context.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate checks if the event is valid.
func (e *Event) Validate() error {
	var errs []error
	if strings.TrimSpace(string(e.Type)) == "" {
		errs = append(errs, errors.New("event type is required"))
	}
	if strings.TrimSpace(string(e.EntityType)) == "" {
		errs = append(errs, errors.New("entity_type is required"))
	}
	if strings.TrimSpace(e.EntityID) == "" {
		errs = append(errs, errors.New("entity_id is required"))
	}
	return errors.Join(errs...)
}

// TourStartedPayload is the payload for tour.started events.
type TourStartedPayload struct {
	Steps   int    `json:"steps"`
	Surface string `json:"surface"`
}

// StepShownPayload is the payload for tour.step_shown events.
type StepShownPayload struct {
	Index   int    `json:"index"`
	Total   int    `json:"total"`
	Message string `json:"message,omitempty"`
}

// TourEndedPayload is the payload for tour.completed and tour.dismissed events.
type TourEndedPayload struct {
	StepsShown int `json:"steps_shown"`
}

// ErrorPayload is the payload for error events.
type ErrorPayload struct {
	Error   string `json:"error"`
	Context string `json:"context,omitempty"`
}
