// Package events provides helper functions for logging Showcase tour events.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/opencode-ai/showcase/internal/models"
)

// Repository is the minimal interface needed to write events.
type Repository interface {
	Create(ctx context.Context, event *models.Event) error
}

// LogTourStarted records the start of a tour run.
func LogTourStarted(ctx context.Context, repo Repository, tour string, steps int, surface string) error {
	return logTourEvent(ctx, repo, tour, models.EventTypeTourStarted, models.TourStartedPayload{
		Steps:   steps,
		Surface: surface,
	})
}

// LogStepShown records that a step's overlay was revealed.
func LogStepShown(ctx context.Context, repo Repository, tour string, index, total int, message string) error {
	return logTourEvent(ctx, repo, tour, models.EventTypeStepShown, models.StepShownPayload{
		Index:   index,
		Total:   total,
		Message: message,
	})
}

// LogTourEnded records a completed or dismissed tour.
func LogTourEnded(ctx context.Context, repo Repository, tour string, completed bool, shown int) error {
	eventType := models.EventTypeTourDismissed
	if completed {
		eventType = models.EventTypeTourCompleted
	}
	return logTourEvent(ctx, repo, tour, eventType, models.TourEndedPayload{StepsShown: shown})
}

// LogError records a failure outside a tour's own events, such as the
// terminal host exiting with an error.
func LogError(ctx context.Context, repo Repository, source string, cause error) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if cause == nil {
		return nil
	}

	data, err := json.Marshal(models.ErrorPayload{Error: cause.Error(), Context: source})
	if err != nil {
		return fmt.Errorf("failed to marshal error payload: %w", err)
	}

	return repo.Create(ctx, &models.Event{
		Type:       models.EventTypeError,
		EntityType: models.EntityTypeSystem,
		EntityID:   source,
		Payload:    data,
	})
}

func logTourEvent(ctx context.Context, repo Repository, tour string, eventType models.EventType, payload any) error {
	if repo == nil {
		return fmt.Errorf("event repository is required")
	}
	if tour == "" {
		return fmt.Errorf("tour name is required")
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}

	event := &models.Event{
		Type:       eventType,
		EntityType: models.EntityTypeTour,
		EntityID:   tour,
		Payload:    data,
	}

	return repo.Create(ctx, event)
}
