package db

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opencode-ai/showcase/internal/models"
)

func TestEventRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	payload, err := json.Marshal(models.StepShownPayload{Index: 1, Total: 3, Message: "hi"})
	require.NoError(t, err)

	event := &models.Event{
		Type:       models.EventTypeStepShown,
		EntityType: models.EntityTypeTour,
		EntityID:   "welcome",
		Payload:    payload,
		Metadata:   map[string]string{"surface": "page"},
	}
	require.NoError(t, repo.Create(ctx, event))
	require.NotEmpty(t, event.ID)
	require.False(t, event.Timestamp.IsZero())

	got, err := repo.Get(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, models.EventTypeStepShown, got.Type)
	require.Equal(t, "welcome", got.EntityID)
	require.Equal(t, "page", got.Metadata["surface"])
	require.JSONEq(t, string(payload), string(got.Payload))
}

func TestEventRepositoryRejectsInvalidEvent(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))

	err := repo.Create(context.Background(), &models.Event{Type: models.EventTypeStepShown})
	require.True(t, errors.Is(err, ErrInvalidEvent))
	require.ErrorIs(t, repo.Create(context.Background(), nil), ErrInvalidEvent)
}

func TestEventRepositoryGetMissing(t *testing.T) {
	repo := NewEventRepository(openTestDB(t))

	_, err := repo.Get(context.Background(), "missing")
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestEventRepositoryListByTour(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(openTestDB(t))

	base := time.Now().UTC()
	types := []models.EventType{models.EventTypeTourStarted, models.EventTypeStepShown, models.EventTypeTourCompleted}
	for i, eventType := range types {
		require.NoError(t, repo.Create(ctx, &models.Event{
			Type:       eventType,
			EntityType: models.EntityTypeTour,
			EntityID:   "welcome",
			Timestamp:  base.Add(time.Duration(i) * time.Second),
		}))
	}
	require.NoError(t, repo.Create(ctx, &models.Event{
		Type:       models.EventTypeTourStarted,
		EntityType: models.EntityTypeTour,
		EntityID:   "other",
	}))

	events, err := repo.ListByTour(ctx, "welcome", 0)
	require.NoError(t, err)
	require.Len(t, events, 3)
	for i, event := range events {
		require.Equal(t, types[i], event.Type)
	}

	limited, err := repo.ListByTour(ctx, "welcome", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
}
