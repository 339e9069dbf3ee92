package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/opencode-ai/showcase/internal/models"
	"github.com/opencode-ai/showcase/internal/showcase"
)

type fakeRepo struct {
	events []*models.Event
	err    error
}

func (r *fakeRepo) Create(ctx context.Context, event *models.Event) error {
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, event)
	return nil
}

func (r *fakeRepo) last() *models.Event {
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

type fakeProgress struct {
	runs      int
	completed int
}

func (p *fakeProgress) RecordRun(ctx context.Context, tour string) error {
	p.runs++
	return nil
}

func (p *fakeProgress) MarkCompleted(ctx context.Context, tour string) error {
	p.completed++
	return nil
}

func TestLogStepShown(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogStepShown(context.Background(), repo, "welcome", 1, 4, "hello"); err != nil {
		t.Fatalf("LogStepShown failed: %v", err)
	}

	event := repo.last()
	if event == nil {
		t.Fatal("expected event to be created")
	}
	if event.Type != models.EventTypeStepShown {
		t.Fatalf("unexpected event type: %q", event.Type)
	}
	if event.EntityID != "welcome" {
		t.Fatalf("unexpected entity id: %q", event.EntityID)
	}

	var payload models.StepShownPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Index != 1 || payload.Total != 4 || payload.Message != "hello" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestLogTourEndedType(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogTourEnded(context.Background(), repo, "welcome", false, 2); err != nil {
		t.Fatalf("LogTourEnded failed: %v", err)
	}
	if repo.last().Type != models.EventTypeTourDismissed {
		t.Fatalf("expected dismissed event, got %q", repo.last().Type)
	}

	if err := LogTourEnded(context.Background(), repo, "welcome", true, 3); err != nil {
		t.Fatalf("LogTourEnded failed: %v", err)
	}
	if repo.last().Type != models.EventTypeTourCompleted {
		t.Fatalf("expected completed event, got %q", repo.last().Type)
	}
}

func TestLogRequiresRepoAndTour(t *testing.T) {
	if err := LogTourStarted(context.Background(), nil, "welcome", 1, "page"); err == nil {
		t.Fatal("expected error for nil repository")
	}
	if err := LogTourStarted(context.Background(), &fakeRepo{}, "", 1, "page"); err == nil {
		t.Fatal("expected error for empty tour")
	}
}

func TestRecorderTracksRun(t *testing.T) {
	repo := &fakeRepo{}
	progress := &fakeProgress{}
	recorder := NewRecorder(context.Background(), "welcome", 2, repo, progress)

	recorder.Started("page")
	recorder.StepShown(0, showcase.NewStep(nil, "a"))
	recorder.StepShown(1, showcase.NewStep(nil, "b"))
	recorder.TourEnded(true)

	if len(repo.events) != 4 {
		t.Fatalf("expected 4 events, got %d", len(repo.events))
	}
	if progress.runs != 1 || progress.completed != 1 {
		t.Fatalf("unexpected progress: %+v", progress)
	}
	if recorder.Shown() != 2 {
		t.Fatalf("expected 2 shown, got %d", recorder.Shown())
	}
}

func TestRecorderDismissDoesNotComplete(t *testing.T) {
	progress := &fakeProgress{}
	recorder := NewRecorder(context.Background(), "welcome", 2, nil, progress)

	recorder.StepShown(0, showcase.NewStep(nil, "a"))
	recorder.TourEnded(false)

	if progress.completed != 0 {
		t.Fatalf("dismissed tour should not be marked completed")
	}
}

func TestRecorderSwallowsWriteErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("disk full")}
	recorder := NewRecorder(context.Background(), "welcome", 1, repo, nil)

	recorder.Started("page")
	recorder.StepShown(0, showcase.NewStep(nil, "a"))
	recorder.TourEnded(true)

	if recorder.Shown() != 1 {
		t.Fatalf("expected step to be counted despite write error")
	}
}

func TestLogError(t *testing.T) {
	repo := &fakeRepo{}

	if err := LogError(context.Background(), repo, "tui", errors.New("boom")); err != nil {
		t.Fatalf("LogError failed: %v", err)
	}
	event := repo.last()
	if event == nil {
		t.Fatal("expected event to be created")
	}
	if event.Type != models.EventTypeError || event.EntityType != models.EntityTypeSystem {
		t.Fatalf("unexpected event: %s %s", event.Type, event.EntityType)
	}
	var payload models.ErrorPayload
	if err := json.Unmarshal(event.Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.Error != "boom" || payload.Context != "tui" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	if err := LogError(context.Background(), repo, "tui", nil); err != nil {
		t.Fatalf("nil cause should be ignored: %v", err)
	}
	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
}

func TestRecorderRestartCountsFromZero(t *testing.T) {
	repo := &fakeRepo{}
	recorder := NewRecorder(context.Background(), "welcome", 2, repo, nil)

	recorder.Started("page")
	recorder.StepShown(0, showcase.NewStep(nil, "a"))
	recorder.StepShown(1, showcase.NewStep(nil, "b"))
	recorder.TourEnded(false)

	recorder.Started("page")
	recorder.StepShown(0, showcase.NewStep(nil, "a"))
	recorder.TourEnded(false)

	if recorder.Shown() != 1 {
		t.Fatalf("expected 1 shown after restart, got %d", recorder.Shown())
	}
	var payload models.TourEndedPayload
	if err := json.Unmarshal(repo.last().Payload, &payload); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if payload.StepsShown != 1 {
		t.Fatalf("expected steps_shown 1, got %d", payload.StepsShown)
	}
}
