package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/opencode-ai/showcase/internal/models"
)

// ErrProgressNotFound is returned when a tour has never run.
var ErrProgressNotFound = errors.New("tour progress not found")

// ProgressRepository tracks which tours have run and finished.
type ProgressRepository struct {
	db *DB
}

// NewProgressRepository creates a new ProgressRepository.
func NewProgressRepository(db *DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// RecordRun counts a new run of tour.
func (r *ProgressRepository) RecordRun(ctx context.Context, tour string) error {
	if strings.TrimSpace(tour) == "" {
		return fmt.Errorf("tour name is required")
	}
	now := time.Now().UTC().Format(timeLayout)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tour_progress (tour, runs, last_run_at) VALUES (?, 1, ?)
		ON CONFLICT(tour) DO UPDATE SET runs = runs + 1, last_run_at = excluded.last_run_at
	`, tour, now)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// MarkCompleted records that tour was seen through to its last step.
func (r *ProgressRepository) MarkCompleted(ctx context.Context, tour string) error {
	if strings.TrimSpace(tour) == "" {
		return fmt.Errorf("tour name is required")
	}
	now := time.Now().UTC().Format(timeLayout)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tour_progress (tour, runs, last_run_at, completed_at) VALUES (?, 0, ?, ?)
		ON CONFLICT(tour) DO UPDATE SET completed_at = excluded.completed_at
	`, tour, now, now)
	if err != nil {
		return fmt.Errorf("failed to mark completed: %w", err)
	}
	return nil
}

// Get returns progress for tour.
func (r *ProgressRepository) Get(ctx context.Context, tour string) (*models.TourProgress, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT tour, runs, last_run_at, completed_at FROM tour_progress WHERE tour = ?
	`, tour)

	progress, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProgressNotFound
	}
	return progress, err
}

// IsCompleted reports whether tour has been completed before.
func (r *ProgressRepository) IsCompleted(ctx context.Context, tour string) (bool, error) {
	progress, err := r.Get(ctx, tour)
	if errors.Is(err, ErrProgressNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return progress.Completed(), nil
}

// List returns progress for every tour that has run, ordered by name.
func (r *ProgressRepository) List(ctx context.Context) ([]*models.TourProgress, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT tour, runs, last_run_at, completed_at FROM tour_progress ORDER BY tour
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query progress: %w", err)
	}
	defer rows.Close()

	var out []*models.TourProgress
	for rows.Next() {
		progress, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, progress)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating progress: %w", err)
	}
	return out, nil
}

// Reset forgets progress for tour, or for every tour when tour is empty.
// It returns the number of tours reset.
func (r *ProgressRepository) Reset(ctx context.Context, tour string) (int, error) {
	var (
		result sql.Result
		err    error
	)
	if tour == "" {
		result, err = r.db.ExecContext(ctx, `DELETE FROM tour_progress`)
	} else {
		result, err = r.db.ExecContext(ctx, `DELETE FROM tour_progress WHERE tour = ?`, tour)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to reset progress: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count reset rows: %w", err)
	}
	return int(affected), nil
}

func scanProgress(row rowScanner) (*models.TourProgress, error) {
	var (
		progress    models.TourProgress
		lastRunAt   string
		completedAt sql.NullString
	)
	if err := row.Scan(&progress.Tour, &progress.Runs, &lastRunAt, &completedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan progress: %w", err)
	}

	if t, err := time.Parse(timeLayout, lastRunAt); err == nil {
		progress.LastRunAt = t
	}
	if completedAt.Valid {
		if t, err := time.Parse(timeLayout, completedAt.String); err == nil {
			progress.CompletedAt = &t
		}
	}
	return &progress, nil
}
