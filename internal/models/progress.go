package models

import "time"

// TourProgress records how often a tour ran and whether it was finished.
type TourProgress struct {
	Tour        string     `json:"tour"`
	Runs        int        `json:"runs"`
	LastRunAt   time.Time  `json:"last_run_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Completed reports whether the tour was ever seen through to the end.
func (p *TourProgress) Completed() bool {
	return p != nil && p.CompletedAt != nil
}
