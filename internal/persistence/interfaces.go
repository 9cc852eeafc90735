// Package persistence defines the storage contracts for generated reports.
package persistence

import (
	"context"
	"encoding/json"
	"time"
)

// StoredReport is one persisted report row. Payload is the full report JSON
// as handed to consumers.
type StoredReport struct {
	ID          string          `json:"id" db:"id"`
	Handle      string          `json:"handle" db:"handle"`
	Score       int             `json:"score" db:"score"`
	DataQuality string          `json:"data_quality" db:"data_quality"`
	Payload     json.RawMessage `json:"payload" db:"payload"`
	GeneratedAt time.Time       `json:"generated_at" db:"generated_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// ReportStore persists generated reports and serves the latest per handle.
type ReportStore interface {
	// Save inserts a report row and returns its assigned ID.
	Save(ctx context.Context, rep StoredReport) (string, error)

	// Latest returns the most recently generated report for handle, or
	// ErrNotFound when none exists.
	Latest(ctx context.Context, handle string) (*StoredReport, error)

	// History returns up to limit reports for handle, newest first.
	History(ctx context.Context, handle string, limit int) ([]StoredReport, error)
}
