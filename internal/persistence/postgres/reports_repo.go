// Package postgres implements the report store on PostgreSQL via sqlx.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/creatorscope/creatorscope/internal/persistence"
)

// ErrNotFound is returned when no report exists for the requested handle.
var ErrNotFound = errors.New("report not found")

type reportsRepo struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewReportsRepo creates a PostgreSQL-backed report store.
func NewReportsRepo(db *sqlx.DB, timeout time.Duration) persistence.ReportStore {
	return &reportsRepo{db: db, timeout: timeout}
}

// Save inserts a report row. An empty ID is assigned a fresh UUID.
func (r *reportsRepo) Save(ctx context.Context, rep persistence.StoredReport) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if rep.ID == "" {
		rep.ID = uuid.NewString()
	}

	query := `
		INSERT INTO reports (id, handle, score, data_quality, payload, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.ExecContext(ctx, query,
		rep.ID, rep.Handle, rep.Score, rep.DataQuality, []byte(rep.Payload), rep.GeneratedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", fmt.Errorf("duplicate report %s: %w", rep.ID, err)
		}
		return "", fmt.Errorf("insert report: %w", err)
	}

	return rep.ID, nil
}

// Latest returns the most recently generated report for handle.
func (r *reportsRepo) Latest(ctx context.Context, handle string) (*persistence.StoredReport, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, handle, score, data_quality, payload, generated_at, created_at
		FROM reports
		WHERE handle = $1
		ORDER BY generated_at DESC
		LIMIT 1`

	var rep persistence.StoredReport
	if err := r.db.GetContext(ctx, &rep, query, handle); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query latest report: %w", err)
	}
	return &rep, nil
}

// History returns up to limit reports for handle, newest first.
func (r *reportsRepo) History(ctx context.Context, handle string, limit int) ([]persistence.StoredReport, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	query := `
		SELECT id, handle, score, data_quality, payload, generated_at, created_at
		FROM reports
		WHERE handle = $1
		ORDER BY generated_at DESC
		LIMIT $2`

	reports := []persistence.StoredReport{}
	if err := r.db.SelectContext(ctx, &reports, query, handle, limit); err != nil {
		return nil, fmt.Errorf("query report history: %w", err)
	}
	return reports, nil
}
