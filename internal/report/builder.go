// Package report orchestrates the full analysis pipeline: fetch raw records
// through the Source collaborator, then assemble the immutable Report in one
// pass (metrics, score, insights, narrative, derived metrics,
// recommendations, metadata).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/creatorscope/creatorscope/internal/model"
	"github.com/creatorscope/creatorscope/internal/progress"
	"github.com/creatorscope/creatorscope/internal/source"
)

// Source is the fetch-and-parse boundary the builder depends on.
// source.Client implements it.
type Source interface {
	Creator(ctx context.Context, handle string) (*model.CreatorProfile, error)
	TimeSeries(ctx context.Context, handle string) ([]model.TimeSeriesPoint, error)
	Posts(ctx context.Context, handle string) ([]model.Post, error)
}

// Raw is the private snapshot a report is assembled from. Each invocation of
// Build constructs a fresh one, so concurrent report generation never shares
// mutable state.
type Raw struct {
	Creator    *model.CreatorProfile
	TimeSeries []model.TimeSeriesPoint
	Posts      []model.Post

	// Degraded names the secondary sources whose fetch failed and was
	// recovered with an empty section.
	Degraded []string
}

// Builder generates reports. Now is injectable for deterministic output in
// tests; it defaults to time.Now.
type Builder struct {
	src Source
	now func() time.Time
}

// NewBuilder returns a Builder reading from src.
func NewBuilder(src Source) *Builder {
	return &Builder{src: src, now: time.Now}
}

// WithClock overrides the builder's clock. Used by tests.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Build fetches the raw records for handle and assembles the report. A
// missing creator aborts with an error wrapping source.ErrCreatorNotFound;
// secondary fetch failures degrade to empty sections and the pipeline
// continues. onProgress (optional) receives each stage label in order.
func (b *Builder) Build(ctx context.Context, handle string, onProgress progress.Func) (*model.Report, error) {
	handle = source.NormalizeHandle(handle)
	tracker := progress.NewTracker(onProgress)

	tracker.Stage("Fetching creator data...")
	creator, err := b.src.Creator(ctx, handle)
	if err != nil {
		return nil, fmt.Errorf("fetch creator %q: %w", handle, err)
	}

	raw := Raw{Creator: creator}

	tracker.Stage("Fetching time series data...")
	if series, err := b.src.TimeSeries(ctx, handle); err != nil {
		log.Warn().Err(err).Str("handle", handle).Msg("time series unavailable, continuing without it")
		raw.Degraded = append(raw.Degraded, "time_series")
	} else {
		raw.TimeSeries = series
	}

	tracker.Stage("Fetching top posts...")
	if posts, err := b.src.Posts(ctx, handle); err != nil {
		log.Warn().Err(err).Str("handle", handle).Msg("posts unavailable, continuing without them")
		raw.Degraded = append(raw.Degraded, "posts")
	} else {
		raw.Posts = posts
	}

	rep := Assemble(handle, raw, b.now().UTC(), tracker)
	tracker.Finish()

	log.Info().
		Str("handle", handle).
		Int("score", rep.InvestmentReadinessScore).
		Str("momentum", string(rep.Metrics.Momentum)).
		Msg("report generated")

	return rep, nil
}
