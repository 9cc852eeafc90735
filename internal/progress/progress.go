// Package progress provides the fixed-checkpoint progress side channel the
// report pipeline notifies as it advances through its stages.
package progress

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Func receives a human-readable stage label at each pipeline checkpoint.
type Func func(stage string)

// Stages is the fixed pipeline stage sequence, in invocation order.
var Stages = []string{
	"Fetching creator data...",
	"Fetching time series data...",
	"Fetching top posts...",
	"Analyzing topic influence...",
	"Mapping network...",
	"Calculating metrics...",
}

// Tracker logs each pipeline stage and forwards it to an optional callback.
// The zero value is usable; a nil Tracker is a no-op.
type Tracker struct {
	callback  Func
	started   time.Time
	stage     string
	stageIdx  int
	stageTime time.Time
}

// NewTracker returns a tracker that forwards stage labels to callback.
// A nil callback just logs.
func NewTracker(callback Func) *Tracker {
	return &Tracker{callback: callback, started: time.Now(), stageIdx: -1}
}

// Stage records entry into the named pipeline stage.
func (t *Tracker) Stage(label string) {
	if t == nil {
		return
	}
	if t.stage != "" {
		log.Debug().
			Str("stage", t.stage).
			Dur("duration", time.Since(t.stageTime)).
			Msg("pipeline stage completed")
	}
	t.stage = label
	t.stageIdx++
	t.stageTime = time.Now()

	log.Info().
		Str("stage", label).
		Int("stage_number", t.stageIdx+1).
		Int("total_stages", len(Stages)).
		Msg("pipeline stage started")

	if t.callback != nil {
		t.callback(label)
	}
}

// Finish logs the pipeline completion summary.
func (t *Tracker) Finish() {
	if t == nil {
		return
	}
	if t.stage != "" {
		log.Debug().
			Str("stage", t.stage).
			Dur("duration", time.Since(t.stageTime)).
			Msg("pipeline stage completed")
	}
	log.Info().
		Dur("total_duration", time.Since(t.started)).
		Msg("pipeline completed")
}
