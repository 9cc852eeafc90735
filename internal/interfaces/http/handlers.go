package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/creatorscope/creatorscope/internal/model"
	"github.com/creatorscope/creatorscope/internal/persistence"
	"github.com/creatorscope/creatorscope/internal/source"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   model.ReportVersion,
		Timestamp: time.Now().UTC(),
	})
}

// handleReport serves a report for the handle, from cache when fresh.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	handle := source.NormalizeHandle(mux.Vars(r)["handle"])
	if handle == "" {
		s.writeError(w, http.StatusBadRequest, "invalid_handle", "handle must be non-empty")
		return
	}

	cacheKey := "report:" + handle
	if payload, ok := s.deps.Cache.Get(r.Context(), cacheKey); ok {
		s.deps.Telemetry.CacheHits.Inc()
		s.writeRawJSON(w, http.StatusOK, payload)
		return
	}
	s.deps.Telemetry.CacheMisses.Inc()

	observe, done := s.stageObserver()
	rep, err := s.deps.Builder.Build(r.Context(), handle, observe)
	done()
	if err != nil {
		if errors.Is(err, source.ErrCreatorNotFound) {
			s.deps.Telemetry.Reports.WithLabelValues("not_found").Inc()
			s.writeError(w, http.StatusNotFound, "creator_not_found", "no creator record for @"+handle)
			return
		}
		s.deps.Telemetry.Reports.WithLabelValues("error").Inc()
		log.Error().Err(err).Str("handle", handle).Msg("report generation failed")
		s.writeError(w, http.StatusBadGateway, "upstream_error", "report generation failed")
		return
	}
	s.deps.Telemetry.Reports.WithLabelValues("ok").Inc()

	payload, err := json.Marshal(rep)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "encode_error", "failed to encode report")
		return
	}

	s.deps.Cache.Set(r.Context(), cacheKey, payload, s.deps.ReportTTL)
	s.persist(r, rep, payload)

	s.writeRawJSON(w, http.StatusOK, payload)
}

// handleHistory serves persisted reports for the handle, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.deps.Store == nil {
		s.writeError(w, http.StatusNotImplemented, "persistence_disabled", "report history requires a configured database")
		return
	}

	handle := source.NormalizeHandle(mux.Vars(r)["handle"])
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	reports, err := s.deps.Store.History(r.Context(), handle, limit)
	if err != nil {
		log.Error().Err(err).Str("handle", handle).Msg("history query failed")
		s.writeError(w, http.StatusInternalServerError, "store_error", "failed to load report history")
		return
	}
	s.writeJSON(w, http.StatusOK, reports)
}

func (s *Server) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	s.writeError(w, http.StatusNotFound, "not_found", "unknown route")
}

// persist saves the generated report when a store is configured. Failures
// are logged, never surfaced.
func (s *Server) persist(r *http.Request, rep *model.Report, payload []byte) {
	if s.deps.Store == nil {
		return
	}
	_, err := s.deps.Store.Save(r.Context(), persistence.StoredReport{
		Handle:      rep.Handle,
		Score:       rep.InvestmentReadinessScore,
		DataQuality: rep.Metadata.DataQuality,
		Payload:     payload,
		GeneratedAt: rep.GeneratedAt,
	})
	if err != nil {
		log.Warn().Err(err).Str("handle", rep.Handle).Msg("failed to persist report")
	}
}

// stageObserver feeds pipeline stage durations into the telemetry registry.
// Each stage is observed when the next one begins; done closes out the last
// stage once the pipeline returns.
func (s *Server) stageObserver() (observe func(stage string), done func()) {
	last := time.Now()
	prev := ""
	observe = func(stage string) {
		now := time.Now()
		if prev != "" {
			s.deps.Telemetry.StageDuration.WithLabelValues(prev).Observe(now.Sub(last).Seconds())
		}
		prev = stage
		last = now
	}
	done = func() {
		if prev != "" {
			s.deps.Telemetry.StageDuration.WithLabelValues(prev).Observe(time.Since(last).Seconds())
		}
	}
	return observe, done
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *Server) writeRawJSON(w http.ResponseWriter, status int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, code, message string) {
	s.writeJSON(w, status, errorResponse{Error: code, Message: message})
}
