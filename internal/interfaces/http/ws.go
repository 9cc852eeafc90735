package http

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/creatorscope/creatorscope/internal/model"
	"github.com/creatorscope/creatorscope/internal/source"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// liveMessage is one frame on the live report socket: stage updates while
// the pipeline runs, then exactly one of report or error.
type liveMessage struct {
	Stage  string        `json:"stage,omitempty"`
	Report *model.Report `json:"report,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// handleLive streams pipeline progress over a websocket and finishes with
// the full report.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	handle := source.NormalizeHandle(mux.Vars(r)["handle"])

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	observe, done := s.stageObserver()
	rep, err := s.deps.Builder.Build(r.Context(), handle, func(stage string) {
		observe(stage)
		if err := conn.WriteJSON(liveMessage{Stage: stage}); err != nil {
			log.Debug().Err(err).Msg("live stage write failed")
		}
	})
	done()
	if err != nil {
		msg := "report generation failed"
		if errors.Is(err, source.ErrCreatorNotFound) {
			msg = "creator not found"
		}
		_ = conn.WriteJSON(liveMessage{Error: msg})
		return
	}

	if err := conn.WriteJSON(liveMessage{Report: rep}); err != nil {
		log.Debug().Err(err).Msg("live report write failed")
	}
}
