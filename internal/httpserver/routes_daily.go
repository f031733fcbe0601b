// internal/httpserver/routes_daily.go
//
// HTTP routes for the daily word mode.
//   - GET  /daily     → today's date key
//   - POST /daily/new → start a session whose root word is today's daily word
//
// Every player gets the same root word on a given UTC date; sessions are
// otherwise ordinary and are played through /game/word.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
)

// dailyServer wraps dependencies for /daily endpoints.
type dailyServer struct {
	srv    *Server
	picker daily.Picker
	engine *game.Engine
}

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router, p daily.Picker) {
	dd := &dailyServer{srv: s, picker: p, engine: s.engine.WithPicker(p)}
	r.Route("/daily", func(r chi.Router) {
		r.Get("/", dd.handleToday)
		r.Post("/new", dd.handleNew)
	})
}

// handleToday reports the current daily date key.
func (d *dailyServer) handleToday(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(map[string]string{"date": d.picker.Today()})
}

// dailyNewRes is returned by /daily/new.
type dailyNewRes struct {
	Date    string        `json:"date"`
	Token   string        `json:"token"`
	Session game.Snapshot `json:"session"`
}

// handleNew starts a session on today's root word.
func (d *dailyServer) handleNew(w http.ResponseWriter, r *http.Request) {
	sess, tok, ok := d.srv.startSession(w, r, d.engine)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(dailyNewRes{Date: d.picker.Today(), Token: tok, Session: sess.Snapshot()})
}
