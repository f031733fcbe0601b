// internal/httpserver/server.go
//
// HTTP server wiring for the Word Scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, GET /game, POST /game/word.
//   - Daily endpoints: mounted under /daily (see routes_daily.go).
//
// Notes:
//   - A session token (HS256 JWT carrying the session ID) is returned by the
//     /new endpoints and accepted as "Authorization: Bearer" or cookie.
//   - Rejected words are normal 200 responses with status "rejected";
//     only transport and dictionary failures produce error codes.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

// Options configures a Server.
type Options struct {
	Engine     *game.Engine
	Daily      daily.Picker
	Store      store.Store
	Candidates []string

	JWTSecret    string
	SessionTTL   time.Duration
	CookieName   string
	CookieSecure bool
	ClientOrigin string
}

// Server bundles router, engines, session store and token settings.
type Server struct {
	r          *chi.Mux
	engine     *game.Engine
	store      store.Store
	candidates []string
	tokens     tokenIssuer
	origin     string
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:          chi.NewRouter(),
		engine:     opts.Engine,
		store:      opts.Store,
		candidates: opts.Candidates,
		tokens: tokenIssuer{
			secret:     []byte(opts.JWTSecret),
			ttl:        opts.SessionTTL,
			cookieName: opts.CookieName,
			secure:     opts.CookieSecure,
		},
		origin: opts.ClientOrigin,
	}
	if s.tokens.cookieName == "" {
		s.tokens.cookieName = "wordscramble_token"
	}
	if s.tokens.ttl <= 0 {
		s.tokens.ttl = 24 * time.Hour
	}
	if s.origin == "" {
		s.origin = "http://localhost:5173"
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access log
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordscramble-go","endpoints":["/health","POST /game/new","GET /game","POST /game/word","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Post("/game/new", s.handleNewGame)
	s.r.With(s.requireSession).Get("/game", s.handleGetGame)
	s.r.With(s.requireSession).Post("/game/word", s.handleWord)

	s.mountDaily(s.r, opts.Daily)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Handler exposes the router (used by main and tests).
func (s *Server) Handler() http.Handler { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// accessLog writes one zerolog line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------ GAME ---------------------------------------

// newGameRes is returned by POST /game/new.
type newGameRes struct {
	Token   string        `json:"token"`
	Session game.Snapshot `json:"session"`
}

// handleNewGame discards the caller's previous session (if any) and starts
// a new one.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	sess, tok, ok := s.startSession(w, r, s.engine)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(newGameRes{Token: tok, Session: sess.Snapshot()})
}

// startSession replaces the caller's session with one from eng, stores it,
// and issues a token. On failure it writes the error response and the
// caller's previous session is left in place.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, eng *game.Engine) (*game.Session, string, bool) {
	sess, err := eng.NewSession(s.candidates)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		if errors.Is(err, game.ErrConfiguration) {
			writeError(w, http.StatusServiceUnavailable, "no_root_words")
			return nil, "", false
		}
		writeError(w, http.StatusInternalServerError, "new_session_failed")
		return nil, "", false
	}
	if err := s.store.Save(r.Context(), sess); err != nil {
		log.Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return nil, "", false
	}
	tok, exp, err := s.tokens.sign(sess.ID())
	if err != nil {
		log.Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return nil, "", false
	}
	s.tokens.setCookie(w, tok, exp)
	if old, err := s.tokens.parse(bearerOrCookie(r, s.tokens.cookieName)); err == nil && old != sess.ID() {
		if err := s.store.Delete(r.Context(), old); err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Warn().Err(err).Str("session", old).Msg("discard previous session")
		}
	}
	log.Info().Str("session", sess.ID()).Str("root", sess.RootWord()).Msg("session started")
	return sess, tok, true
}

// handleGetGame returns the caller's session snapshot.
func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	_ = json.NewEncoder(w).Encode(sessionFrom(r).Snapshot())
}

// wordReq/Res payloads for POST /game/word.
type wordReq struct {
	Word string `json:"word"`
}
type wordRes struct {
	game.Result
	Session game.Snapshot `json:"session"`
}

// handleWord runs a submission through the engine.
func (s *Server) handleWord(w http.ResponseWriter, r *http.Request) {
	var req wordReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sess := sessionFrom(r)
	res, err := s.engine.Submit(r.Context(), sess, req.Word)
	if err != nil {
		log.Error().Err(err).Str("session", sess.ID()).Msg("submit word")
		writeError(w, http.StatusBadGateway, "dictionary_unavailable")
		return
	}
	if res.Rejection != nil {
		log.Debug().Str("session", sess.ID()).Str("kind", string(res.Rejection.Kind)).Msg("word rejected")
	}
	_ = json.NewEncoder(w).Encode(wordRes{Result: res, Session: sess.Snapshot()})
}

// ------------------------------- util ---------------------------------------

// writeError writes {"error": code} with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}
