// internal/httpserver/tokens.go
//
// Session tokens and the middleware that resolves them.
//   - Tokens are HS256 JWTs with "sid" (session ID), "iat" and "exp" claims.
//   - They travel as "Authorization: Bearer <token>" or in an HttpOnly cookie.
//   - requireSession loads the referenced session into the request context.

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
)

var errNoToken = errors.New("no token")

// tokenIssuer signs and verifies session tokens.
type tokenIssuer struct {
	secret     []byte
	ttl        time.Duration
	cookieName string
	secure     bool
}

// sign creates a token for session id.
func (t tokenIssuer) sign(id string) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(t.ttl)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": id,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})
	ss, err := tok.SignedString(t.secret)
	return ss, exp, err
}

// parse verifies raw and returns the session ID it carries.
func (t tokenIssuer) parse(raw string) (string, error) {
	if raw == "" {
		return "", errNoToken
	}
	claims := jwt.MapClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !tok.Valid {
		return "", errors.New("invalid token")
	}
	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", errors.New("token without session")
	}
	return sid, nil
}

// setCookie writes the token cookie.
func (t tokenIssuer) setCookie(w http.ResponseWriter, token string, exp time.Time) {
	sameSite := http.SameSiteLaxMode
	if t.secure {
		sameSite = http.SameSiteNoneMode // required for third‑party contexts when Secure
	}
	http.SetCookie(w, &http.Cookie{
		Name:     t.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   t.secure,
		SameSite: sameSite,
		Expires:  exp,
	})
}

// bearerOrCookie extracts a bearer token from the Authorization header or cookie.
func bearerOrCookie(r *http.Request, cookieName string) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(cookieName); err == nil {
		return c.Value
	}
	return ""
}

// ctxSessionKey is the context key for the resolved *game.Session.
type ctxSessionKey struct{}

// requireSession enforces a valid token and injects the session into the
// request context. 401 for missing/invalid tokens, 404 for unknown sessions.
func (s *Server) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid, err := s.tokens.parse(bearerOrCookie(r, s.tokens.cookieName))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		sess, err := s.store.Get(r.Context(), sid)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "session_not_found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "store_error")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session placed by requireSession.
func sessionFrom(r *http.Request) *game.Session {
	sess, _ := r.Context().Value(ctxSessionKey{}).(*game.Session)
	return sess
}
