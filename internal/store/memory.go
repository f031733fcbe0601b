// internal/store/memory.go
//
// In-memory store of live game sessions.
//
// Characteristics:
//   - Stores *game.Session objects keyed by session ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Get returns ErrNotFound for unknown IDs.
//   - Janitor drops sessions older than the token lifetime.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Store defines the interface for holding live sessions.
type Store interface {
	// Save adds or replaces a session.
	Save(ctx context.Context, s *game.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (*game.Session, error)

	// Delete drops a session. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Prune drops sessions started before cutoff and reports how many.
	Prune(ctx context.Context, cutoff time.Time) (int, error)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session // keyed by Session.ID()
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*game.Session)}
}

func (m *memory) Save(_ context.Context, s *game.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID()] = s
	return nil
}

func (m *memory) Get(_ context.Context, id string) (*game.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

func (m *memory) Prune(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for id, s := range m.sessions {
		if s.StartedAt().Before(cutoff) {
			delete(m.sessions, id)
			n++
		}
	}
	return n, nil
}

// Janitor prunes sessions older than ttl every interval until ctx is done.
func Janitor(ctx context.Context, st Store, interval, ttl time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			n, err := st.Prune(ctx, now.Add(-ttl))
			if err != nil {
				log.Warn().Err(err).Msg("prune sessions")
				continue
			}
			if n > 0 {
				log.Debug().Int("pruned", n).Msg("expired sessions removed")
			}
		}
	}
}
