// internal/game/types.go
//
// Core type definitions for the Word Scramble engine.
// Defines:
//   - Session: state of one game round (root word, accepted words, score).
//   - Snapshot: read-only copy of a session handed to presentation code.
//   - Kind / Rejection: why a candidate word was turned down.
//   - Status / Result: the outcome of a single submission.

package game

import (
	"sync"
	"time"
)

// Session holds the state of a single Word Scramble round.
// Fields are unexported: only the Engine mutates a session, everything else
// reads it through the accessors or Snapshot.
type Session struct {
	id        string
	startedAt time.Time

	mu        sync.Mutex // serialises submissions
	rootWord  string
	usedWords []string // most recent first
	score     int
}

// ID returns the session identifier (a UUID string).
func (s *Session) ID() string { return s.id }

// RootWord returns the word whose letters bound every guess.
func (s *Session) RootWord() string { return s.rootWord }

// StartedAt returns when the session was created (UTC).
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Score returns the current score.
func (s *Session) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

// UsedWords returns a copy of the accepted words, most recent first.
func (s *Session) UsedWords() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.usedWords...)
}

// Snapshot returns a consistent copy of the session state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		ID:        s.id,
		RootWord:  s.rootWord,
		UsedWords: append([]string{}, s.usedWords...),
		Score:     s.score,
		StartedAt: s.startedAt,
	}
}

// Snapshot is a point-in-time projection of a Session.
type Snapshot struct {
	ID        string    `json:"id"`
	RootWord  string    `json:"rootWord"`
	UsedWords []string  `json:"usedWords"`
	Score     int       `json:"score"`
	StartedAt time.Time `json:"startedAt"`
}

// Kind is the stable tag of a rejection.
type Kind string

const (
	KindDuplicateWord      Kind = "duplicate_word"
	KindImpossibleSpelling Kind = "impossible_spelling"
	KindNotARealWord       Kind = "not_a_real_word"
	KindTooShort           Kind = "too_short"
)

// Rejection explains why a candidate was not accepted.
// Title and Message are ready for display.
type Rejection struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// Status is the coarse outcome of a submission.
type Status string

const (
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
	StatusIgnored  Status = "ignored" // empty input
)

// Result is returned by Engine.Submit.
//   - Accepted: Word is the normalised word, Score the new total.
//   - Rejected: Rejection is set.
//   - Ignored:  nothing happened.
type Result struct {
	Status    Status     `json:"status"`
	Word      string     `json:"word,omitempty"`
	Score     int        `json:"score"`
	Rejection *Rejection `json:"rejection,omitempty"`
}
