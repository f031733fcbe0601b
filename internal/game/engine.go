// internal/game/engine.go
//
// Core engine for Word Scramble sessions.
// Responsibilities:
//   - Create new sessions from a list of candidate root words.
//   - Validate and apply submitted words through an ordered rule list.
//   - Recompute the score after every accepted word.
//
// Notes:
//   - The dictionary and the root word picker are injected; see Dictionary
//     and Picker.
//   - The engine itself is immutable after New and safe for concurrent use.
//     Each Session carries its own lock.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

const (
	DefaultMinLength = 3
	DefaultWordBonus = 5
	DefaultLocale    = "en"
)

// ErrConfiguration marks failures to set up a game, e.g. an empty word list.
var ErrConfiguration = errors.New("configuration error")

// Dictionary reports whether word is a recognised word in locale.
// Implementations must be case-insensitive.
type Dictionary interface {
	Contains(ctx context.Context, word, locale string) (bool, error)
}

// Picker chooses the root word among non-empty, normalised candidates.
type Picker interface {
	Pick(candidates []string) string
}

// Config tunes an Engine. Zero values fall back to the defaults.
type Config struct {
	MinLength int
	WordBonus int
	Locale    string
}

// Engine runs the validation pipeline and scoring for sessions.
type Engine struct {
	dict      Dictionary
	picker    Picker
	minLength int
	wordBonus int
	locale    string
	tag       language.Tag
	rules     []rule
	now       func() time.Time
}

// New constructs an Engine.
func New(dict Dictionary, picker Picker, cfg Config) (*Engine, error) {
	if dict == nil {
		return nil, fmt.Errorf("%w: nil dictionary", ErrConfiguration)
	}
	if picker == nil {
		return nil, fmt.Errorf("%w: nil picker", ErrConfiguration)
	}
	if cfg.MinLength <= 0 {
		cfg.MinLength = DefaultMinLength
	}
	if cfg.WordBonus < 0 {
		return nil, fmt.Errorf("%w: negative word bonus %d", ErrConfiguration, cfg.WordBonus)
	}
	if cfg.WordBonus == 0 {
		cfg.WordBonus = DefaultWordBonus
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	tag, err := language.Parse(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("%w: locale %q: %v", ErrConfiguration, cfg.Locale, err)
	}
	e := &Engine{
		dict:      dict,
		picker:    picker,
		minLength: cfg.MinLength,
		wordBonus: cfg.WordBonus,
		locale:    cfg.Locale,
		tag:       tag,
		now:       time.Now,
	}
	e.rules = e.defaultRules()
	return e, nil
}

// WithPicker returns a copy of e that picks root words with p.
func (e *Engine) WithPicker(p Picker) *Engine {
	c := *e
	c.picker = p
	c.rules = c.defaultRules()
	return &c
}

// Locale returns the language words are checked against.
func (e *Engine) Locale() string { return e.locale }

// NewSession starts a fresh session with a root word picked from candidates.
// Candidates are normalised and blank entries are skipped; if nothing is
// left the returned error wraps ErrConfiguration.
func (e *Engine) NewSession(candidates []string) (*Session, error) {
	usable := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if w := e.normalize(c); w != "" {
			usable = append(usable, w)
		}
	}
	if len(usable) == 0 {
		return nil, fmt.Errorf("%w: no root word candidates", ErrConfiguration)
	}
	root := e.picker.Pick(usable)
	if root == "" {
		return nil, fmt.Errorf("%w: picker returned an empty root word", ErrConfiguration)
	}
	return &Session{
		id:        uuid.NewString(),
		startedAt: e.now().UTC(),
		rootWord:  root,
		usedWords: []string{},
	}, nil
}

// Submit validates raw against the session and, if every rule passes,
// records the word and rescores.
//
// Rule order (first failure wins):
//  1. not used already      → KindDuplicateWord
//  2. spellable from root   → KindImpossibleSpelling
//  3. known to dictionary   → KindNotARealWord
//  4. at least MinLength    → KindTooShort
//
// Rejections are returned in Result, never as errors. The error is non-nil
// only when the dictionary fails, in which case the session is unchanged.
func (e *Engine) Submit(ctx context.Context, s *Session, raw string) (Result, error) {
	word := e.normalize(raw)
	if word == "" {
		return Result{Status: StatusIgnored, Score: s.Score()}, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range e.rules {
		ok, err := r.check(ctx, s, word)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			rej := rejectionFor(r.kind, s.rootWord)
			return Result{Status: StatusRejected, Score: s.score, Rejection: &rej}, nil
		}
	}

	s.usedWords = append([]string{word}, s.usedWords...)
	s.score = e.Score(s.usedWords)
	return Result{Status: StatusAccepted, Word: word, Score: s.score}, nil
}

// Score computes the score of used with the engine's word bonus.
func (e *Engine) Score(used []string) int { return Score(used, e.wordBonus) }

// CurrentScore reports the session's score.
func (e *Engine) CurrentScore(s *Session) int { return s.Score() }

// normalize trims whitespace and lowercases in the engine's locale, the same
// way the dictionary folds its entries.
func (e *Engine) normalize(raw string) string {
	return words.Normalize(e.tag, raw)
}
