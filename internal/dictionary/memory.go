// Package dictionary implements the word oracle consulted by the game engine.
//
// Two backends:
//   - Memory: a locale → word set map, built from word lists at startup.
//   - SQLite: a words(locale, word) table, for dictionaries too large to
//     keep resident or shared between processes.
//
// Both are case-insensitive, folding words with the casing rules of the
// locale they are stored under, and safe for concurrent use.
package dictionary

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

// Memory is an in-memory dictionary.
type Memory struct {
	mu   sync.RWMutex
	sets map[string]map[string]struct{} // locale → words
}

// NewMemory returns a dictionary holding list under locale.
func NewMemory(locale string, list []string) *Memory {
	m := &Memory{sets: make(map[string]map[string]struct{})}
	m.Add(locale, list...)
	return m
}

// Add inserts words under locale.
func (m *Memory) Add(locale string, list ...string) {
	locale = normalizeLocale(locale)
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[locale]
	if !ok {
		set = make(map[string]struct{}, len(list))
		m.sets[locale] = set
	}
	for _, w := range list {
		if w = normalizeWord(locale, w); w != "" {
			set[w] = struct{}{}
		}
	}
}

// Contains reports whether word is known in locale.
func (m *Memory) Contains(_ context.Context, word, locale string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	locale = normalizeLocale(locale)
	_, ok := m.sets[locale][normalizeWord(locale, word)]
	return ok, nil
}

// Len returns the number of words stored under locale.
func (m *Memory) Len(locale string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sets[normalizeLocale(locale)])
}

// normalizeWord folds w for an already normalised locale.
func normalizeWord(locale, w string) string {
	return words.Normalize(language.Make(locale), w)
}

// normalizeLocale folds "en-US", "en_us" and "EN" to "en".
func normalizeLocale(l string) string {
	l = strings.ToLower(strings.TrimSpace(l))
	if i := strings.IndexAny(l, "-_"); i > 0 {
		l = l[:i]
	}
	return l
}
