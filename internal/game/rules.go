package game

import (
	"context"
	"fmt"
	"unicode/utf8"
)

// rule is one step of the validation pipeline. check runs with the session
// lock held and reports whether word passes.
type rule struct {
	kind  Kind
	check func(ctx context.Context, s *Session, word string) (bool, error)
}

// defaultRules returns the pipeline in evaluation order. A duplicate of an
// impossible word must report "already used", so order is significant.
func (e *Engine) defaultRules() []rule {
	return []rule{
		{KindDuplicateWord, isOriginal},
		{KindImpossibleSpelling, isPossible},
		{KindNotARealWord, e.isReal},
		{KindTooShort, e.isLongEnough},
	}
}

func isOriginal(_ context.Context, s *Session, word string) (bool, error) {
	for _, w := range s.usedWords {
		if w == word {
			return false, nil
		}
	}
	return true, nil
}

func isPossible(_ context.Context, s *Session, word string) (bool, error) {
	return spellable(s.rootWord, word), nil
}

func (e *Engine) isReal(ctx context.Context, _ *Session, word string) (bool, error) {
	ok, err := e.dict.Contains(ctx, word, e.locale)
	if err != nil {
		return false, fmt.Errorf("dictionary: %w", err)
	}
	return ok, nil
}

func (e *Engine) isLongEnough(_ context.Context, _ *Session, word string) (bool, error) {
	return utf8.RuneCountInString(word) >= e.minLength, nil
}

// spellable reports whether every letter of word is available in root,
// consuming one occurrence per use so repeated letters are bounded by the
// root's own counts.
func spellable(root, word string) bool {
	counts := make(map[rune]int, len(root))
	for _, r := range root {
		counts[r]++
	}
	for _, r := range word {
		if counts[r] == 0 {
			return false
		}
		counts[r]--
	}
	return true
}
