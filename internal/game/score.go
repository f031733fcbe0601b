package game

import "unicode/utf8"

// Score recomputes a session score from scratch:
//
//	len(used)*bonus + total letters across used
//
// Letters are counted as runes.
func Score(used []string, bonus int) int {
	letters := 0
	for _, w := range used {
		letters += utf8.RuneCountInString(w)
	}
	return len(used)*bonus + letters
}
