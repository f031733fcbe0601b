// internal/words/words.go
//
// Word list loading for the game engine.
//
// Responsibilities:
//   - Load the root word candidates and the dictionary word list from files,
//     or fall back to the lists embedded in the assets package.
//   - Supply RandomPicker, the default root word picker.
//   - Normalize: the single case-folding rule shared by root words,
//     dictionary entries and player input.
//
// File format:
//   • One word per line.
//   • Lines are trimmed; case is kept and folded later with the game locale.
//   • Blank lines and lines starting with '#' are skipped.
//
// Environment (read by internal/config, passed in as paths):
//   START_WORDS_FILE=/path/to/start.txt
//   DICTIONARY_FILE=/path/to/dictionary.txt

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/assets"
)

// ErrEmpty is returned when a word list contains no usable words.
var ErrEmpty = errors.New("words: list is empty")

// LoadStartWords reads root word candidates from path,
// or the embedded start.txt when path is empty.
func LoadStartWords(path string) ([]string, error) {
	return load(path, assets.StartWords)
}

// LoadDictionary reads dictionary words from path,
// or the embedded dictionary.txt when path is empty.
func LoadDictionary(path string) ([]string, error) {
	return load(path, assets.Dictionary)
}

func load(path string, embedded func() (io.ReadCloser, error)) ([]string, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = embedded()
		path = "embedded"
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	list, err := Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	return list, nil
}

// Parse reads one word per line from r. Words are returned as written,
// minus surrounding whitespace.
func Parse(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// Normalize trims w and lowercases it with the casing rules of tag
// (Turkish "I" folds to "ı", not "i").
// A Caser is stateful, so one is built per call.
func Normalize(tag language.Tag, w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return ""
	}
	return cases.Lower(tag).String(w)
}

// RandomPicker picks a candidate uniformly at random using crypto/rand.
type RandomPicker struct{}

// Pick returns a random element of candidates, or "" if there are none.
func (RandomPicker) Pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(candidates))))
	if err != nil {
		return candidates[0]
	}
	return candidates[n.Int64()]
}
