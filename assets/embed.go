// Package assets embeds the default word lists so the server runs without
// any configured files.
//
//   - start.txt:      candidate root words, one per line.
//   - dictionary.txt: small English dictionary covering words spellable
//     from the start words.
package assets

import (
	"embed"
	"io"
)

//go:embed start.txt dictionary.txt
var FS embed.FS

// StartWords opens the embedded root word list.
func StartWords() (io.ReadCloser, error) {
	return FS.Open("start.txt")
}

// Dictionary opens the embedded dictionary.
func Dictionary() (io.ReadCloser, error) {
	return FS.Open("dictionary.txt")
}
