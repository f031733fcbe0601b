package game

import "fmt"

// reasons maps each rejection kind to its display text.
// %s in a message is replaced by the root word.
var reasons = map[Kind]struct{ title, message string }{
	KindDuplicateWord:      {"Word used already", "Be more original"},
	KindImpossibleSpelling: {"Word not possible", "You cannot spell that word from '%s'!"},
	KindNotARealWord:       {"Word not recognized", "You can't just make them up, you know!"},
	KindTooShort:           {"Word is too short", "We are not playing with these tiny ones!"},
}

// rejectionFor builds the Rejection for kind in a session rooted at root.
func rejectionFor(kind Kind, root string) Rejection {
	r := reasons[kind]
	msg := r.message
	if kind == KindImpossibleSpelling {
		msg = fmt.Sprintf(msg, root)
	}
	return Rejection{Kind: kind, Title: r.title, Message: msg}
}
