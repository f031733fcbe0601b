// Package daily picks the same root word for everyone on a given UTC date.
//
// The word of the day is candidates[HMAC-SHA256(salt, "YYYY-MM-DD") mod n].
// Changing the salt reshuffles every future (and past) day.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"
)

// dateLayout keys a day in UTC.
const dateLayout = "2006-01-02"

// Picker selects the root word of the day.
// Now defaults to time.Now when nil.
type Picker struct {
	Salt string
	Now  func() time.Time
}

// Pick returns today's word from candidates, or "" if there are none.
func (p Picker) Pick(candidates []string) string {
	if len(candidates) == 0 {
		return ""
	}
	mac := hmac.New(sha256.New, []byte(p.Salt))
	mac.Write([]byte(p.Today()))
	seed := binary.BigEndian.Uint64(mac.Sum(nil))
	return candidates[seed%uint64(len(candidates))]
}

// Today returns the UTC date key the picker currently uses.
func (p Picker) Today() string { return p.now().UTC().Format(dateLayout) }

func (p Picker) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
