// internal/words/fingerprint.go

package words

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint identifies the list's content: SHA-256 over the answer series
// in play order, then the additional guesses in sorted order. Equivalent
// lists loaded from differently ordered or obfuscated files agree.
func (w *WordList) Fingerprint() string {
	h := sha256.New()
	h.Write([]byte("*"))
	for _, a := range w.answers {
		h.Write([]byte(":" + a))
	}
	h.Write([]byte("?"))
	for _, g := range w.extra {
		h.Write([]byte(":" + g))
	}
	return hex.EncodeToString(h.Sum(nil))
}
