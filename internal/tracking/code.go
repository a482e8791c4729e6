package tracking

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

// Prefix is prepended to every generated tracking code.
const Prefix = "PP-"

// codeBytes is the amount of randomness per code: 3 bytes = 6 hex digits,
// about 16.7M distinct codes.
const codeBytes = 3

// Generate returns a fresh candidate tracking code of the form PP-XXXXXX.
// It is a pure random draw: uniqueness is enforced by the store's unique
// constraint and the caller's insert-and-retry loop, not here.
func Generate() string {
	buf := make([]byte, codeBytes)
	// rand.Read never returns an error on supported platforms
	_, _ = rand.Read(buf)
	return Prefix + strings.ToUpper(hex.EncodeToString(buf))
}
