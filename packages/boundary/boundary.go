// Package boundary generates MIME multipart boundary tokens.
//
// Tokens are 16 bytes of cryptographic randomness, hex encoded and
// prefixed with "boundary-". At 128 bits of entropy no collision check
// against part contents is performed.
package boundary

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const prefix = "boundary-"

// Generate returns a fresh boundary token. The entropy source being
// unavailable is not a recoverable condition, so Generate panics instead
// of returning an error.
func Generate() string {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		panic(fmt.Sprintf("boundary: entropy source unavailable: %v", err))
	}
	return prefix + hex.EncodeToString(buf[:])
}
