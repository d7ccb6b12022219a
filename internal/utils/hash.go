package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// nonceSize is the number of random bytes drawn for every issued token.
const nonceSize = 32

// NonceHash generates a fresh cryptographically-random 32-byte nonce and
// returns its hex-encoded SHA-256 digest.
//
// The digest is embedded in the token payload as the "token_hash" claim. It
// contributes entropy only: the digest is deterministic from the nonce and
// carries no independent secret, so it must never be treated as a credential
// on its own.
//
// Returns an error only if the operating system's entropy source fails.
func NonceHash() (string, error) {
	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("error reading random nonce: %w", err)
	}

	digest := sha256.Sum256(nonce)
	return hex.EncodeToString(digest[:]), nil
}
