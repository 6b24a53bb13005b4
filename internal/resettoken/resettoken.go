// Package resettoken generates one-time password reset tokens. Only the
// sha256 hash of a token is ever persisted; the plaintext goes back to the
// caller for out-of-band delivery.
package resettoken

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Generate returns a new high-entropy token as (plaintext, hash). The
// plaintext is 20 random bytes hex-encoded.
func Generate() (plain string, hash string, err error) {
	buf := make([]byte, 20)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	plain = hex.EncodeToString(buf)
	return plain, Hash(plain), nil
}

// Hash returns the hex-encoded sha256 digest of a plaintext token, the form
// under which tokens are stored and looked up.
func Hash(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
