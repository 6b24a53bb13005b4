package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("secret123")
	assert.NoError(t, err)
	assert.NotEmpty(t, digest)
	assert.NotEqual(t, "secret123", digest)

	assert.True(t, Verify("secret123", digest))
	assert.False(t, Verify("wrong", digest))
}

func TestHash_DifferentDigests(t *testing.T) {
	// bcrypt salts every digest, so two hashes of the same input differ
	d1, err := Hash("secret123")
	assert.NoError(t, err)
	d2, err := Hash("secret123")
	assert.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}

func TestVerify_InvalidDigest(t *testing.T) {
	assert.False(t, Verify("secret123", "not-a-bcrypt-digest"))
}
