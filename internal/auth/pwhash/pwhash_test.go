package pwhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(16, 1000)
	require.NoError(t, err)

	hash, err := ph.HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(hash, "pbkdf2-sha256$1000$"))

	assert.NoError(t, ph.Validate("s3cret", hash))
	assert.ErrorIs(t, ph.Validate("wrong", hash), ErrMismatch)

	again, err := ph.HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, hash, again)

	// hashes made with other settings still validate
	other, err := New(8, 2000)
	require.NoError(t, err)
	assert.NoError(t, other.Validate("s3cret", hash))
}

func TestValidateMalformed(t *testing.T) {
	ph, err := New(16, 1000)
	require.NoError(t, err)

	for _, h := range []string{"", "hash", "bcrypt$1$a$b", "pbkdf2-sha256$x$a$b", "pbkdf2-sha256$1000$!!$b", "pbkdf2-sha256$1000$YWJj$"} {
		assert.ErrorIs(t, ph.Validate("pw", h), ErrMalformedHash, h)
	}
}

func TestNewLimits(t *testing.T) {
	_, err := New(4, 100000)
	assert.Error(t, err)
	_, err = New(16, 10)
	assert.Error(t, err)

	ph, err := New(16, 1000)
	require.NoError(t, err)
	_, err = ph.HashPassword("")
	assert.Error(t, err)
}
