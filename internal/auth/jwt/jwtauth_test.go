package jwt

import (
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	tok, err := NewToken(jwtAuth, time.Hour, "42", RoleRetailer)
	require.NoError(t, err)

	c, err := VerifyToken(jwtAuth, tok)
	require.NoError(t, err)
	assert.Equal(t, "42", c.Subject)
	assert.Equal(t, RoleRetailer, c.Role)

	id, err := c.RetailerID()
	require.NoError(t, err)
	assert.Equal(t, 42, id)

	admin, err := NewToken(jwtAuth, time.Hour, "root", RoleAdmin)
	require.NoError(t, err)
	ac, err := VerifyToken(jwtAuth, admin)
	require.NoError(t, err)
	_, err = ac.RetailerID()
	assert.Error(t, err)
}

func TestTokenRejected(t *testing.T) {
	jwtAuth := jwtauth.New("HS256", []byte("secret"), nil)

	expired, err := NewToken(jwtAuth, -time.Minute, "root", RoleAdmin)
	require.NoError(t, err)
	_, err = VerifyToken(jwtAuth, expired)
	assert.Error(t, err)

	other := jwtauth.New("HS256", []byte("other"), nil)
	forged, err := NewToken(other, time.Hour, "root", RoleAdmin)
	require.NoError(t, err)
	_, err = VerifyToken(jwtAuth, forged)
	assert.Error(t, err)
}
