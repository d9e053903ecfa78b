package jwt

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-chi/jwtauth/v5"
)

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleRetailer Role = "retailer"

	roleClaim = "role"
)

// Claims is what the portal reads back from a verified token.
type Claims struct {
	Subject string
	Role    Role
}

// RetailerID parses the subject of a retailer token.
func (c Claims) RetailerID() (int, error) {
	if c.Role != RoleRetailer {
		return 0, fmt.Errorf("token role %q is not a retailer", c.Role)
	}
	id, err := strconv.Atoi(c.Subject)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("bad retailer subject %q", c.Subject)
	}
	return id, nil
}

func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (*Claims, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return nil, err
	}
	role, _ := t.Get(roleClaim)
	rs, _ := role.(string)
	return &Claims{
		Subject: t.Subject(),
		Role:    Role(rs),
	}, nil
}

// NewToken creates a JWT carrying the subject (admin username or retailer id)
// and its role.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string, role Role) (string, error) {
	claims := map[string]interface{}{
		"exp":     time.Now().Add(ttl).Unix(),
		"sub":     subject,
		roleClaim: string(role),
	}
	_, ts, err := jwtAuth.Encode(claims)
	if err != nil {
		return "", err
	}
	return ts, nil
}

// FromContext returns the claims jwtauth.Verifier stored on the request context.
func FromContext(ctx context.Context) (*Claims, error) {
	t, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("no token in context")
	}
	rs, _ := claims[roleClaim].(string)
	return &Claims{
		Subject: t.Subject(),
		Role:    Role(rs),
	}, nil
}

type claimsKey struct{}

// WithClaims stores verified claims for handlers.
func WithClaims(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// ClaimsFrom returns claims put by WithClaims.
func ClaimsFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}
