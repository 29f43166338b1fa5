// Package token inspects bearer tokens issued by the backend without
// verifying them. The client never accepts or rejects a token locally; the
// claims are only surfaced for display (e.g. "whoami" showing expiry).
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformed = errors.New("malformed token")

// Claims is the subset of JWT claims the backend puts into its tokens.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

type peekClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Peek decodes the claims of raw without signature verification.
func Peek(raw string) (Claims, error) {
	var pc peekClaims
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())

	if _, _, err := parser.ParseUnverified(raw, &pc); err != nil {
		return Claims{}, errors.Join(ErrMalformed, err)
	}

	c := Claims{Subject: pc.Subject, Role: pc.Role}
	if pc.ExpiresAt != nil {
		c.ExpiresAt = pc.ExpiresAt.Time
	}
	return c, nil
}

// Expired reports whether the claims carry an expiry in the past.
// A token without an exp claim is never reported as expired.
func (c Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}
