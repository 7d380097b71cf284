package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims are the session-token claims the joko backend issues. We keep the
// registered claim set from golang-jwt so exp/iat parsing tolerates both
// integer and fractional epoch seconds, and add the backend's custom fields.
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the authenticated user. The backend is expected to
	// always include it, but at least one observed response omitted it, so
	// callers must treat a zero value as "unknown".
	UserID int64 `json:"userId,omitempty"`
}

// UserIDClaim returns the user id claim and whether it is usable.
// Zero and negative ids count as absent by convention.
func (c *Claims) UserIDClaim() (int64, bool) {
	if c.UserID <= 0 {
		return 0, false
	}
	return c.UserID, true
}

// ValidateExpiry ensures the token's exp claim is strictly in the future.
// A token expires exactly at exp: now == exp is already expired. A missing
// exp claim is treated as expired rather than immortal.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrExpired
	}
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}
	return nil
}

// ExpiresIn reports how long until the token expires, clamped at zero.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	d := c.ExpiresAt.Time.Sub(now)
	if d < 0 {
		return 0
	}
	return d
}
