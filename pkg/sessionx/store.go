// Package sessionx owns the client-side session state: the persisted token
// pair with its derived user id, and the guard that decides whether a stored
// session is still usable.
package sessionx

import (
	"log/slog"

	"github.com/jokoapp/joko-go/pkg/jwtx"
)

// Storage keys shared by every Store driver. The names are part of the
// on-device layout and must not change between releases.
const (
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
	KeyUserID       = "user_id"
)

// Store persists the session token pair and the user id derived from the
// access token. Implementations must be safe for concurrent use: a logout can
// race an in-flight request, so readers have to tolerate the keys vanishing
// between calls. Reads never fail loudly; a driver that cannot reach its
// backing storage reports "absent" and logs the cause.
type Store interface {
	// Save persists the access token and, when non-empty, the refresh token.
	// The access token's userId claim is decoded and persisted alongside;
	// a token without a usable claim leaves the user id unset. That is a
	// recoverable condition (the session still works, the id is unknown),
	// so Save logs it rather than failing.
	Save(accessToken, refreshToken string) error

	// AccessToken returns the stored access token, if any.
	AccessToken() (string, bool)

	// RefreshToken returns the stored refresh token, if any.
	RefreshToken() (string, bool)

	// UserID returns the stored user id. Ids that were stored as zero or
	// negative read back as absent.
	UserID() (int64, bool)

	// Clear removes all three keys.
	Clear() error
}

// UserIDFromToken decodes the access token and extracts a usable userId
// claim. A malformed token or an absent/non-positive claim yields false;
// drivers share this so every Store treats the claim identically.
func UserIDFromToken(log *slog.Logger, token string) (int64, bool) {
	claims, err := jwtx.DecodeClaims(token)
	if err != nil {
		log.Warn("access token payload not decodable, user id left unset", "err", err)
		return 0, false
	}

	id, ok := claims.UserIDClaim()
	if !ok {
		log.Warn("access token has no usable userId claim, user id left unset")
		return 0, false
	}
	return id, true
}
