package sessionx

import (
	"log/slog"
	"time"

	"github.com/jokoapp/joko-go/pkg/jwtx"
)

// Guard decides whether the stored session is usable. It is not a passive
// check: a token that turns out to be malformed or expired is evicted from
// the store on the spot, so later checks stay cheap and every component sees
// the same answer.
type Guard struct {
	store Store
	now   func() time.Time
	log   *slog.Logger
}

// GuardOption configures a Guard.
type GuardOption func(*Guard)

// WithClock overrides the guard's time source. Tests use this to pin the
// expiry boundary.
func WithClock(now func() time.Time) GuardOption {
	return func(g *Guard) { g.now = now }
}

// WithGuardLogger sets the guard's logger.
func WithGuardLogger(log *slog.Logger) GuardOption {
	return func(g *Guard) { g.log = log }
}

// NewGuard returns a Guard over the given store.
func NewGuard(store Store, opts ...GuardOption) *Guard {
	g := &Guard{
		store: store,
		now:   time.Now,
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// HasValidSession reports whether a well-formed, unexpired access token is
// stored. A token that fails decoding, lacks an exp claim, or whose exp is
// not strictly in the future is cleared before returning false.
func (g *Guard) HasValidSession() bool {
	_, ok := g.Claims()
	return ok
}

// Claims returns the decoded claims of the stored access token when the
// session is valid. Invalid or expired tokens are evicted, same as
// HasValidSession.
func (g *Guard) Claims() (*jwtx.Claims, bool) {
	token, ok := g.store.AccessToken()
	if !ok || token == "" {
		return nil, false
	}

	claims, err := jwtx.DecodeClaims(token)
	if err != nil {
		g.evict("stored access token malformed", err)
		return nil, false
	}

	if err := claims.ValidateExpiry(g.now()); err != nil {
		g.evict("stored access token expired", err)
		return nil, false
	}

	return claims, true
}

// UserID returns the persisted user id for the current session. The session
// can be valid while the id is unknown; callers needing the id must handle
// the false case instead of assuming login implies it.
func (g *Guard) UserID() (int64, bool) {
	if !g.HasValidSession() {
		return 0, false
	}
	return g.store.UserID()
}

func (g *Guard) evict(reason string, err error) {
	g.log.Info("evicting session", "reason", reason, "err", err)
	if clearErr := g.store.Clear(); clearErr != nil {
		g.log.Warn("failed to clear session store", "err", clearErr)
	}
}
