package jokosdk

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	evbus "github.com/asaskevich/EventBus"

	"github.com/jokoapp/joko-go/pkg/sessionx"
	"github.com/jokoapp/joko-go/pkg/slogx"
)

// Session performs authenticated requests against the backend using the
// token pair held in a sessionx.Store.
//
// There is no refresh exchange: an expired or rejected token always routes
// back to a full re-login. The guard evicts expired tokens locally; the
// backend's 401/403 evicts everything else. Requests read the token once at
// build time, so a logout racing an in-flight request affects the next
// request, not the current one.
type Session struct {
	client *Client
	store  sessionx.Store
	guard  *sessionx.Guard
	bus    evbus.Bus
	log    *slog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithBus attaches an event bus that receives TopicAuthenticationFailed.
func WithBus(bus evbus.Bus) SessionOption {
	return func(s *Session) { s.bus = bus }
}

// WithGuard replaces the session's guard, mainly so tests can pin the clock.
func WithGuard(guard *sessionx.Guard) SessionOption {
	return func(s *Session) { s.guard = guard }
}

// WithSessionLogger sets the session's logger.
func WithSessionLogger(log *slog.Logger) SessionOption {
	return func(s *Session) { s.log = log }
}

// NewSession binds a client to a token store.
func NewSession(client *Client, store sessionx.Store, opts ...SessionOption) *Session {
	s := &Session{
		client: client,
		store:  store,
		log:    client.log,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.guard == nil {
		s.guard = sessionx.NewGuard(store, sessionx.WithGuardLogger(s.log))
	}
	return s
}

// Login authenticates and persists the returned token pair. Each successful
// login overwrites whatever session was stored before.
func (s *Session) Login(ctx context.Context, accountID, password string) error {
	tokens, err := s.client.Login(ctx, accountID, password)
	if err != nil {
		return err
	}

	if err := s.store.Save(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.log.Info("session established", "account_id", accountID)
	return nil
}

// SignUp registers an account and persists its first token pair.
func (s *Session) SignUp(ctx context.Context, username, accountID, password string) error {
	tokens, err := s.client.SignUp(ctx, username, accountID, password)
	if err != nil {
		return err
	}

	if err := s.store.Save(tokens.AccessToken, tokens.RefreshToken); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	s.log.Info("account created, session established", "account_id", accountID)
	return nil
}

// Logout destroys the stored session.
func (s *Session) Logout() error {
	return s.store.Clear()
}

// Valid reports whether a usable session is stored. Expired or malformed
// tokens are evicted as a side effect, same as any other guard check.
func (s *Session) Valid() bool {
	return s.guard.HasValidSession()
}

// UserID returns the user id persisted with the session. A valid session can
// still report false here when the access token carried no userId claim.
func (s *Session) UserID() (int64, bool) {
	return s.guard.UserID()
}

// doAuthRequest sends an authenticated request. The Authorization header is
// attached only when the guard says the stored token is usable; otherwise the
// request goes out bare and the server is the final arbiter. A 401 or 403
// response clears the stored session, publishes the authentication-failed
// event and returns ErrAuthenticationFailed.
func (s *Session) doAuthRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Response, error) {
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	req, err := s.client.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	// Snapshot the token once; it is not re-read mid-flight.
	if s.guard.HasValidSession() {
		if token, ok := s.store.AccessToken(); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := s.client.do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		_ = resp.Body.Close()
		s.invalidate(req.Context(), resp.StatusCode)
		return nil, fmt.Errorf("%w: backend returned %d", ErrAuthenticationFailed, resp.StatusCode)
	}

	return resp, nil
}

// invalidate clears the session and announces the failure. One-way: there is
// nothing to retry, the user has to log in again.
func (s *Session) invalidate(ctx context.Context, status int) {
	slogx.FromContext(ctx).Info("session rejected by backend, forcing re-login", "status", status)

	if err := s.store.Clear(); err != nil {
		s.log.Warn("failed to clear rejected session", "err", err)
	}
	if s.bus != nil {
		s.bus.Publish(TopicAuthenticationFailed)
	}
}
