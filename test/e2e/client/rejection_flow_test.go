package client_test

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jokoapp/joko-go/pkg/jokosdk"
)

// TestSessionRevokedFlow covers the backend revoking a session mid-use:
// 1. Log in normally and use the session
// 2. The backend starts answering 401
// 3. The next request clears the stored session, fires the bus event once
//    and surfaces ErrAuthenticationFailed
func TestSessionRevokedFlow(t *testing.T) {
	b := newBackend(t)

	bus := jokosdk.NewBus()
	var authFailures atomic.Int32
	require.NoError(t, bus.Subscribe(jokosdk.TopicAuthenticationFailed, func() {
		authFailures.Add(1)
	}))

	session, store := newFileSession(t, b.URL(), t.TempDir(), jokosdk.WithBus(bus))

	require.NoError(t, session.Login(t.Context(), testAccountID, testPassword))

	_, err := session.FetchAllItems(t.Context())
	require.NoError(t, err)

	t.Logf("Session established and working, revoking on the backend")
	b.rejectWith.Store(http.StatusUnauthorized)

	_, err = session.FetchAllItems(t.Context())
	require.ErrorIs(t, err, jokosdk.ErrAuthenticationFailed)

	require.False(t, session.Valid(), "rejected session must be discarded")
	_, ok := store.AccessToken()
	require.False(t, ok, "store must be cleared on rejection")
	_, ok = store.RefreshToken()
	require.False(t, ok, "refresh token goes with it")
	require.Equal(t, int32(1), authFailures.Load(), "exactly one auth-failed event")

	// Recovery: logging in again restores a working session.
	b.rejectWith.Store(0)
	require.NoError(t, session.Login(t.Context(), testAccountID, testPassword))
	require.True(t, session.Valid())

	_, err = session.FetchAllItems(t.Context())
	require.NoError(t, err)
	require.Equal(t, int32(1), authFailures.Load(), "recovery must not refire the event")
}

// TestExpiredSessionFlow seeds the store with an already-expired token. The
// guard evicts it locally, the request goes out without credentials and the
// backend's 401 surfaces as ErrAuthenticationFailed.
func TestExpiredSessionFlow(t *testing.T) {
	b := newBackend(t)

	session, store := newFileSession(t, b.URL(), t.TempDir())
	require.NoError(t, store.Save(mintAccessToken(t, testUserID, -time.Minute), "stale-refresh"))

	require.False(t, session.Valid(), "expired token is not a session")
	_, ok := store.AccessToken()
	require.False(t, ok, "validity check evicts the expired token")

	_, err := session.FetchAllItems(t.Context())
	require.ErrorIs(t, err, jokosdk.ErrAuthenticationFailed)
}
