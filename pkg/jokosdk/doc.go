/*
Package jokosdk is the client SDK for the joko quiz and shop backend.

# Client vs Session

The package is organized around two types:

  - Client: unauthenticated operations (login, signup) against the backend
  - Session: authenticated operations backed by a persisted token store

Create a Client for the token-issuing endpoints:

	client := jokosdk.NewClient("https://api.joko.example")
	tokens, err := client.Login(ctx, accountID, password)

A Session binds a Client to a sessionx.Store so tokens survive restarts, and
attaches the stored access token to every request:

	store, err := sqlite.NewStore(dbPath, logger)
	session := jokosdk.NewSession(client, store)

	if err := session.Login(ctx, accountID, password); err != nil { ... }
	items, err := session.FetchAllItems(ctx)

# Session lifecycle

There is no token refresh exchange. When the stored access token expires, or
the backend answers 401/403, the session is cleared and the caller has to log
in again. A refresh token is persisted because the backend issues one, but
nothing consumes it yet; adding a refresh grant is an extension point, not a
bug fix. Authentication failure is announced on an optional event bus:

	bus := jokosdk.NewBus()
	session := jokosdk.NewSession(client, store, jokosdk.WithBus(bus))
	bus.Subscribe(jokosdk.TopicAuthenticationFailed, func() {
		// navigate to the login screen
	})

# Errors

Session and Client methods return typed errors: *APIError for non-2xx
responses carrying a body, *NetworkError for transport failures,
ErrAuthenticationFailed after a 401/403 cleared the session, ErrEmptyResponse
and ErrDecode for unusable response bodies. None of them are retried
automatically.
*/
package jokosdk
