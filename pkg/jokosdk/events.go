package jokosdk

import (
	evbus "github.com/asaskevich/EventBus"
)

// TopicAuthenticationFailed is published, with no payload, every time the
// backend rejects the session with 401 or 403 (at most once per response).
// The presentation layer subscribes to force navigation back to login.
// It is the only topic this package publishes.
const TopicAuthenticationFailed = "session:authentication_failed"

// NewBus returns a synchronous event bus suitable for WithBus. Callers are
// free to bring their own; the bus is injected, never a package global.
func NewBus() evbus.Bus {
	return evbus.New()
}
