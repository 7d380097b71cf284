// Package jwtx decodes the payload segment of JWT-style session tokens.
//
// The joko backend is the trust boundary for token signatures; clients only
// read claims out of tokens the server handed them. Decode therefore does NOT
// verify signatures, and nothing in this package should grow the ability to.
// Treat every decoded claim as a hint, not a fact.
package jwtx

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMalformed reports a token that is not three dot-separated segments,
	// or whose payload segment is not base64url-encoded JSON.
	ErrMalformed = errors.New("jwtx: token malformed")

	// ErrExpired reports a token whose exp claim is absent or not in the future.
	ErrExpired = errors.New("jwtx: token expired")
)

// Decode extracts the payload claims of token as a generic mapping.
// The token must have exactly three dot-separated segments. The payload
// segment is normalised from base64url (-_ to +/, = padding restored)
// before decoding. The signature segment is ignored entirely.
func Decode(token string) (map[string]any, error) {
	raw, err := payloadSegment(token)
	if err != nil {
		return nil, err
	}

	var claims map[string]any
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformed)
	}
	// Unmarshal treats a bare null as a no-op, leaving the map nil.
	if claims == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformed)
	}
	return claims, nil
}

// DecodeClaims extracts the payload claims of token into a typed Claims.
// Same segment and encoding rules as Decode.
func DecodeClaims(token string) (*Claims, error) {
	raw, err := payloadSegment(token)
	if err != nil {
		return nil, err
	}

	// A bare null would unmarshal into the struct as a no-op; require an
	// actual object before decoding the typed claims.
	var object map[string]json.RawMessage
	if err := json.Unmarshal(raw, &object); err != nil || object == nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformed)
	}

	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return nil, fmt.Errorf("%w: payload is not a JSON object", ErrMalformed)
	}
	return &claims, nil
}

// payloadSegment splits the token and base64-decodes segment 1.
func payloadSegment(token string) ([]byte, error) {
	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return nil, fmt.Errorf("%w: expected 3 segments, got %d", ErrMalformed, len(segments))
	}

	payload := segments[1]
	payload = strings.ReplaceAll(payload, "-", "+")
	payload = strings.ReplaceAll(payload, "_", "/")
	if rem := len(payload) % 4; rem > 0 {
		payload += strings.Repeat("=", 4-rem)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: payload segment is not base64", ErrMalformed)
	}
	return raw, nil
}
