package jokosdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrAuthenticationFailed is returned after the backend rejected the
	// session with 401 or 403. By the time callers see it the stored tokens
	// are already cleared; the only recovery is a fresh login.
	ErrAuthenticationFailed = errors.New("jokosdk: authentication failed")

	// ErrEmptyResponse reports a zero-length response body where content was
	// expected. Kept distinct from ErrDecode so the two show up separately
	// in diagnostics.
	ErrEmptyResponse = errors.New("jokosdk: empty response body")

	// ErrDecode reports a response body that does not match the expected
	// shape.
	ErrDecode = errors.New("jokosdk: response decoding failed")

	// ErrUserIDUnknown is returned by operations that need the user id when
	// the session is valid but the access token carried no usable userId
	// claim.
	ErrUserIDUnknown = errors.New("jokosdk: user id unknown for current session")
)

// APIError is a non-2xx backend response outside the 401/403 session path.
// It never mutates session state.
type APIError struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// Code is the backend's machine-readable error code, when present.
	Code string

	// Message is a human-readable description, when present.
	Message string
}

func (e *APIError) Error() string {
	switch {
	case e.Code != "" && e.Message != "":
		return fmt.Sprintf("jokosdk: %s: %s", e.Code, e.Message)
	case e.Message != "":
		return fmt.Sprintf("jokosdk: %s", e.Message)
	default:
		return fmt.Sprintf("jokosdk: HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
}

// NetworkError is a transport-level failure: connectivity, DNS, timeout.
// Retryable by the caller; never retried here.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("jokosdk: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// parseErrorResponse turns a non-2xx response into a typed *APIError,
// extracting the backend's error body when it parses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var errResp errorResponse
	if err := json.Unmarshal(body, &errResp); err == nil {
		apiErr.Code = errResp.Error
		apiErr.Message = errResp.Message
	}
	return apiErr
}
