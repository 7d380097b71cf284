package jokosdk

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"slices"
)

// jsonBody marshals v for use as a request body.
func jsonBody(v any) (io.Reader, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(raw), nil
}

// decodeJSON decodes a response body into target when the status is one of
// the expected ones. Non-expected statuses produce a typed *APIError, an
// empty body produces ErrEmptyResponse, and a shape mismatch produces an
// ErrDecode-wrapped error.
func decodeJSON(resp *http.Response, target any, expected ...int) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Op: "read response body", Err: err}
	}

	if !slices.Contains(expected, resp.StatusCode) {
		return parseErrorResponse(resp, body)
	}

	if len(body) == 0 {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}
