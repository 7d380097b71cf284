package slogx

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/jokoapp/joko-go/pkg/idx"
)

// Transport logs every outgoing request and tags it with an X-Request-ID so
// client and server logs line up. It wraps another RoundTripper (or the
// default one) and is safe to share between clients.
type Transport struct {
	// Next is the RoundTripper actually performing the request. Defaults to
	// http.DefaultTransport.
	Next http.RoundTripper

	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// NewTransport wraps next with request logging using the given logger.
func NewTransport(next http.RoundTripper, logger *slog.Logger) *Transport {
	return &Transport{Next: next, Logger: logger}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}
	logger := t.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reqID := req.Header.Get("X-Request-ID")
	if reqID == "" {
		reqID = idx.New().String()
		// Per RoundTripper contract the request must not be mutated; clone
		// before stamping the id.
		req = req.Clone(req.Context())
		req.Header.Set("X-Request-ID", reqID)
	}

	logger = logger.With(
		"req_id", reqID,
		"method", req.Method,
		"path", req.URL.Path,
	)

	start := time.Now()
	resp, err := next.RoundTrip(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		logger.Warn("http_request_failed", "duration_ms", duration, "err", err)
		return nil, err
	}

	logger.Info("http_request",
		"status", resp.StatusCode,
		"duration_ms", duration,
	)
	return resp, nil
}
