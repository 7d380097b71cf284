package jokosdk

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jokoapp/joko-go/pkg/idx"
	"github.com/jokoapp/joko-go/pkg/slogx"
)

// Client talks to the joko backend's unauthenticated endpoints and is the
// transport shared by Sessions created from it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (10s timeout, logging
// transport).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithLogger sets the client's logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient creates a backend client for the given base URL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: slogx.NewTransport(nil, c.log),
		}
	}
	return c
}

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// newRequest builds a request with the standard headers every call to the
// backend carries. Callers with a JSON body set Content-Type themselves.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	reqID := idx.New().String()
	ctx = slogx.WithContext(ctx, c.log)
	ctx = slogx.WithRequestID(ctx, reqID)

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return nil, &NetworkError{Op: "create request", Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	return req, nil
}

// do executes the request, wrapping transport failures in *NetworkError.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: "send request", Err: err}
	}
	return resp, nil
}
