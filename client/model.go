package client

import (
	"errors"
	"net/http"
)

// maxBodySize caps the amount of response body read into a [Response].
// Larger bodies are truncated, which surfaces to callers as a decode
// failure rather than unbounded memory usage.
const maxBodySize = 32 << 20 // 32MB

// execFn represents a func to operate on a response.
type execFn func(response *http.Response) error

var (
	// ErrTransport is wrapped by every error caused by the network exchange
	// itself: connection refused, DNS failure, timeouts, cancelled contexts
	// and unreadable response bodies.
	ErrTransport = errors.New("transport failure")
	// ErrRequest is wrapped by errors raised while building a request.
	ErrRequest = errors.New("invalid request")
)

// Response is the raw outcome of a single HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}
