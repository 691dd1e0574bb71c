package client

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/todoapi/client/throttle"
)

// Option configures a [Client] built by [Build]. Options are applied in
// order and the first failing one aborts the build.
type Option func(*options) error

type options struct {
	client            *http.Client
	rt                http.RoundTripper
	timeout           *time.Duration
	userAgent         string
	throttle          *throttle.Config
	noFollowRedirects bool
	requestID         bool
	tracerProvider    trace.TracerProvider
	logger            *slog.Logger
}

// WithClient makes the [Client] send through hc. Its transport, if any,
// becomes the base of the decorator chain unless [WithTransport] is also
// given.
func WithClient(hc *http.Client) Option {
	return func(o *options) error {
		if hc == nil {
			return errors.New("http client is nil")
		}
		o.client = hc
		return nil
	}
}

// WithTransport sets the innermost [http.RoundTripper].
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) error {
		if rt == nil {
			return errors.New("round tripper is nil")
		}
		o.rt = rt
		return nil
	}
}

// WithTimeout bounds each exchange, body read included. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d < 0 {
			return errors.New("timeout is negative")
		}
		o.timeout = &d
		return nil
	}
}

// WithUserAgent sends header as the User-Agent of every request.
func WithUserAgent(header string) Option {
	return func(o *options) error {
		if header == "" {
			return errors.New("user agent is empty")
		}
		o.userAgent = header
		return nil
	}
}

// WithThrottle limits outgoing requests to rps per second, allowing bursts
// of up to burst requests.
func WithThrottle(rps, burst int) Option {
	return func(o *options) error {
		cfg := throttle.Config{RPS: rps, Burst: burst}
		if err := cfg.Validate(); err != nil {
			return err
		}
		o.throttle = &cfg
		return nil
	}
}

// WithNoFollowRedirects hands 3xx responses back to the caller as is.
func WithNoFollowRedirects() Option {
	return func(o *options) error {
		o.noFollowRedirects = true
		return nil
	}
}

// WithRequestID stamps every outgoing request lacking one with a random
// X-Request-Id header.
func WithRequestID() Option {
	return func(o *options) error {
		o.requestID = true
		return nil
	}
}

// WithTracing starts a client span from tp for every exchange and
// propagates it to the server as a W3C traceparent header.
func WithTracing(tp trace.TracerProvider) Option {
	return func(o *options) error {
		if tp == nil {
			return errors.New("tracer provider is nil")
		}
		o.tracerProvider = tp
		return nil
	}
}

// WithLogger replaces slog.Default as the [Client] logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger is nil")
		}
		o.logger = logger
		return nil
	}
}

// RequestOption configures a single request built by [Request].
type RequestOption func(*requestOpts) error

type requestOpts struct {
	body        any
	contentType *string
	accept      string
	cookies     []*http.Cookie
	headers     http.Header
}

// WithPayload sets a value to be sent as the compact JSON request body.
func WithPayload(body any) RequestOption {
	return func(r *requestOpts) error {
		if body == nil {
			return errors.New("payload is nil")
		}
		r.body = body
		return nil
	}
}

// WithContentType overrides the Content-Type header. Without it a request
// carrying a payload is sent as "application/json" and any other request
// has no Content-Type at all.
func WithContentType(contentType string) RequestOption {
	return func(r *requestOpts) error {
		if contentType == "" {
			return errors.New("content type is empty")
		}
		r.contentType = &contentType
		return nil
	}
}

// WithAccept sets the Accept header.
func WithAccept(mediaType string) RequestOption {
	return func(r *requestOpts) error {
		if mediaType == "" {
			return errors.New("accept media type is empty")
		}
		r.accept = mediaType
		return nil
	}
}

// WithHeaders adds headers to the request. Repeated use accumulates values.
func WithHeaders(headers map[string][]string) RequestOption {
	return func(r *requestOpts) error {
		if r.headers == nil {
			r.headers = make(http.Header, len(headers))
		}
		for k, vals := range headers {
			for _, v := range vals {
				r.headers.Add(k, v)
			}
		}
		return nil
	}
}

// WithCookies attaches cookies to the request. Repeated use accumulates them.
func WithCookies(cookies ...*http.Cookie) RequestOption {
	return func(r *requestOpts) error {
		r.cookies = append(r.cookies, cookies...)
		return nil
	}
}
