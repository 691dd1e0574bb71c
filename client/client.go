package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/adamwoolhether/todoapi/client/throttle"
)

// Client wraps the std-lib *http.Client
// It sets a default *http.Client and *http.Transport, which
// can be customized via optional funcs.
type Client struct {
	c      *http.Client
	logger *slog.Logger
}

// Build creates a [Client] from the given options.
func Build(optFns ...Option) (*Client, error) {
	client := &Client{
		c:      &http.Client{},
		logger: slog.Default(),
	}

	var opts options
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return nil, fmt.Errorf("applying client option: %w", err)
		}
	}

	if opts.client != nil {
		client.c = opts.client
	}

	if opts.logger != nil {
		client.logger = opts.logger
	}

	if opts.timeout != nil {
		client.c.Timeout = *opts.timeout
	}

	if opts.noFollowRedirects {
		client.c.CheckRedirect = func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	var transport http.RoundTripper
	switch {
	case opts.rt != nil:
		transport = opts.rt
	case opts.client != nil && opts.client.Transport != nil:
		transport = opts.client.Transport
	default:
		transport = http.DefaultTransport
	}
	if opts.userAgent != "" {
		transport = userAgent{value: opts.userAgent, base: transport}
	}
	if opts.requestID {
		transport = requestID{base: transport}
	}
	if opts.throttle != nil {
		rt, err := throttle.NewRoundTripper(opts.throttle.RPS, opts.throttle.Burst, func() *slog.Logger { return client.logger }, transport)
		if err != nil {
			return nil, fmt.Errorf("configuring throttle: %w", err)
		}
		transport = rt
	}
	if opts.tracerProvider != nil {
		transport = newTracing(opts.tracerProvider, transport)
	}
	client.c.Transport = transport

	return client, nil
}

// Logger returns the logger the Client was built with.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Exchange fires the request and returns the status code, headers and body
// of the response whatever the status. Only a failed exchange is an error,
// and it always wraps [ErrTransport].
func (c *Client) Exchange(req *http.Request) (Response, error) {
	var out Response

	readFn := func(resp *http.Response) error {
		b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
		if err != nil {
			return fmt.Errorf("%w: reading body: %w", ErrTransport, err)
		}

		out = Response{
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       b,
		}

		return nil
	}

	if err := c.exec(req, readFn); err != nil {
		return Response{}, err
	}

	c.logger.Debug("http exchange", "method", req.Method, "url", req.URL.String(), "status", out.StatusCode)

	return out, nil
}

// Request instantiates an *http.Request with the provided information.
// It's just a convenience method that wraps the public Request func.
func (c *Client) Request(ctx context.Context, reqURL *url.URL, method string, opts ...RequestOption) (*http.Request, error) {
	return Request(ctx, reqURL, method, opts...)
}

// exec runs the request and hands the response to fn. The body is always
// drained and closed afterwards.
func (c *Client) exec(req *http.Request, fn execFn) error {
	resp, err := c.c.Do(req)
	if err != nil {
		return fmt.Errorf("%w: exec http do: %w", ErrTransport, err)
	}

	defer func() {
		if _, err := io.Copy(io.Discard, resp.Body); err != nil {
			c.logger.Error("failed to discard unused body", "error", err)
		}
		if err := resp.Body.Close(); err != nil {
			c.logger.Error("failed to close response body", "error", err)
		}
	}()

	if err := fn(resp); err != nil {
		return fmt.Errorf("exec fn: %w", err)
	}

	return nil
}

// Request instantiates an *http.Request with the provided information.
// A payload set via WithPayload is encoded as compact JSON and the
// Content-Type defaults to `application/json` unless overridden via
// WithContentType. Requests without a payload carry no Content-Type.
func Request(ctx context.Context, reqURL *url.URL, method string, opts ...RequestOption) (*http.Request, error) {
	var settings requestOpts
	for _, opt := range opts {
		err := opt(&settings)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRequest, err)
		}
	}

	if reqURL == nil {
		return nil, fmt.Errorf("%w: nil url", ErrRequest)
	}

	var body io.Reader
	if settings.body != nil {
		data, err := json.Marshal(settings.body)
		if err != nil {
			return nil, fmt.Errorf("%w: encoding request payload: %w", ErrRequest, err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("%w: instantiating request: %w", ErrRequest, err)
	}

	for _, cookie := range settings.cookies {
		req.AddCookie(cookie)
	}

	switch {
	case settings.contentType != nil:
		req.Header.Set("Content-Type", *settings.contentType)
	case settings.body != nil:
		req.Header.Set("Content-Type", "application/json")
	}

	if settings.accept != "" {
		req.Header.Set("Accept", settings.accept)
	}

	for k, v := range settings.headers {
		for _, element := range v {
			req.Header.Add(k, element)
		}
	}

	return req, nil
}

// URL parses base and appends the given path segments to its path,
// separated by a single slash each. Segments are joined verbatim.
func URL(base string, segments ...string) (*url.URL, error) {
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("parsing base url: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base url %q must be absolute", base)
	}

	if len(segments) == 0 {
		return u, nil
	}

	return u.JoinPath(segments...), nil
}
