package todo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/adamwoolhether/todoapi/client"
	"github.com/adamwoolhether/todoapi/result"
)

const mediaTypeJSON = "application/json"

// Client talks to a remote todo API. It holds no state besides the base
// endpoint and the transport, so a single Client is safe for concurrent use.
type Client struct {
	endpoint endpoint
	http     *client.Client
	logger   *slog.Logger
}

// New builds a Client for the API rooted at baseEndpoint, which must be an
// absolute URL. opts configure the underlying transport.
func New(baseEndpoint string, opts ...client.Option) (*Client, error) {
	ep, err := newEndpoint(baseEndpoint)
	if err != nil {
		return nil, err
	}

	hc, err := client.Build(opts...)
	if err != nil {
		return nil, fmt.Errorf("building http client: %w", err)
	}

	return &Client{
		endpoint: ep,
		http:     hc,
		logger:   hc.Logger(),
	}, nil
}

// BaseEndpoint returns the URL the Client was configured with.
func (c *Client) BaseEndpoint() string {
	return c.endpoint.base.String()
}

// ListAll fetches every item, in server order.
func (c *Client) ListAll(ctx context.Context) (result.Result[Error, []Item], error) {
	resp, err := c.exchange(ctx, http.MethodGet, c.endpoint.collection())
	if err != nil {
		return result.Result[Error, []Item]{}, err
	}

	return mapBody[[]Item](c.logger, resp), nil
}

// GetByID fetches the item with the given id.
func (c *Client) GetByID(ctx context.Context, id string) (result.Result[Error, Item], error) {
	resp, err := c.exchange(ctx, http.MethodGet, c.endpoint.item(id))
	if err != nil {
		return result.Result[Error, Item]{}, err
	}

	return mapBody[Item](c.logger, resp), nil
}

// Create posts item and returns the record echoed by the server, which
// need not equal the input.
func (c *Client) Create(ctx context.Context, item Item) (result.Result[Error, Item], error) {
	resp, err := c.exchange(ctx, http.MethodPost, c.endpoint.collection(), client.WithPayload(item))
	if err != nil {
		return result.Result[Error, Item]{}, err
	}

	return mapBody[Item](c.logger, resp), nil
}

// DeleteByID deletes the item with the given id. The result carries no
// payload on success.
func (c *Client) DeleteByID(ctx context.Context, id string) (result.Result[Error, struct{}], error) {
	resp, err := c.exchange(ctx, http.MethodDelete, c.endpoint.item(id))
	if err != nil {
		return result.Result[Error, struct{}]{}, err
	}

	return mapStatus(resp), nil
}

// exchange performs exactly one request. Errors are transport or request
// construction failures, never domain errors.
func (c *Client) exchange(ctx context.Context, method string, u *url.URL, opts ...client.RequestOption) (client.Response, error) {
	opts = append(opts, client.WithAccept(mediaTypeJSON))

	req, err := c.http.Request(ctx, u, method, opts...)
	if err != nil {
		return client.Response{}, fmt.Errorf("%s %s: %w", method, u.Path, err)
	}

	resp, err := c.http.Exchange(req)
	if err != nil {
		return client.Response{}, fmt.Errorf("%s %s: %w", method, u.Path, err)
	}

	return resp, nil
}
