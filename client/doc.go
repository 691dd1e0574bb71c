// Package client provides the HTTP transport used by the todo API client,
// a thin layer over [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithThrottle(5, 2),
//	)
//
// # Making Requests
//
// Resolve a [URL], build a [Request] and run it with [Client.Exchange]:
//
//	u, err := client.URL("https://api.example.com", "todos", "1")
//	req, err := client.Request(ctx, u, http.MethodGet, client.WithAccept("application/json"))
//	resp, err := c.Exchange(req)
//	// resp.StatusCode, resp.Body
//
// Exchange never judges the status code; it only fails when the exchange
// itself does, and such errors wrap [ErrTransport].
//
// # Transport decorators
//
// [WithUserAgent], [WithRequestID], [WithThrottle] and [WithTracing] wrap
// the base transport in that order, the tracer outermost, so the span
// covers time spent waiting on the throttle.
package client
