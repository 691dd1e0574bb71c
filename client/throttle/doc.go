// Package throttle provides an [http.RoundTripper] that rate-limits
// outbound HTTP requests using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// Most callers enable it through client.WithThrottle rather than
// wrapping a transport by hand:
//
//	rt, err := throttle.NewRoundTripper(
//		5, // requests per second
//		2, // burst capacity
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// A request that finds the bucket empty waits for its reserved token. If
// the request context ends first, or its deadline is closer than the
// wait, the token is handed back and the request fails with
// [ErrWaitingFailed] without reaching the server.
package throttle
