package throttle

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/time/rate"
)

var (
	// ErrMustNotBeZero rejects a non-positive rate or burst.
	ErrMustNotBeZero = errors.New("must be greater than zero")
	// ErrWaitingFailed is returned when a request can't get a token before
	// its context ends.
	ErrWaitingFailed = errors.New("limiter waiting failed")
	// ErrContextEnded is returned for requests whose context was already
	// done when they reached the throttle.
	ErrContextEnded = errors.New("throttle context ended")
)

// Config holds the token bucket limits: RPS tokens are added each second,
// up to Burst.
type Config struct {
	RPS   int
	Burst int
}

// Validate reports whether both limits are positive.
func (c Config) Validate() error {
	if c.RPS <= 0 || c.Burst <= 0 {
		return fmt.Errorf("rps[%d] and burst[%d] %w", c.RPS, c.Burst, ErrMustNotBeZero)
	}

	return nil
}

type throttle struct {
	limiter *rate.Limiter
	cfg     Config
	next    http.RoundTripper
	logFn   func() *slog.Logger
}
