package todo

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/adamwoolhether/todoapi/client"
	"github.com/adamwoolhether/todoapi/result"
)

// classify maps a status code onto the taxonomy. ok is true only for the
// single recognised success code; every other code yields an Error.
func classify(statusCode int) (e Error, ok bool) {
	switch statusCode {
	case http.StatusOK:
		return Error{}, true
	case http.StatusNotFound:
		return ErrItemNotFound, false
	default:
		return UnknownAPIError(statusCode), false
	}
}

// mapStatus maps a response that carries no payload.
func mapStatus(resp client.Response) result.Result[Error, struct{}] {
	if e, ok := classify(resp.StatusCode); !ok {
		return result.Failure[Error, struct{}](e)
	}

	return result.Success[Error](struct{}{})
}

// mapBody maps a response whose success body decodes into a T. A body that
// is malformed or misses required fields becomes ErrUnknown.
func mapBody[T any](log *slog.Logger, resp client.Response) result.Result[Error, T] {
	if e, ok := classify(resp.StatusCode); !ok {
		return result.Failure[Error, T](e)
	}

	var v T
	if err := decode(resp.Body, &v); err != nil {
		log.Debug("decoding todo response", "status", resp.StatusCode, "bytes", len(resp.Body), "error", err)
		return result.Failure[Error, T](ErrUnknown)
	}

	return result.Success[Error](v)
}

var errNullBody = errors.New("null body")

// decode unmarshals body into dst. A bare null is rejected since it
// would otherwise leave a list decoded as empty.
func decode(body []byte, dst any) error {
	if bytes.Equal(bytes.TrimSpace(body), []byte("null")) {
		return errNullBody
	}

	return json.Unmarshal(body, dst)
}
