package todo

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/adamwoolhether/todoapi/client"
)

const collectionPath = "todos"

// endpoint resolves the collection and item URLs below a base endpoint.
type endpoint struct {
	base *url.URL
}

func newEndpoint(baseEndpoint string) (endpoint, error) {
	base, err := client.URL(strings.TrimSuffix(baseEndpoint, "/"))
	if err != nil {
		return endpoint{}, fmt.Errorf("base endpoint: %w", err)
	}

	return endpoint{base: base}, nil
}

// collection returns {base}/todos.
func (e endpoint) collection() *url.URL {
	return e.base.JoinPath(collectionPath)
}

// item returns {base}/todos/{id}. id is appended as-is, so an empty id
// still yields a distinct item URL ending in a slash.
func (e endpoint) item(id string) *url.URL {
	u := e.collection()
	u.Path += "/" + id
	u.RawPath = ""

	return u
}
