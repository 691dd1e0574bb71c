// Package todoapi exposes the todo API client builder.
package todoapi

import (
	"github.com/adamwoolhether/todoapi/client"
	"github.com/adamwoolhether/todoapi/todo"
)

// NewClient instantiates a *todo.Client for the API at baseEndpoint.
// If not specified, a fresh http.Client over http.DefaultTransport is used.
func NewClient(baseEndpoint string, opts ...client.Option) (*todo.Client, error) {
	return todo.New(baseEndpoint, opts...)
}
