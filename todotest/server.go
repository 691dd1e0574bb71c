package todotest

import (
	"embed"
	"io"
	"net/http"
	"net/http/httptest"
	"path"
	"sync"
	"testing"
)

// Embedded fixture names.
const (
	// FixtureTasks holds 200 items; the first is FixtureItem.
	FixtureTasks = "getTasksResponse.json"
	// FixtureTask holds a single item equal to the first of FixtureTasks.
	FixtureTask = "getTaskByIdResponse.json"
	// FixtureAddRequest is the compact encoding of
	// {ID: "1", UserID: "2", Title: "Finish this kata"}.
	FixtureAddRequest = "addTaskRequest.json"
	// FixtureAddResponse is the record echoed back for a create.
	FixtureAddResponse = "addTaskResponse.json"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Response is a scripted answer.
type Response struct {
	StatusCode int
	Body       []byte
}

// Request is a recorded request.
type Request struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Server is an httptest.Server replaying enqueued responses in FIFO order.
// With an empty queue it answers 200 with no body.
type Server struct {
	srv *httptest.Server
	tb  testing.TB

	mu       sync.Mutex
	queue    []Response
	requests []Request
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(tb testing.TB) *Server {
	tb.Helper()

	s := &Server{tb: tb}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serveHTTP))
	tb.Cleanup(s.srv.Close)

	return s
}

// URL returns the base endpoint of the server, without a trailing slash.
func (s *Server) URL() string {
	return s.srv.URL
}

// Enqueue appends a response to the queue.
func (s *Server) Enqueue(statusCode int, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.queue = append(s.queue, Response{StatusCode: statusCode, Body: body})
}

// EnqueueFixture appends a response whose body is the named fixture.
func (s *Server) EnqueueFixture(statusCode int, name string) {
	s.tb.Helper()

	s.Enqueue(statusCode, Fixture(s.tb, name))
}

// Requests returns a copy of every request recorded so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Request, len(s.requests))
	copy(out, s.requests)

	return out
}

// TakeRequest removes and returns the oldest recorded request, failing
// the test if none was received.
func (s *Server) TakeRequest(tb testing.TB) Request {
	tb.Helper()

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.requests) == 0 {
		tb.Fatal("todotest: no request was received")
	}

	req := s.requests[0]
	s.requests = s.requests[1:]

	return req
}

func (s *Server) serveHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, Request{
		Method: r.Method,
		Path:   r.URL.EscapedPath(),
		Header: r.Header.Clone(),
		Body:   body,
	})

	resp := Response{StatusCode: http.StatusOK}
	if len(s.queue) > 0 {
		resp = s.queue[0]
		s.queue = s.queue[1:]
	}
	s.mu.Unlock()

	if len(resp.Body) > 0 {
		w.Header().Set("Content-Type", "application/json")
	}
	w.WriteHeader(resp.StatusCode)
	_, _ = w.Write(resp.Body)
}

// Fixture returns the contents of the named embedded fixture.
func Fixture(tb testing.TB, name string) []byte {
	tb.Helper()

	data, err := fixtures.ReadFile(path.Join("fixtures", name))
	if err != nil {
		tb.Fatalf("todotest: reading fixture %q: %v", name, err)
	}

	return data
}
