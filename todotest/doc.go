// Package todotest provides a scripted HTTP server for testing code that
// talks to a todo API.
//
// Responses are enqueued ahead of a call and served in order; every
// request that reaches the server is recorded for later assertions:
//
//	srv := todotest.NewServer(t)
//	srv.EnqueueFixture(http.StatusOK, todotest.FixtureTasks)
//
//	c, _ := todo.New(srv.URL())
//	res, _ := c.ListAll(ctx)
//
//	req := srv.TakeRequest(t)
//	// req.Method == "GET", req.Path == "/todos"
package todotest
