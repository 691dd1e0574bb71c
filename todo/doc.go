// Package todo is a client for a remote todo API served over HTTP/JSON.
//
// # Operations
//
// [Client] exposes four calls, each one HTTP exchange:
//
//	c, err := todo.New("https://jsonplaceholder.typicode.com")
//	all, err := c.ListAll(ctx)        // GET    /todos
//	one, err := c.GetByID(ctx, "1")   // GET    /todos/1
//	made, err := c.Create(ctx, item)  // POST   /todos
//	gone, err := c.DeleteByID(ctx, "1") // DELETE /todos/1
//
// # Results and errors
//
// Every call returns a [result.Result] and an error. The error is non-nil
// only when the exchange itself failed; it wraps [ErrTransport] (or
// [ErrRequest]) and the result must then be ignored. Anything the server
// answered lands in the result:
//
//   - 200 with a decodable body: the value arm holds the item(s).
//   - 200 with a malformed or incomplete body: [ErrUnknown].
//   - 404: [ErrItemNotFound].
//   - any other status: [UnknownAPIError] carrying the code.
//
// [Error] values are comparable, so callers can switch on them directly:
//
//	if e, failed := one.Err(); failed {
//		switch e {
//		case todo.ErrItemNotFound:
//		case todo.UnknownAPIError(http.StatusInternalServerError):
//		}
//	}
package todo
