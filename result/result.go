// Package result provides a two-armed value holding either an error or a
// success payload, letting callers branch on the outcome of an operation
// instead of unwinding through error returns.
//
//	r := result.Success[string, int](42)
//	if v, ok := r.Value(); ok {
//		fmt.Println(v)
//	}
//
// Exactly one arm is populated. Reading the other arm reports false and the
// zero value, never panics. The zero Result is a failure holding the zero E.
package result

import "fmt"

// Result holds either an error of type E or a value of type T.
type Result[E, T any] struct {
	err E
	val T
	ok  bool
}

// Success returns a Result holding v in its value arm.
func Success[E, T any](v T) Result[E, T] {
	return Result[E, T]{val: v, ok: true}
}

// Failure returns a Result holding e in its error arm.
func Failure[E, T any](e E) Result[E, T] {
	return Result[E, T]{err: e}
}

// IsSuccess reports whether the value arm is populated.
func (r Result[E, T]) IsSuccess() bool {
	return r.ok
}

// Value returns the success payload. ok is false for a failure, and v is
// then the zero T.
func (r Result[E, T]) Value() (v T, ok bool) {
	if !r.ok {
		var zero T
		return zero, false
	}

	return r.val, true
}

// Err returns the error arm. ok is false for a success, and e is then the
// zero E.
func (r Result[E, T]) Err() (e E, ok bool) {
	if r.ok {
		var zero E
		return zero, false
	}

	return r.err, true
}

// Match calls exactly one of onErr or onVal with the populated arm.
// A nil callback for the populated arm is skipped.
func (r Result[E, T]) Match(onErr func(E), onVal func(T)) {
	switch {
	case r.ok && onVal != nil:
		onVal(r.val)
	case !r.ok && onErr != nil:
		onErr(r.err)
	}
}

func (r Result[E, T]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.val)
	}

	return fmt.Sprintf("Failure(%v)", r.err)
}
