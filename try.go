// try.go — converting fallible calls into Results.
//
// Try and TryContext sit at the boundary between conventional Go code and
// Result-returning code. The caller supplies mapErr, which must turn any
// error (including a recovered panic) into a tagged value of type E.
package tagged

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
)

// Try runs fn and returns its value as Ok, or mapErr applied to its error as
// Err. A panic inside fn is recovered and mapped like a returned error.
func Try[T, E any](fn func() (T, error), mapErr func(error) E) (res Result[T, E]) {
	defer func() {
		if r := recover(); r != nil {
			res = Err[T](mapErr(recovered(r)))
		}
	}()

	v, err := fn()
	if err != nil {
		return Err[T](mapErr(err))
	}
	return Ok[T, E](v)
}

// TryContext runs fn on its own goroutine and delivers exactly one Result on
// the returned channel. If ctx ends first, the Result is mapErr(ctx.Err()) and
// whatever fn returns later is discarded.
func TryContext[T, E any](ctx context.Context, fn func(context.Context) (T, error), mapErr func(error) E) <-chan Result[T, E] {
	out := make(chan Result[T, E], 1)
	done := make(chan Result[T, E], 1)

	go func() {
		done <- Try(func() (T, error) { return fn(ctx) }, mapErr)
	}()

	go func() {
		select {
		case r := <-done:
			out <- r
		case <-ctx.Done():
			out <- Err[T](mapErr(ctx.Err()))
		}
	}()

	return out
}

func recovered(r any) error {
	if err, ok := r.(error); ok {
		return goerr.Wrap(err, "recovered panic")
	}
	return goerr.New("recovered panic", goerr.V("value", r))
}
