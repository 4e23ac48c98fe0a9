package payapi

import "context"

// Callback is a completion callback for an asynchronous operation. It receives
// either the result or the error, exactly as the future settles with.
type Callback[T any] func(value T, err error)

// Future is the result of an operation started with Async. It settles exactly
// once.
type Future[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Async runs fn on its own goroutine and returns a Future for its result.
//
// An optional callback may be supplied for callers that predate futures. The
// callback is invoked at most once, with the same value and error the future
// settles with, before Await observes the result. Supplying both a callback
// and awaiting the future delivers the identical outcome on both paths.
func Async[T any](fn func() (T, error), callbacks ...Callback[T]) *Future[T] {
	future := &Future[T]{done: make(chan struct{})}

	go func() {
		value, err := fn()

		for _, callback := range callbacks {
			if callback != nil {
				callback(value, err)
			}
		}

		future.value = value
		future.err = err
		close(future.done)
	}()

	return future
}

// Await blocks until the future settles or the context is done. A context
// cancellation surfaces as the context's error; the underlying operation keeps
// its own context for transport-level cancellation.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T

		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future settles.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}
