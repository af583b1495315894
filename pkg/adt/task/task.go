package task

import (
	"context"

	"github.com/ib-77/adt/pkg/adt/result"
)

// Task is a deferred result-producing computation.
type Task[T, E any] func() result.Result[T, E]

// Of lifts an already known value into a task.
func Of[T, E any](v T) Task[T, E] {
	return func() result.Result[T, E] {
		return result.Ok[T, E](v)
	}
}

// FromTry defers a conventional (value, error) function.
func FromTry[T any](thunk func() (T, error)) Task[T, error] {
	return func() result.Result[T, error] {
		return result.Try(thunk)
	}
}

// Map transforms the eventual Ok value without running the task.
func Map[T, U, E any](t Task[T, E], f func(T) U) Task[U, E] {
	return func() result.Result[U, E] {
		return result.Map(t(), f)
	}
}

// FlatMap sequences a dependent task. The second task is only built and
// run when the first succeeds.
func FlatMap[T, U, E any](t Task[T, E], f func(T) Task[U, E]) Task[U, E] {
	return func() result.Result[U, E] {
		r := t()
		if r.IsErr() {
			return result.ErrFrom[U](r)
		}
		return f(r.Value())()
	}
}

// Run executes the task synchronously.
func (t Task[T, E]) Run() result.Result[T, E] {
	return t()
}

// Async executes the task on a fresh goroutine. Each call starts a new
// execution; results are never shared between calls.
func (t Task[T, E]) Async() <-chan result.Result[T, E] {
	out := make(chan result.Result[T, E], 1)

	go func() {
		defer close(out)
		out <- t()
	}()

	return out
}

// Await collects an Async result, racing it against ctx. On cancellation
// the task keeps running in the background; the caller gets an Err built by
// onCancel from the context error.
func Await[T, E any](ctx context.Context, ch <-chan result.Result[T, E],
	onCancel func(err error) E) result.Result[T, E] {

	select {
	case r, ok := <-ch:
		if !ok {
			return result.Err[T, E](onCancel(context.Canceled))
		}
		return r
	case <-ctx.Done():
		return result.Err[T, E](onCancel(ctx.Err()))
	}
}
