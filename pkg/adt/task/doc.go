// Package task wraps a result-producing computation in a zero-argument
// callable. A Task is lazy: nothing runs until Run or Async is called, and
// every call re-runs the underlying computation from scratch. There is no
// caching between invocations and no cancellation inside a running thunk;
// cancellation is handled at the Await boundary only.
//
// Highlights:
// - Of/FromTry: build a task from a value or a (value, error) function
// - Map/FlatMap: compose tasks without running them
// - Run: execute synchronously
// - Async/Await: execute on a fresh goroutine and collect under a context
package task
