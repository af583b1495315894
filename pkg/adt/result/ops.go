package result

import "fmt"

// Map transforms the Ok value; an Err passes through with its metadata.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.IsErr() {
		return ErrFrom[U](r)
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the Err payload; an Ok passes through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.IsOk() {
		return Ok[T, F](r.value)
	}
	return Err[T, F](f(r.err))
}

// Bimap applies exactly one of the two functions depending on the tag.
func Bimap[T, E, U, F any](r Result[T, E], onOk func(T) U, onErr func(E) F) Result[U, F] {
	if r.IsOk() {
		return Ok[U, F](onOk(r.value))
	}
	return Err[U, F](onErr(r.err))
}

// FlatMap chains a result-producing function. On Err, f is not invoked and
// the original failure short-circuits through.
func FlatMap[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.IsErr() {
		return ErrFrom[U](r)
	}
	return f(r.value)
}

// FlatMapErr is the mirror of FlatMap: it short-circuits on Ok and chains
// an error-recovery function on Err.
func FlatMapErr[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if r.IsOk() {
		return Ok[T, F](r.value)
	}
	return f(r.err)
}

// Match reduces the result to a value, calling exactly one handler.
func Match[T, E, O any](r Result[T, E], onErr func(E) O, onOk func(T) O) O {
	if r.IsErr() {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// GetOrElse returns the Ok value, or evaluates fallback on Err. fallback is
// not called when the result is Ok.
func GetOrElse[T, E any](r Result[T, E], fallback func() T) T {
	if r.IsErr() {
		return fallback()
	}
	return r.value
}

// FromPredicate guards a value: Ok when the predicate holds, otherwise Err
// with a payload built from the rejected value.
func FromPredicate[T, E any](v T, predicate func(T) bool, onFalse func(T) E) Result[T, E] {
	if predicate(v) {
		return Ok[T, E](v)
	}
	return Err[T, E](onFalse(v))
}

// Try runs a conventional (value, error) function and folds the error
// return into an Err.
func Try[T any](thunk func() (T, error)) Result[T, error] {
	v, err := thunk()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// TryCatch runs the thunk and captures a raised panic as an Err. A panic
// value that is already an error is kept as-is. This is the only place in
// the package that recovers; the fault never escapes.
func TryCatch[T any](thunk func() T) (r Result[T, error]) {
	defer func() {
		if rec := recover(); rec != nil {
			if err, ok := rec.(error); ok {
				r = Err[T, error](err)
				return
			}
			r = Err[T, error](fmt.Errorf("%v", rec))
		}
	}()
	return Ok[T, error](thunk())
}

// TryCatchWith is TryCatch with a caller-supplied fault mapper. mapErr
// receives the raw panic value.
func TryCatchWith[T, E any](thunk func() T, mapErr func(any) E) (r Result[T, E]) {
	defer func() {
		if rec := recover(); rec != nil {
			r = Err[T, E](mapErr(rec))
		}
	}()
	return Ok[T, E](thunk())
}
