package option

// Map transforms the present value; None passes through untouched.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return Some(f(o.value))
}

// FlatMap chains a function that itself returns an Option. The result of f
// is returned as-is, never re-wrapped.
func FlatMap[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if o.IsNone() {
		return None[U]()
	}
	return f(o.value)
}

// Filter keeps a present value only if the predicate holds.
func Filter[T any](o Option[T], predicate func(T) bool) Option[T] {
	if o.IsNone() || predicate(o.value) {
		return o
	}
	return None[T]()
}

// Match reduces the option to a value, calling exactly one handler.
func Match[T, U any](o Option[T], onNone func() U, onSome func(T) U) U {
	if o.IsNone() {
		return onNone()
	}
	return onSome(o.value)
}

// GetOrElse returns the contained value, or evaluates fallback when absent.
// fallback is not called on Some.
func GetOrElse[T any](o Option[T], fallback func() T) T {
	if o.IsNone() {
		return fallback()
	}
	return o.value
}

// Alt returns o unchanged when present, otherwise evaluates the alternative.
func Alt[T any](o Option[T], fn func() Option[T]) Option[T] {
	if o.IsNone() {
		return fn()
	}
	return o
}
