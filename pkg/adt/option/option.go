package option

import "reflect"

type Option[T any] struct {
	value T
	some  bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{
		value: v,
		some:  true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// Of collapses nil-like input to None; every other value, including zero
// values, is Some.
func Of[T any](v T) Option[T] {
	if isNil(v) {
		return None[T]()
	}
	return Some(v)
}

func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

func (o Option[T]) IsSome() bool {
	return o.some
}

func (o Option[T]) IsNone() bool {
	return !o.some
}

// Value returns the contained value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.some
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.some {
		return o.value
	}
	return fallback
}

func isNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}
