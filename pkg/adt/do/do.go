package do

import (
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/result"
)

// Scope holds the values bound by the steps that have already run, keyed by
// the names given to Bind.
type Scope map[string]any

// Get reads a bound value back at its concrete type. The zero value is
// returned for a missing key or a type mismatch.
func Get[T any](s Scope, key string) T {
	v, _ := s[key].(T)
	return v
}

// Step is one named entry of a result sequence.
type Step[E any] struct {
	key string
	run func(s Scope) (any, result.Result[any, E], bool)
}

// Bind names a result-producing step. The step sees every value bound
// before it.
func Bind[T, E any](key string, step func(s Scope) result.Result[T, E]) Step[E] {
	return Step[E]{
		key: key,
		run: func(s Scope) (any, result.Result[any, E], bool) {
			r := step(s)
			if r.IsErr() {
				return nil, result.ErrFrom[any](r), false
			}
			return r.Value(), result.Result[any, E]{}, true
		},
	}
}

// Run evaluates the steps in order, binding each Ok value into the scope.
// The first Err stops the sequence and comes back with its payload and
// identity metadata intact. When all steps succeed, finish folds the scope
// into the final value, returned as Ok.
func Run[T, E any](finish func(s Scope) T, steps ...Step[E]) result.Result[T, E] {
	scope := make(Scope, len(steps))

	for _, st := range steps {
		v, failed, ok := st.run(scope)
		if !ok {
			return result.ErrFrom[T](failed)
		}
		scope[st.key] = v
	}

	return result.Ok[T, E](finish(scope))
}

// OptionStep is one named entry of an option sequence.
type OptionStep struct {
	key string
	run func(s Scope) (any, bool)
}

// BindOption names an option-producing step.
func BindOption[T any](key string, step func(s Scope) option.Option[T]) OptionStep {
	return OptionStep{
		key: key,
		run: func(s Scope) (any, bool) {
			v, ok := step(s).Value()
			if !ok {
				return nil, false
			}
			return v, true
		},
	}
}

// RunOption mirrors Run with None as the negative tag.
func RunOption[T any](finish func(s Scope) T, steps ...OptionStep) option.Option[T] {
	scope := make(Scope, len(steps))

	for _, st := range steps {
		v, ok := st.run(scope)
		if !ok {
			return option.None[T]()
		}
		scope[st.key] = v
	}

	return option.Some(finish(scope))
}
