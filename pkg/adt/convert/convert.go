package convert

import (
	"github.com/ib-77/adt/pkg/adt/option"
	"github.com/ib-77/adt/pkg/adt/result"
)

// Unit is the payload-free type witnessing Option[T] == Result[T, Unit].
type Unit = struct{}

// OptionToResult turns a present value into Ok and absence into Err with a
// payload built by onNone. onNone is only called for None.
func OptionToResult[T, E any](o option.Option[T], onNone func() E) result.Result[T, E] {
	return option.Match(o,
		func() result.Result[T, E] { return result.Err[T, E](onNone()) },
		result.Ok[T, E])
}

// ResultToOption keeps the Ok value and discards the error payload.
func ResultToOption[T, E any](r result.Result[T, E]) option.Option[T] {
	return result.Match(r,
		func(E) option.Option[T] { return option.None[T]() },
		option.Some[T])
}
