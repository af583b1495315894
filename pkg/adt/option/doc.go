// Package option provides an immutable Option[T] container representing
// either a present value (Some) or its absence (None).
//
// Highlights:
// - Some/None/Of: construct an Option; Of collapses nil-like input to None
// - Map/FlatMap: transform or chain option-producing functions
// - Filter: keep a present value only while a predicate holds
// - Match: reduce to a concrete value via per-variant handlers
// - GetOrElse/Alt: lazy fallbacks for the absent case
//
// Zero values such as 0, "" and false are ordinary present values; only
// nil and nil-valued pointers, maps, slices, interfaces, funcs and
// channels collapse to None.
package option
