// Package result provides an immutable Result[T, E] container representing
// either a successful value (Ok) or a failure payload (Err). The error side
// is caller-chosen data; it is not constrained to the error interface.
//
// Every Result carries identity metadata (a uuid and a UTC creation time)
// stamped at construction. Operations that short-circuit an Err across a
// value-type change preserve that metadata via ErrFrom, so the failure that
// comes out of a pipeline is the one that went in.
//
// Highlights:
// - Ok/Err: construct a Result
// - Map/MapErr/Bimap: transform one side, the other passes through
// - FlatMap/FlatMapErr: chain result-producing functions with short circuit
// - Match/GetOrElse: reduce to a concrete value
// - FromPredicate: guard a value with a predicate
// - Try/TryCatch: the only fault boundaries; nothing else raises
package result
