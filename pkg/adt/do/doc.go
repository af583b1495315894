// Package do chains several container-producing steps without nesting
// FlatMap calls, in the manner of do notation.
//
// A sequence is an ordered list of (key, step) pairs built with Bind (for
// results) or BindOption (for options). Run evaluates the steps strictly in
// order: each step receives the Scope of previously bound values, and its
// positive value is bound under the step's key. The first step yielding an
// Err (or None) short-circuits the whole sequence; later steps are never
// evaluated and the original failure, identity metadata included, is
// returned unchanged. When every step succeeds, the finish function folds
// the scope into the final value, wrapped in the positive tag.
package do
