// Package free adapts container operations so they can be invoked in two
// shapes: the direct form op.Call(container, args...) and the point-free
// form op.With(args...)(container), where the container is supplied last.
//
// Lift2 through Lift5 wrap bodies of fixed arity, with the container as the
// first parameter, into typed adapters exposing both forms. LiftN is the
// variable-arity fallback for anything wider: it works over []any and
// decides between the two forms from the number of arguments at the call
// site, or from a caller-supplied predicate over the raw argument list.
//
// The package also carries small composition helpers (Comp, Iden, Const,
// Curry) used to build the on-the-fly closures the adapters expect.
package free
