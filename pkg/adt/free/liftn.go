package free

import "fmt"

// Predicate inspects the raw call-site argument list; true selects the
// direct form.
type Predicate func(args []any) bool

// OpN is the variable-arity fallback adapter for operations wider than the
// typed Op2..Op5 range. Arguments and result are erased to any.
type OpN struct {
	arity  int
	body   func(args ...any) any
	direct Predicate
}

// LiftN wraps a body of the declared arity, container first. An arity below
// the supported range is a construction-time fault.
func LiftN(arity int, body func(args ...any) any) *OpN {
	if arity < 2 {
		panic(fmt.Sprintf("free: unsupported arity %d, need at least 2", arity))
	}
	return &OpN{arity: arity, body: body}
}

// WithPredicate overrides the argument-count rule for form selection.
func (op *OpN) WithPredicate(p Predicate) *OpN {
	return &OpN{arity: op.arity, body: op.body, direct: p}
}

// Invoke dispatches on the call-site argument list. In the direct form the
// body runs immediately; otherwise the result is a func(any) any expecting
// the container, which is prepended to the supplied arguments.
func (op *OpN) Invoke(args ...any) any {
	if op.isDirect(args) {
		return op.body(args...)
	}
	return func(container any) any {
		full := make([]any, 0, len(args)+1)
		full = append(full, container)
		full = append(full, args...)
		return op.body(full...)
	}
}

func (op *OpN) isDirect(args []any) bool {
	if op.direct != nil {
		return op.direct(args)
	}
	return len(args) >= op.arity
}
