package free

// Op2 adapts a two-argument operation whose first parameter is the
// container.
type Op2[C, A, R any] struct {
	body func(C, A) R
}

func Lift2[C, A, R any](body func(C, A) R) Op2[C, A, R] {
	return Op2[C, A, R]{body: body}
}

// Call is the direct form.
func (op Op2[C, A, R]) Call(c C, a A) R {
	return op.body(c, a)
}

// With is the point-free form: the returned function awaits the container.
func (op Op2[C, A, R]) With(a A) func(C) R {
	return func(c C) R {
		return op.body(c, a)
	}
}

type Op3[C, A, B, R any] struct {
	body func(C, A, B) R
}

func Lift3[C, A, B, R any](body func(C, A, B) R) Op3[C, A, B, R] {
	return Op3[C, A, B, R]{body: body}
}

func (op Op3[C, A, B, R]) Call(c C, a A, b B) R {
	return op.body(c, a, b)
}

func (op Op3[C, A, B, R]) With(a A, b B) func(C) R {
	return func(c C) R {
		return op.body(c, a, b)
	}
}

type Op4[C, A, B, D, R any] struct {
	body func(C, A, B, D) R
}

func Lift4[C, A, B, D, R any](body func(C, A, B, D) R) Op4[C, A, B, D, R] {
	return Op4[C, A, B, D, R]{body: body}
}

func (op Op4[C, A, B, D, R]) Call(c C, a A, b B, d D) R {
	return op.body(c, a, b, d)
}

func (op Op4[C, A, B, D, R]) With(a A, b B, d D) func(C) R {
	return func(c C) R {
		return op.body(c, a, b, d)
	}
}

type Op5[C, A, B, D, F, R any] struct {
	body func(C, A, B, D, F) R
}

func Lift5[C, A, B, D, F, R any](body func(C, A, B, D, F) R) Op5[C, A, B, D, F, R] {
	return Op5[C, A, B, D, F, R]{body: body}
}

func (op Op5[C, A, B, D, F, R]) Call(c C, a A, b B, d D, f F) R {
	return op.body(c, a, b, d, f)
}

func (op Op5[C, A, B, D, F, R]) With(a A, b B, d D, f F) func(C) R {
	return func(c C) R {
		return op.body(c, a, b, d, f)
	}
}
