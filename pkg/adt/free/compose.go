package free

// Comp is left to right function composition: Comp(f, g)(x) == g(f(x)).
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Iden returns its argument unchanged.
func Iden[A any](a A) A {
	return a
}

// Const builds a function that ignores its argument and returns a.
func Const[A, B any](a A) func(B) A {
	return func(B) A {
		return a
	}
}

// Curry turns a two-argument function into its one-at-a-time shape.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}
