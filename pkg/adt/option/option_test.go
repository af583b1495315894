package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_NilCollapse(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, Of(p).IsNone())

	var m map[string]int
	assert.True(t, Of(m).IsNone())

	var s []string
	assert.True(t, Of(s).IsNone())

	var i any
	assert.True(t, Of(i).IsNone())
}

func TestOf_ZeroValuesArePresent(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(0), Of(0))
	assert.Equal(t, Some(""), Of(""))
	assert.Equal(t, Some(false), Of(false))
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	v := 7
	require.True(t, FromPtr(&v).IsSome())
	assert.Equal(t, 7, FromPtr(&v).UnwrapOr(0))

	var p *int
	assert.True(t, FromPtr(p).IsNone())
}

func TestMap_FunctorLaws(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }
	inc := func(v int) int { return v + 1 }

	// identity
	o := Some(5)
	assert.Equal(t, o, Map(o, func(v int) int { return v }))

	// composition
	left := Map(Map(o, double), inc)
	right := Map(o, func(v int) int { return inc(double(v)) })
	assert.Equal(t, left, right)
}

func TestMap_NoneSkipsFn(t *testing.T) {
	t.Parallel()

	called := false
	res := Map(None[int](), func(v int) int {
		called = true
		return v
	})

	assert.True(t, res.IsNone())
	assert.False(t, called)
}

func TestFlatMap_MonadLaws(t *testing.T) {
	t.Parallel()

	f := func(v int) Option[int] { return Some(v * 2) }
	g := func(v int) Option[int] { return Some(v + 1) }

	// left identity
	assert.Equal(t, f(3), FlatMap(Some(3), f))

	// right identity
	o := Some(3)
	assert.Equal(t, o, FlatMap(o, Some[int]))

	// associativity
	left := FlatMap(FlatMap(o, f), g)
	right := FlatMap(o, func(v int) Option[int] { return FlatMap(f(v), g) })
	assert.Equal(t, left, right)
}

func TestFlatMap_NoDoubleWrap(t *testing.T) {
	t.Parallel()

	res := FlatMap(Some(1), func(int) Option[string] { return None[string]() })
	assert.True(t, res.IsNone())
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }

	assert.True(t, Filter(Some(4), even).IsSome())
	assert.True(t, Filter(Some(3), even).IsNone())
	assert.True(t, Filter(None[int](), even).IsNone())
}

func TestMatch_CallsExactlyOneBranch(t *testing.T) {
	t.Parallel()

	got := Match(Some(2),
		func() string { return "none" },
		func(v int) string { return "some" })
	assert.Equal(t, "some", got)

	got = Match(None[int](),
		func() string { return "none" },
		func(v int) string { return "some" })
	assert.Equal(t, "none", got)
}

func TestGetOrElse_LazyFallback(t *testing.T) {
	t.Parallel()

	called := false
	v := GetOrElse(Some(9), func() int {
		called = true
		return 0
	})
	assert.Equal(t, 9, v)
	assert.False(t, called)

	v = GetOrElse(None[int](), func() int { return 42 })
	assert.Equal(t, 42, v)
}

func TestAlt_LazyAlternative(t *testing.T) {
	t.Parallel()

	called := false
	res := Alt(Some(1), func() Option[int] {
		called = true
		return Some(2)
	})
	assert.Equal(t, Some(1), res)
	assert.False(t, called)

	res = Alt(None[int](), func() Option[int] { return Some(2) })
	assert.Equal(t, Some(2), res)
}
