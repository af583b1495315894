package task

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/adt/pkg/adt/result"
)

func TestTask_Lazy(t *testing.T) {
	t.Parallel()

	ran := 0
	tk := Task[int, error](func() result.Result[int, error] {
		ran++
		return result.Ok[int, error](ran)
	})

	assert.Equal(t, 0, ran)

	first := tk.Run()
	second := tk.Run()

	// no caching: every invocation re-runs the computation
	assert.Equal(t, 1, first.Value())
	assert.Equal(t, 2, second.Value())
}

func TestOf(t *testing.T) {
	t.Parallel()

	r := Of[int, error](5).Run()
	require.True(t, r.IsOk())
	assert.Equal(t, 5, r.Value())
}

func TestFromTry(t *testing.T) {
	t.Parallel()

	r := FromTry(func() (int, error) { return 0, errors.New("nope") }).Run()
	require.True(t, r.IsErr())
	assert.EqualError(t, r.Err(), "nope")
}

func TestMapFlatMap_DeferredUntilRun(t *testing.T) {
	t.Parallel()

	ran := false
	base := Task[int, error](func() result.Result[int, error] {
		ran = true
		return result.Ok[int, error](3)
	})

	composed := FlatMap(Map(base, func(v int) int { return v * 2 }),
		func(v int) Task[int, error] { return Of[int, error](v + 1) })

	assert.False(t, ran)

	r := composed.Run()
	require.True(t, r.IsOk())
	assert.Equal(t, 7, r.Value())
	assert.True(t, ran)
}

func TestFlatMap_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	failed := Task[int, string](func() result.Result[int, string] {
		return result.Err[int, string]("boom")
	})

	r := FlatMap(failed, func(v int) Task[int, string] {
		called = true
		return Of[int, string](v)
	}).Run()

	require.True(t, r.IsErr())
	assert.Equal(t, "boom", r.Err())
	assert.False(t, called)
}

func TestAsyncAwait(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tk := Of[int, error](42)
	r := Await(ctx, tk.Async(), func(err error) error { return err })

	require.True(t, r.IsOk())
	assert.Equal(t, 42, r.Value())
}

func TestAwait_Cancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slow := Task[int, error](func() result.Result[int, error] {
		time.Sleep(time.Second)
		return result.Ok[int, error](1)
	})

	r := Await(ctx, slow.Async(), func(err error) error { return err })

	require.True(t, r.IsErr())
	assert.ErrorIs(t, r.Err(), context.Canceled)
}
