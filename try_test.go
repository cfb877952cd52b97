// try_test.go — converting fallible calls and panics into Results.
package tagged

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTry(t *testing.T) {
	t.Parallel()

	parse := func(s string) Result[int, AnyError] {
		return Try(func() (int, error) { return strconv.Atoi(s) }, Summarize)
	}

	t.Run("success", func(t *testing.T) {
		t.Parallel()
		v, ok := parse("42").Value()
		require.True(t, ok)
		assert.Equal(t, 42, v)
	})

	t.Run("returned error is mapped", func(t *testing.T) {
		t.Parallel()
		e, ok := parse("x").Failure()
		require.True(t, ok)
		assert.Equal(t, ForeignErrorName, e.Name)
		assert.Contains(t, e.Message, `parsing "x"`)
	})

	t.Run("panic with an error keeps it reachable", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("boom")
		var mapped error
		res := Try(func() (int, error) { panic(boom) }, func(err error) error {
			mapped = err
			return err
		})
		require.True(t, res.IsErr())
		assert.ErrorIs(t, mapped, boom)
	})

	t.Run("panic with a non-error value", func(t *testing.T) {
		t.Parallel()
		res := Try(func() (string, error) { panic("kaboom") }, Summarize)
		e, ok := res.Failure()
		require.True(t, ok)
		assert.Equal(t, ForeignErrorName, e.Name)
		assert.Contains(t, e.Message, "recovered panic")
	})

	t.Run("tagged mapping", func(t *testing.T) {
		t.Parallel()
		res := Try(
			func() (int, error) { return 0, errors.New("no rows") },
			func(err error) TaggedError[dbContext, None] {
				return dbError.New(dbError.Ctx(dbContext{Query: err.Error()}))
			},
		)
		assert.True(t, dbError.Is(res.err))
	})
}

func TestTryContext(t *testing.T) {
	t.Parallel()

	t.Run("delivers fn's result", func(t *testing.T) {
		t.Parallel()
		res := <-TryContext(context.Background(), func(context.Context) (string, error) {
			return "done", nil
		}, Summarize)
		v, ok := res.Value()
		require.True(t, ok)
		assert.Equal(t, "done", v)
	})

	t.Run("cancellation wins over a blocked fn", func(t *testing.T) {
		t.Parallel()
		release := make(chan struct{})
		defer close(release)

		ctx, cancel := context.WithCancel(context.Background())
		out := TryContext(ctx, func(context.Context) (int, error) {
			<-release
			return 1, nil
		}, Summarize)
		cancel()

		res := <-out
		e, ok := res.Failure()
		require.True(t, ok)
		assert.Equal(t, context.Canceled.Error(), e.Message)
	})
}
