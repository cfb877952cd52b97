// result_test.go — Result construction, narrowing, pair interop and wire format.
package tagged

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResult_Cases(t *testing.T) {
	t.Parallel()

	ok := Ok[int, AnyError](42)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())
	v, has := ok.Value()
	assert.True(t, has)
	assert.Equal(t, 42, v)
	_, has = ok.Failure()
	assert.False(t, has)

	failed := Err[int](AnyError{Name: "BoomError", Message: "boom"})
	assert.False(t, failed.IsOk())
	assert.True(t, failed.IsErr())
	_, has = failed.Value()
	assert.False(t, has)
	e, has := failed.Failure()
	assert.True(t, has)
	assert.Equal(t, "BoomError", e.Name)

	data, errv := failed.Unpack()
	assert.Zero(t, data)
	assert.Equal(t, e, errv)
}

func TestResult_ZeroValueIsFailure(t *testing.T) {
	t.Parallel()

	var r Result[string, AnyError]
	assert.True(t, r.IsErr())
}

func TestResult_JSON(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		raw, err := json.Marshal(Ok[[]string, AnyError]([]string{"a", "b"}))
		require.NoError(t, err)
		assert.JSONEq(t, `{"data":["a","b"],"error":null}`, string(raw))

		var back Result[[]string, AnyError]
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, Ok[[]string, AnyError]([]string{"a", "b"}), back)
	})

	t.Run("err", func(t *testing.T) {
		t.Parallel()
		in := fileError.Err(fileError.Ctx(fileContext{Path: "/x"}))
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var back Result[None, TaggedError[fileContext, None]]
		require.NoError(t, json.Unmarshal(raw, &back))
		assert.Equal(t, in, back)
	})

	t.Run("ok with null data", func(t *testing.T) {
		t.Parallel()
		var back Result[*int, AnyError]
		require.NoError(t, json.Unmarshal([]byte(`{"data":null,"error":null}`), &back))
		assert.True(t, back.IsOk())
		v, _ := back.Value()
		assert.Nil(t, v)
	})

	t.Run("missing keys decode as ok", func(t *testing.T) {
		t.Parallel()
		var back Result[int, AnyError]
		require.NoError(t, json.Unmarshal([]byte(`{}`), &back))
		assert.True(t, back.IsOk())
	})

	t.Run("both slots rejected", func(t *testing.T) {
		t.Parallel()
		var back Result[int, AnyError]
		err := json.Unmarshal([]byte(`{"data":1,"error":{"name":"XError","message":"x"}}`), &back)
		require.Error(t, err)
	})

	t.Run("failure with a null error is refused", func(t *testing.T) {
		t.Parallel()
		_, err := json.Marshal(Err[int, *AnyError](nil))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotJSONSafe)

		_, err = json.Marshal(Err[int, error](nil))
		assert.ErrorIs(t, err, ErrNotJSONSafe)
	})

	t.Run("failure with a pointer error survives", func(t *testing.T) {
		t.Parallel()
		in := Err[int](&AnyError{Name: "XError", Message: "x"})
		raw, err := json.Marshal(in)
		require.NoError(t, err)

		var back Result[int, *AnyError]
		require.NoError(t, json.Unmarshal(raw, &back))
		require.True(t, back.IsErr())
		e, _ := back.Failure()
		assert.Equal(t, "XError", e.Name)
	})

	t.Run("malformed error slot", func(t *testing.T) {
		t.Parallel()
		var back Result[int, AnyError]
		require.Error(t, json.Unmarshal([]byte(`{"data":null,"error":42}`), &back))
	})
}

func TestRecast(t *testing.T) {
	t.Parallel()

	r := Recast[string](plainError.Err())
	require.True(t, r.IsErr())
	e, _ := r.Failure()
	assert.Equal(t, "PlainError", e.Name)

	okCase := Recast[string](Ok[None, AnyError](None{}))
	assert.True(t, okCase.IsOk())
	v, _ := okCase.Value()
	assert.Equal(t, "", v)
}

func TestPairs(t *testing.T) {
	t.Parallel()

	r := FromPair(7, nil)
	require.True(t, r.IsOk())
	v, err := ToPair(r)
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	boom := errors.New("boom")
	r = FromPair(0, boom)
	require.True(t, r.IsErr())
	_, err = ToPair(r)
	assert.ErrorIs(t, err, boom)

	t.Run("no typed nil on success", func(t *testing.T) {
		t.Parallel()
		ok := Ok[int, TaggedError[fileContext, None]](1)
		_, err := ToPair(ok)
		assert.True(t, err == nil)
	})

	t.Run("tagged failure keeps its type", func(t *testing.T) {
		t.Parallel()
		failed := ErrFor[int](fileError, fileError.Ctx(fileContext{Path: "/y"}))
		_, err := ToPair(failed)
		got, ok := As[fileContext, None](err)
		require.True(t, ok)
		assert.Equal(t, "/y", got.Context.Path)
	})
}
