// helpers_test.go — shared kinds and assertions for package tests.
package tagged

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fileContext struct {
	Path string `json:"path"`
}

type dbContext struct {
	Query string `json:"query"`
	Rows  int    `json:"rows"`
}

type dbErrorValue = TaggedError[dbContext, None]

var (
	fileError = WithContext[fileContext](Define("FileError")).WithMessage(
		func(in MessageInput[fileContext, None]) string { return "not found: " + in.Context.Path },
	)

	plainError = Define("PlainError").WithMessage(
		func(MessageInput[None, None]) string { return "plain failure" },
	)

	dbError = WithContext[dbContext](Define("DbError")).WithMessage(
		func(in MessageInput[dbContext, None]) string { return "query failed: " + in.Context.Query },
	)

	// repoError only ever follows a dbError.
	repoError = WithCause[dbErrorValue](Define("RepoError")).WithMessage(
		func(in MessageInput[None, dbErrorValue]) string {
			return "repository unavailable: " + in.Cause.Message
		},
	)

	// serviceError follows anything tagged.
	serviceError = WithOptionalCause[AnyError](
		WithOptionalContext[map[string]any](Define("ServiceError")),
	).WithMessage(func(in MessageInput[map[string]any, AnyError]) string {
		if in.Cause != nil {
			return "service failed after " + in.Cause.Name
		}
		return "service failed"
	})
)

type ratioContext struct {
	Ratio float64 `json:"ratio"`
}

// Kinds whose shapes admit values that cannot round-trip.
var (
	labelsError = WithContext[map[string]string](Define("LabelsError")).WithMessage(
		func(MessageInput[map[string]string, None]) string { return "bad labels" },
	)

	ratioError = WithContext[ratioContext](Define("RatioError")).WithMessage(
		func(MessageInput[ratioContext, None]) string { return "bad ratio" },
	)

	looseError = WithOptionalContext[any](Define("LooseError")).WithMessage(
		func(MessageInput[any, None]) string { return "loose" },
	)

	pathError = WithOptionalContext[*fileContext](Define("PathError")).WithMessage(
		func(MessageInput[*fileContext, None]) string { return "path" },
	)

	chainError = WithOptionalCause[*AnyError](Define("ChainError")).WithMessage(
		func(MessageInput[None, *AnyError]) string { return "chained" },
	)
)

// requirePanicIs runs fn and asserts it panics with an error matching target.
func requirePanicIs(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value %#v is not an error", r)
		require.ErrorIs(t, err, target)
	}()
	fn()
}
