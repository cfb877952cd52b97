// wrap.go — folding arbitrary errors into JSON-safe tagged data.
//
// Purpose
//   - Upstream errors (os, net, driver errors, ...) are opaque values. Before
//     they may be attached as a cause or folded into a context they must be
//     summarized into plain data.
//   - Tagged values keep their name, message and context; foreign values
//     become ForeignErrorName entries recording their Go type.
package tagged

import (
	"errors"
	"fmt"
)

// ForeignErrorName names the AnyError produced for errors that are not tagged.
const ForeignErrorName = "ForeignError"

// maxSummarizeDepth bounds the unwrap chain followed by Summarize.
const maxSummarizeDepth = 64

// Summarize converts err and its unwrap chain into an AnyError.
//   - nil → zero AnyError
//   - tagged error → Erase'd copy (falls back to name/message if its context
//     cannot be encoded)
//   - other error → ForeignError with {"type": "<Go type>"} context
//
// Joined errors (Unwrap() []error) keep the first child as the cause and list
// every child message under "errors".
func Summarize(err error) AnyError {
	return summarize(err, 0)
}

func summarize(err error, depth int) AnyError {
	if err == nil {
		return AnyError{}
	}
	if t, ok := err.(Tagged); ok {
		if a, eraseErr := Erase(t); eraseErr == nil {
			return a
		}
		out := AnyError{
			Name:    t.ErrorName(),
			Message: t.ErrorMessage(),
			Context: map[string]any{"type": fmt.Sprintf("%T", err)},
		}
		attachCause(&out, errors.Unwrap(err), depth)
		return out
	}

	ctx := map[string]any{"type": fmt.Sprintf("%T", err)}
	out := AnyError{Name: ForeignErrorName, Message: err.Error(), Context: ctx}

	if m, ok := err.(interface{ Unwrap() []error }); ok {
		children := m.Unwrap()
		msgs := make([]any, 0, len(children))
		var first error
		for _, c := range children {
			if c == nil {
				continue
			}
			if first == nil {
				first = c
			}
			msgs = append(msgs, c.Error())
		}
		ctx["errors"] = msgs
		attachCause(&out, first, depth)
		return out
	}

	attachCause(&out, errors.Unwrap(err), depth)
	return out
}

func attachCause(out *AnyError, cause error, depth int) {
	if cause == nil || depth+1 >= maxSummarizeDepth {
		return
	}
	c := summarize(cause, depth+1)
	out.Cause = &c
}
