// format.go — fmt.Formatter and slog.LogValuer for tagged values.
//
// Behavior:
//
//	%s, %v   → concise Error(): "FileError: not found: /tmp/x"
//	%+v      → verbose, multi-line:
//	             name=FileError msg="not found: /tmp/x"
//	             ctx: {"path":"/tmp/x"}
//	             cause: <cause formatted with %+v>
//	%q       → quoted Error()
//
// LogValue renders the same fields as a slog group so structured handlers
// emit {name, message, context, cause} without extra adapters.
package tagged

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

func formatConcise(w io.Writer, e error) {
	_, _ = io.WriteString(w, e.Error())
}

// formatVerbose writes the multi-line form. ctx is omitted when hasCtx is
// false; cause is formatted with %+v so nested tagged values recurse.
func formatVerbose(w io.Writer, name, msg string, ctx any, hasCtx bool, cause error) {
	_, _ = fmt.Fprintf(w, "name=%s msg=%q", name, msg)

	if hasCtx {
		_, _ = io.WriteString(w, "\nctx: ")
		if raw, err := json.Marshal(ctx); err == nil {
			_, _ = w.Write(raw)
		} else {
			_, _ = fmt.Fprintf(w, "%v", ctx)
		}
	}

	if cause != nil {
		_, _ = io.WriteString(w, "\ncause: ")
		_, _ = fmt.Fprintf(w, "%+v", cause)
	}
}

func format(s fmt.State, verb rune, e error, verbose func(io.Writer)) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			verbose(s)
			return
		}
		formatConcise(s, e)
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		formatConcise(s, e)
	}
}

func (e TaggedError[C, K]) Format(s fmt.State, verb rune) {
	format(s, verb, e, func(w io.Writer) {
		var ctx any
		if e.Context != nil {
			ctx = *e.Context
		}
		formatVerbose(w, e.Name, e.Message, ctx, e.Context != nil, e.Unwrap())
	})
}

func (e AnyError) Format(s fmt.State, verb rune) {
	format(s, verb, e, func(w io.Writer) {
		formatVerbose(w, e.Name, e.Message, e.Context, e.Context != nil, e.Unwrap())
	})
}

// LogValue implements slog.LogValuer.
func (e TaggedError[C, K]) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("name", e.Name),
		slog.String("message", e.Message),
	)
	if e.Context != nil {
		attrs = append(attrs, slog.Any("context", *e.Context))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.Any("cause", *e.Cause))
	}
	return slog.GroupValue(attrs...)
}

// LogValue implements slog.LogValuer.
func (e AnyError) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 4)
	attrs = append(attrs,
		slog.String("name", e.Name),
		slog.String("message", e.Message),
	)
	if e.Context != nil {
		attrs = append(attrs, slog.Any("context", e.Context))
	}
	if e.Cause != nil {
		attrs = append(attrs, slog.Any("cause", *e.Cause))
	}
	return slog.GroupValue(attrs...)
}

var (
	_ fmt.Formatter  = TaggedError[None, None]{}
	_ fmt.Formatter  = AnyError{}
	_ slog.LogValuer = TaggedError[None, None]{}
	_ slog.LogValuer = AnyError{}
)
