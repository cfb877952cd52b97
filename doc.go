// doc.go — package documentation for xgx-tagged
//
// Package tagged represents operation outcomes as data instead of panics: a
// two-case Result container and a staged builder for tagged errors, values
// with a discriminant name, a message, and optionally a typed context and a
// typed cause. Every produced value is plain JSON-serializable data that
// survives encode/decode unchanged, so it can cross process, network and log
// boundaries.
//
// # Declaring a kind
//
// A kind is declared once, usually at package scope:
//
//	type FileContext struct {
//		Path string `json:"path"`
//	}
//
//	var FileError = tagged.WithContext[FileContext](tagged.Define("FileError")).
//		WithMessage(func(in tagged.MessageInput[FileContext, tagged.None]) string {
//			return "not found: " + in.Context.Path
//		})
//
// Stages, each optional except the last:
//
//	+-----------------------------+--------------------------------------------+
//	| Stage                       | Effect                                     |
//	+-----------------------------+--------------------------------------------+
//	| Define(name)                | name must end with "Error"                 |
//	| WithContext[C]              | every instance carries a C                 |
//	| WithOptionalContext[C]      | instances may carry a C                    |
//	| WithCause[K]                | every instance carries a K (tagged)        |
//	| WithOptionalCause[K]        | instances may carry a K                    |
//	| .WithMessage(rule)          | terminal; returns *Kind with constructors  |
//	+-----------------------------+--------------------------------------------+
//
// Undeclared slots are structurally absent: the JSON form of a kind with no
// context and no cause has exactly the keys "name" and "message".
//
// # Constructing values
//
//	err := FileError.New(FileError.Ctx(FileContext{Path: "/tmp/x"}))
//	// {"name":"FileError","message":"not found: /tmp/x","context":{"path":"/tmp/x"}}
//
//	res := FileError.Err(FileError.Ctx(FileContext{Path: "/tmp/x"}))
//	// {"data":null,"error":{"name":"FileError",...}}
//
// FileError.Msg("...") overrides the computed message for one call; the rule
// is a default, not an enforced invariant. Kind.ErrName reports the
// conventional name of the Result-wrapped form ("FileErr").
//
// # Causes
//
// WithCause[K] accepts either one specific kind's value type, encoding "this
// failure only follows that failure", or AnyError for any tagged error.
// Foreign errors (os, net, drivers) are folded into AnyError with Summarize
// before they are attached.
//
// # Programmer errors
//
// Go cannot type a string suffix nor make a variadic argument required, so
// some contract checks run at declaration or call time and panic:
//
//   - ErrInvalidName: Define with a name not ending in "Error".
//   - ErrNotJSONSafe: a declared shape with chans, funcs, time.Time,
//     unexported fields, or map keys that are neither strings nor integers;
//     or a supplied context or cause that would not round-trip (nil maps,
//     slices and pointers, ints behind any, NaN and ±Inf).
//   - ErrContractViolation: a missing required context or cause, a slot
//     supplied that the kind never declared, a None shape, a zero Builder,
//     a nil message rule.
//
// Declaring the same slot twice, or passing a cause that is not tagged, does
// not compile.
//
// Panic values are *goerr.Error wrapping these sentinels; match them with
// errors.Is after recover. Domain failures are never panicked.
//
// # Interop
//
//   - Tagged values implement error and unwrap to their cause; errors.Is/As,
//     Walk, NameOf, HasName and Kind.Is traverse the chain.
//   - %+v prints the full chain; LogValue renders a slog group.
//   - Try / TryContext convert (T, error) calls and panics into Results.
package tagged
