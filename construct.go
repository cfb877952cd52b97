// construct.go — the terminal constructors of a declared error kind.
//
// A Kind is produced by Builder.WithMessage. It offers two constructors:
//   - New builds the bare TaggedError (exported by convention as "FileError").
//   - Err builds the same value pre-wrapped in a failed Result ("FileErr").
//
// Call-site input is passed as Args built by the kind itself:
//
//	FileError.New(FileError.Ctx(FileContext{Path: p}))
//	FileError.New(FileError.Ctx(ctx), FileError.Msg("custom text"))
//
// Constructors are pure: each call allocates a fresh value from the immutable
// name and message rule, so a Kind may be shared across goroutines freely.
package tagged

import (
	"github.com/m-mizutani/goerr/v2"
)

// Kind is a finalized error kind.
type Kind[C, K any] struct {
	name    string
	errName string
	context presence
	cause   presence
	rule    func(MessageInput[C, K]) string

	// set when the declared shape holds interfaces or floats
	deepContext bool
	deepCause   bool
}

// Arg is one piece of call-site input for New or Err.
type Arg[C, K any] func(*input[C, K])

type input[C, K any] struct {
	context    *C
	cause      *K
	message    string
	hasMessage bool
}

// Name returns the discriminant shared by every instance, e.g. "FileError".
func (k *Kind[C, K]) Name() string { return k.name }

// ErrName returns the name of the Result-wrapped constructor, e.g. "FileErr".
func (k *Kind[C, K]) ErrName() string { return k.errName }

// Ctx supplies the context. An Arg may be reused; every value it is applied
// to gets its own copy.
func (k *Kind[C, K]) Ctx(c C) Arg[C, K] {
	return func(in *input[C, K]) {
		v := c
		in.context = &v
	}
}

// Cause supplies the cause. The value is embedded verbatim.
func (k *Kind[C, K]) Cause(c K) Arg[C, K] {
	return func(in *input[C, K]) {
		v := c
		in.cause = &v
	}
}

// Msg overrides the computed message. The rule is not invoked.
func (k *Kind[C, K]) Msg(s string) Arg[C, K] {
	return func(in *input[C, K]) {
		in.message = s
		in.hasMessage = true
	}
}

// New builds a TaggedError from args. It panics with ErrContractViolation if
// a required context or cause is missing, or if one is supplied that the kind
// never declared. It panics with ErrNotJSONSafe if a supplied context or
// cause would not survive a JSON round trip: a nil map, slice or pointer, an
// int stored behind any, a NaN.
func (k *Kind[C, K]) New(args ...Arg[C, K]) TaggedError[C, K] {
	var in input[C, K]
	for _, arg := range args {
		if arg != nil {
			arg(&in)
		}
	}
	k.validate(&in)
	k.checkValues(&in)

	out := TaggedError[C, K]{
		Name:    k.name,
		Context: in.context,
		Cause:   in.cause,
	}
	if in.hasMessage {
		out.Message = in.message
	} else {
		out.Message = k.rule(MessageInput[C, K]{
			Name:    k.name,
			Context: in.context,
			Cause:   in.cause,
		})
	}
	return out
}

// Err builds the same value as New and wraps it in a failed Result. Use
// Recast or ErrFor to give the Result a concrete success type.
func (k *Kind[C, K]) Err(args ...Arg[C, K]) Result[None, TaggedError[C, K]] {
	return Err[None](k.New(args...))
}

// ErrFor is Err with an explicit success type:
//
//	func load(p string) tagged.Result[Config, FileErrorValue] {
//		return tagged.ErrFor[Config](FileError, FileError.Ctx(FileContext{Path: p}))
//	}
func ErrFor[T, C, K any](k *Kind[C, K], args ...Arg[C, K]) Result[T, TaggedError[C, K]] {
	return Err[T](k.New(args...))
}

// Is reports whether err, or any error in its chain, carries k's name. Values
// decoded or erased into AnyError still match.
func (k *Kind[C, K]) Is(err error) bool {
	return HasName(err, k.name)
}

func (k *Kind[C, K]) checkValues(in *input[C, K]) {
	if in.context != nil {
		if err := checkSlotValue(*in.context, k.deepContext); err != nil {
			panic(goerr.Wrap(err, "context is not JSON safe", goerr.V("name", k.name)))
		}
	}
	if in.cause != nil {
		if err := checkSlotValue(*in.cause, k.deepCause); err != nil {
			panic(goerr.Wrap(err, "cause is not JSON safe", goerr.V("name", k.name)))
		}
	}
}

func (k *Kind[C, K]) validate(in *input[C, K]) {
	var msg string
	switch {
	case k.context == required && in.context == nil:
		msg = "context is required"
	case k.context == absent && in.context != nil:
		msg = "context is not declared"
	case k.cause == required && in.cause == nil:
		msg = "cause is required"
	case k.cause == absent && in.cause != nil:
		msg = "cause is not declared"
	default:
		return
	}
	panic(violation(msg,
		goerr.V("name", k.name),
		goerr.V("context", k.context.String()),
		goerr.V("cause", k.cause.String()),
	))
}
