// builder.go — staged declaration of an error kind.
//
// Stages:
//
//	Define("FileError")                       Builder[None, None]
//	  → WithContext[C] / WithOptionalContext[C]  Builder[C, K]   (at most once)
//	  → WithCause[K]   / WithOptionalCause[K]    Builder[C, K]   (at most once, any order)
//	  → .WithMessage(rule)                     *Kind[C, K]       (terminal)
//
// Context and cause are declared through package functions because Go methods
// cannot introduce type parameters. Each declaration accepts only a builder
// whose slot is still None, so declaring a slot twice fails to compile; None
// itself is refused as a shape, which closes the remaining gap at run time.
// Required-ness, names and JSON shapes are checked at declaration time and
// violations panic: they are programming mistakes, not domain failures.
package tagged

import (
	"reflect"

	"github.com/m-mizutani/goerr/v2"
)

// presence is the declared mode of the context or cause slot.
type presence uint8

const (
	absent presence = iota
	required
	optional
)

func (p presence) String() string {
	switch p {
	case required:
		return "required"
	case optional:
		return "optional"
	default:
		return "absent"
	}
}

// Builder accumulates the shape of one error kind. It is an immutable value;
// every stage returns a new Builder. It has no constructors: only WithMessage
// turns it into a Kind.
type Builder[C, K any] struct {
	name    string
	context presence
	cause   presence
}

// MessageInput is what a message rule sees. Context and Cause are nil when
// the slot is absent or was not supplied at the call site.
type MessageInput[C, K any] struct {
	Name    string
	Context *C
	Cause   *K
}

// Define starts the declaration of an error kind. The name becomes the
// discriminant of every value the kind produces. It panics with
// ErrInvalidName unless the name ends with ErrorSuffix.
func Define(name string) Builder[None, None] {
	if err := ValidateName(name); err != nil {
		panic(err)
	}
	return Builder[None, None]{name: name}
}

// WithContext declares a context that every instance must carry.
func WithContext[C, K any](b Builder[None, K]) Builder[C, K] {
	return declareContext[C](b, required)
}

// WithOptionalContext declares a typed context that instances may omit.
func WithOptionalContext[C, K any](b Builder[None, K]) Builder[C, K] {
	return declareContext[C](b, optional)
}

// WithCause declares a cause that every instance must carry. K is either a
// specific kind's TaggedError type or AnyError for "any tagged error".
func WithCause[K Tagged, C any](b Builder[C, None]) Builder[C, K] {
	return declareCause[K](b, required)
}

// WithOptionalCause declares a typed cause that instances may omit.
func WithOptionalCause[K Tagged, C any](b Builder[C, None]) Builder[C, K] {
	return declareCause[K](b, optional)
}

func declareContext[C, K any](b Builder[None, K], p presence) Builder[C, K] {
	mustBeDefined(b.name)
	checkDeclared[C](b.name, "context")
	return Builder[C, K]{name: b.name, context: p, cause: b.cause}
}

func declareCause[K, C any](b Builder[C, None], p presence) Builder[C, K] {
	mustBeDefined(b.name)
	checkDeclared[K](b.name, "cause")
	return Builder[C, K]{name: b.name, context: b.context, cause: p}
}

// mustBeDefined rejects zero-value builders that bypassed Define.
func mustBeDefined(name string) {
	if name == "" {
		panic(violation("builder must be created with Define"))
	}
}

func checkDeclared[T any](name, slot string) {
	t := reflect.TypeFor[T]()
	if t == reflect.TypeFor[None]() {
		panic(violation(slot+" shape must not be None", goerr.V("name", name)))
	}
	if err := checkShape(t); err != nil {
		panic(goerr.Wrap(err, slot+" shape is not JSON safe",
			goerr.V("name", name),
			goerr.V("slot", slot),
		))
	}
}

// WithMessage finalizes the declaration. rule computes the message of every
// instance that does not override it. The returned Kind exposes only
// constructors; to declare another shape start again from Define.
func (b Builder[C, K]) WithMessage(rule func(MessageInput[C, K]) string) *Kind[C, K] {
	mustBeDefined(b.name)
	if rule == nil {
		panic(violation("message rule must not be nil", goerr.V("name", b.name)))
	}
	return &Kind[C, K]{
		name:    b.name,
		errName: ErrName(b.name),
		context: b.context,
		cause:   b.cause,
		rule:    rule,

		deepContext: needsValueCheck(reflect.TypeFor[C]()),
		deepCause:   needsValueCheck(reflect.TypeFor[K]()),
	}
}

// Name returns the kind name being declared.
func (b Builder[C, K]) Name() string { return b.name }
