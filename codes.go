// codes.go — naming conventions and sentinel programmer errors for xgx-tagged.
//
// Conventions (enforced by Define):
//   - Every error kind is named in PascalCase and ends with ErrorSuffix.
//   - The Result-wrapped constructor is named by swapping ErrorSuffix for
//     ErrSuffix ("FileError" → "FileErr").
//
// Sentinels below describe mistakes in how the package is used, never domain
// failures. They surface as panics (or returned errors from the fallible
// helpers) wrapped by goerr so callers can recover and match with errors.Is.
package tagged

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// ErrorSuffix terminates every error kind name.
	ErrorSuffix = "Error"
	// ErrSuffix replaces ErrorSuffix in the name of the Result-wrapped constructor.
	ErrSuffix = "Err"
)

var (
	// ErrInvalidName reports a kind name that does not follow the naming convention.
	ErrInvalidName = errors.New("invalid tagged error name")

	// ErrContractViolation reports a constructor or builder call that breaks
	// the declared shape of an error kind (missing required context, cause
	// supplied to a kind that declares none, None as a shape, ...).
	ErrContractViolation = errors.New("tagged error contract violation")

	// ErrNotJSONSafe reports a value or declared shape that cannot survive a
	// lossless JSON round trip.
	ErrNotJSONSafe = errors.New("value is not JSON safe")
)

// ErrName returns the companion name for a kind: the trailing ErrorSuffix is
// replaced by ErrSuffix. Names without the suffix are returned unchanged.
func ErrName(name string) string {
	base, ok := strings.CutSuffix(name, ErrorSuffix)
	if !ok {
		return name
	}
	return base + ErrSuffix
}

// ValidateName reports whether name can identify an error kind.
func ValidateName(name string) error {
	if !strings.HasSuffix(name, ErrorSuffix) {
		return goerr.Wrap(ErrInvalidName, "name must end with "+ErrorSuffix, goerr.V("name", name))
	}
	if name == ErrorSuffix {
		return goerr.Wrap(ErrInvalidName, "name must have a prefix before "+ErrorSuffix, goerr.V("name", name))
	}
	if r, _ := utf8.DecodeRuneInString(name); !unicode.IsUpper(r) {
		return goerr.Wrap(ErrInvalidName, "name must start with an upper-case letter", goerr.V("name", name))
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return goerr.Wrap(ErrInvalidName, "name must not contain whitespace", goerr.V("name", name))
	}
	return nil
}

// violation builds the panic value for a contract violation.
func violation(msg string, opts ...goerr.Option) error {
	return goerr.Wrap(ErrContractViolation, msg, opts...)
}
