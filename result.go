// result.go — the two-case Result container.
//
// A Result is either Ok (carries data, no error) or Err (carries an error, no
// data). The two cases are mutually exclusive by construction and a Result is
// never mutated after it is built.
//
// Wire shape:
//
//	{"data": <T>,  "error": null}  // Ok
//	{"data": null, "error": <E>}   // Err
package tagged

import (
	"bytes"
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// Result holds either a success value of type T or a failure of type E.
type Result[T, E any] struct {
	data T
	err  E
	ok   bool
}

// Ok returns a successful Result carrying v.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{data: v, ok: true}
}

// Err returns a failed Result carrying e.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether r is the success case.
func (r Result[T, E]) IsOk() bool { return r.ok }

// IsErr reports whether r is the failure case.
func (r Result[T, E]) IsErr() bool { return !r.ok }

// Value returns the success value and true, or the zero T and false.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.data, true
}

// Failure returns the error and true, or the zero E and false.
func (r Result[T, E]) Failure() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Unpack returns both slots; exactly one of them is meaningful.
func (r Result[T, E]) Unpack() (T, E) { return r.data, r.err }

// Recast gives a data-less failure a concrete success type. Kind.Err returns
// Result[None, E]; Recast lets it flow into a function returning Result[T, E].
// An Ok input yields Ok with the zero T.
func Recast[T, E any](r Result[None, E]) Result[T, E] {
	if r.ok {
		var zero T
		return Ok[T, E](zero)
	}
	return Err[T](r.err)
}

// FromPair converts a conventional (value, error) pair.
//
// The error slot is the error interface, so the JSON form of the Result can
// be encoded but not decoded. For values that cross the wire, use Try with
// Summarize (or a tagged mapping) to get a concrete error type.
func FromPair[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T](err)
	}
	return Ok[T, error](v)
}

// ToPair converts r back into a conventional (value, error) pair. The error is
// an untyped nil on success.
func ToPair[T any, E error](r Result[T, E]) (T, error) {
	if r.ok {
		return r.data, nil
	}
	var zero T
	return zero, r.err
}

type resultWire struct {
	Data  json.RawMessage `json:"data"`
	Error json.RawMessage `json:"error"`
}

var jsonNull = []byte("null")

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), jsonNull)
}

func (r Result[T, E]) MarshalJSON() ([]byte, error) {
	w := resultWire{Data: jsonNull, Error: jsonNull}
	var err error
	if r.ok {
		w.Data, err = json.Marshal(r.data)
	} else {
		w.Error, err = json.Marshal(r.err)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode result", goerr.V("ok", r.ok))
	}
	if !r.ok && isNull(w.Error) {
		// would decode as success
		return nil, goerr.Wrap(ErrNotJSONSafe, "failed result has an error that encodes as null")
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes either wire case. A non-null "error" selects the
// failure case; both slots non-null is rejected.
func (r *Result[T, E]) UnmarshalJSON(b []byte) error {
	var w resultWire
	if err := json.Unmarshal(b, &w); err != nil {
		return goerr.Wrap(err, "failed to decode result")
	}

	switch {
	case !isNull(w.Error) && !isNull(w.Data):
		return goerr.New("result carries both data and error", goerr.V("json", string(b)))

	case !isNull(w.Error):
		var e E
		if err := json.Unmarshal(w.Error, &e); err != nil {
			return goerr.Wrap(err, "failed to decode result error")
		}
		*r = Err[T](e)

	default:
		var v T
		if !isNull(w.Data) {
			if err := json.Unmarshal(w.Data, &v); err != nil {
				return goerr.Wrap(err, "failed to decode result data")
			}
		}
		*r = Ok[T, E](v)
	}
	return nil
}
