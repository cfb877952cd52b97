// jsonsafe.go — JSON-safety checks for declared shapes and produced values.
//
// Two levels:
//   - checkShape runs once per declared context/cause type, when the builder
//     is configured, and rejects Go types that cannot round-trip losslessly.
//   - CheckJSON inspects a concrete value (useful for `any`-typed payloads
//     such as AnyError.Context, which no type-level check can cover).
//
// time.Time is rejected at the shape level on purpose: dates travel as
// ISO 8601 strings so that every consumer decodes the same bytes the same way.
package tagged

import (
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/m-mizutani/goerr/v2"
)

var (
	timeType      = reflect.TypeFor[time.Time]()
	marshalerType = reflect.TypeFor[json.Marshaler]()
)

// checkShape reports whether values of t survive a JSON round trip.
func checkShape(t reflect.Type) error {
	return walkShape(t, "$", make(map[reflect.Type]struct{}))
}

func walkShape(t reflect.Type, path string, seen map[reflect.Type]struct{}) error {
	if _, ok := seen[t]; ok {
		return nil
	}
	seen[t] = struct{}{}

	if t == timeType {
		return shapeErr("time.Time is not allowed; encode dates as ISO 8601 strings", path, t)
	}
	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		(t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)) {
		// custom encoders own their round trip
		return nil
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return nil

	case reflect.Interface:
		return nil

	case reflect.Pointer, reflect.Slice, reflect.Array:
		return walkShape(t.Elem(), path+"[]", seen)

	case reflect.Map:
		switch t.Key().Kind() {
		case reflect.String,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		default:
			return shapeErr("map keys must be strings or integers", path, t)
		}
		return walkShape(t.Elem(), path+"{}", seen)

	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			fpath := path + "." + f.Name
			if !f.IsExported() && !f.Anonymous {
				return shapeErr("unexported fields are dropped by encoding/json", fpath, t)
			}
			if f.Tag.Get("json") == "-" {
				return shapeErr("fields excluded from JSON are lost", fpath, t)
			}
			if err := walkShape(f.Type, fpath, seen); err != nil {
				return err
			}
		}
		return nil
	}

	return shapeErr("kind "+t.Kind().String()+" has no JSON form", path, t)
}

// needsValueCheck reports whether a shape can hold values that do not
// round-trip even though the type does: anything behind an interface, and
// floats (NaN, ±Inf).
func needsValueCheck(t reflect.Type) bool {
	return valueDependent(t, make(map[reflect.Type]struct{}))
}

func valueDependent(t reflect.Type, seen map[reflect.Type]struct{}) bool {
	if _, ok := seen[t]; ok {
		return false
	}
	seen[t] = struct{}{}

	if t.Kind() != reflect.Pointer && t.Kind() != reflect.Interface &&
		(t.Implements(marshalerType) || reflect.PointerTo(t).Implements(marshalerType)) {
		return false
	}

	switch t.Kind() {
	case reflect.Interface, reflect.Float32, reflect.Float64:
		return true
	case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Map:
		return valueDependent(t.Elem(), seen)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if valueDependent(t.Field(i).Type, seen) {
				return true
			}
		}
	}
	return false
}

// encodesNull reports whether v is a nil map, slice, pointer or interface,
// which encoding/json writes as null.
func encodesNull(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// checkSlotValue vets a context or cause supplied at a call site. A present
// slot must not encode as null; deep runs the full round trip.
func checkSlotValue(v any, deep bool) error {
	if encodesNull(v) {
		return goerr.Wrap(ErrNotJSONSafe, "value encodes as null; leave the slot out instead",
			goerr.V("type", fmt.Sprintf("%T", v)),
		)
	}
	if deep {
		return CheckJSON(v)
	}
	return nil
}

func shapeErr(msg, path string, t reflect.Type) error {
	return goerr.Wrap(ErrNotJSONSafe, msg,
		goerr.V("path", path),
		goerr.V("type", t.String()),
	)
}

// CheckJSON reports whether v decodes back from its JSON encoding into a
// deep-equal value of the same type. A nil v is trivially safe.
//
// Numbers stored behind `any` must already be float64, since that is what
// encoding/json produces for them.
func CheckJSON(v any) error {
	if v == nil {
		return nil
	}
	typeName := fmt.Sprintf("%T", v)

	raw, err := json.Marshal(v)
	if err != nil {
		return goerr.Wrap(ErrNotJSONSafe, "failed to encode",
			goerr.V("type", typeName),
			goerr.V("reason", err.Error()),
		)
	}

	out := reflect.New(reflect.TypeOf(v))
	if err := json.Unmarshal(raw, out.Interface()); err != nil {
		return goerr.Wrap(ErrNotJSONSafe, "failed to decode own encoding",
			goerr.V("type", typeName),
			goerr.V("reason", err.Error()),
		)
	}

	got := out.Elem().Interface()
	if !reflect.DeepEqual(v, got) {
		return goerr.Wrap(ErrNotJSONSafe, "value changed across JSON round trip",
			goerr.V("type", typeName),
			goerr.V("json", string(raw)),
			goerr.V("diff", cmp.Diff(v, got, cmp.Exporter(func(reflect.Type) bool { return true }))),
		)
	}
	return nil
}

// Erase converts any tagged value into the broad AnyError shape. The context
// (and every nested context) becomes JSON-native data.
func Erase(t Tagged) (AnyError, error) {
	if t == nil {
		return AnyError{}, goerr.Wrap(ErrContractViolation, "cannot erase a nil tagged error")
	}
	if a, ok := t.(AnyError); ok {
		return a, nil
	}

	raw, err := json.Marshal(t)
	if err != nil {
		return AnyError{}, goerr.Wrap(ErrNotJSONSafe, "failed to encode tagged error",
			goerr.V("name", t.ErrorName()),
			goerr.V("reason", err.Error()),
		)
	}
	var out AnyError
	if err := json.Unmarshal(raw, &out); err != nil {
		return AnyError{}, goerr.Wrap(ErrNotJSONSafe, "encoding is not a tagged error",
			goerr.V("name", t.ErrorName()),
			goerr.V("json", string(raw)),
		)
	}
	return out, nil
}
