// typed_field.go — typed extraction of tagged values from error chains.
//
// As and ContextOf recover a kind's concrete TaggedError (or just its
// context) from any error, however it was wrapped:
//
//	if ctx, ok := tagged.ContextOf[FileContext, tagged.None](err); ok {
//		log.Println("failed path", ctx.Path)
//	}
//
// Caveats:
//   - Matching is by Go type, not by name: two kinds sharing a shape are both
//     found. Combine with Kind.Is when the name matters.
//   - Values that went through Erase or JSON decoding into AnyError are not
//     matched; decode into the concrete TaggedError type instead.
package tagged

// As returns the first TaggedError[C, K] (value or pointer form) in err's chain.
func As[C, K any](err error) (TaggedError[C, K], bool) {
	var out TaggedError[C, K]
	found := false
	Walk(err, func(e error) bool {
		switch v := e.(type) {
		case TaggedError[C, K]:
			out, found = v, true
		case *TaggedError[C, K]:
			if v != nil {
				out, found = *v, true
			}
		}
		return !found
	})
	return out, found
}

// ContextOf returns the context of the first TaggedError[C, K] in err's chain
// that carries one.
func ContextOf[C, K any](err error) (C, bool) {
	var out C
	found := false
	Walk(err, func(e error) bool {
		var te TaggedError[C, K]
		switch v := e.(type) {
		case TaggedError[C, K]:
			te = v
		case *TaggedError[C, K]:
			if v == nil {
				return true
			}
			te = *v
		default:
			return true
		}
		if te.Context != nil {
			out, found = *te.Context, true
		}
		return !found
	})
	return out, found
}

// MustContextOf is ContextOf for tests and invariants: it panics with
// ErrContractViolation when no matching context exists.
func MustContextOf[C, K any](err error) C {
	c, ok := ContextOf[C, K](err)
	if !ok {
		panic(violation("no tagged error with the requested context in chain"))
	}
	return c
}
