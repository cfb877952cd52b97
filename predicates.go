// predicates.go — discriminant queries over error chains.
//
// The name is the discriminant of a tagged error. These helpers answer
// "which kind is this?" for any error, including chains that mix tagged
// values with foreign wrappers (fmt.Errorf %w, errors.Join).
package tagged

// NameOf returns the name of the first tagged error in err's chain, or "".
func NameOf(err error) string {
	var name string
	Walk(err, func(e error) bool {
		if t, ok := e.(Tagged); ok {
			name = t.ErrorName()
			return false
		}
		return true
	})
	return name
}

// HasName reports whether any tagged error in err's chain is named name.
func HasName(err error, name string) bool {
	if err == nil || name == "" {
		return false
	}
	found := false
	Walk(err, func(e error) bool {
		if t, ok := e.(Tagged); ok && t.ErrorName() == name {
			found = true
			return false
		}
		return true
	})
	return found
}

// IsTagged reports whether err's chain contains a tagged error at all.
func IsTagged(err error) bool {
	return NameOf(err) != ""
}
