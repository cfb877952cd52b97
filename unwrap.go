// unwrap.go — traversal of tagged cause chains and mixed error graphs.
//
// Tagged errors unwrap to their cause, so a chain built from kinds is an
// ordinary Go error chain. These helpers walk it while also following
// Unwrap() []error (errors.Join and multi-%w) for foreign wrappers.
//
// Cycle safety: tagged values are not hashable in general (an AnyError may
// hold a map in its context), so only pointer-typed dynamics are tracked by
// identity. Everything else is bounded by maxWalkNodes.
package tagged

import (
	"reflect"
)

type singleUnwrapper interface{ Unwrap() error }
type multiUnwrapper interface{ Unwrap() []error }

const maxWalkNodes = 1 << 12

// markSeen records pointer identities and reports whether err is new.
func markSeen(err error, seen map[uintptr]struct{}) bool {
	rv := reflect.ValueOf(err)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return true
	}
	id := rv.Pointer()
	if _, dup := seen[id]; dup {
		return false
	}
	seen[id] = struct{}{}
	return true
}

// Walk visits err and everything it wraps in pre-order, left to right. It
// stops as soon as visit returns false. A nil err is a no-op.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}
	seen := make(map[uintptr]struct{}, 8)
	stack := []error{err}
	_ = markSeen(err, seen)

	for n := 0; len(stack) > 0 && n < maxWalkNodes; n++ {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !visit(cur) {
			return
		}

		switch u := cur.(type) {
		case multiUnwrapper:
			kids := u.Unwrap()
			for i := len(kids) - 1; i >= 0; i-- {
				if kids[i] != nil && markSeen(kids[i], seen) {
					stack = append(stack, kids[i])
				}
			}
		case singleUnwrapper:
			if next := u.Unwrap(); next != nil && markSeen(next, seen) {
				stack = append(stack, next)
			}
		}
	}
}

// Chain returns the tagged errors along err's graph in pre-order.
func Chain(err error) []Tagged {
	var out []Tagged
	Walk(err, func(e error) bool {
		if t, ok := e.(Tagged); ok {
			out = append(out, t)
		}
		return true
	})
	return out
}

// Root returns the deepest error along the first path of err's graph: the
// original trigger of a cause chain. Root(nil) is nil.
func Root(err error) error {
	var last error
	Walk(err, func(e error) bool {
		last = e
		switch u := e.(type) {
		case multiUnwrapper:
			return len(u.Unwrap()) > 0
		case singleUnwrapper:
			return u.Unwrap() != nil
		}
		return false
	})
	return last
}
