// error.go — tagged error values for xgx-tagged.
//
// Tenets:
//   - Data, not control flow: tagged errors are returned, never panicked.
//   - Interop-first: every value implements error and unwraps to its cause,
//     so errors.Is/As traverse tagged chains.
//   - Wire-safe: a produced value survives json.Marshal/json.Unmarshal
//     unchanged, including nested causes.
package tagged

// None marks a shape that was never declared. A TaggedError whose context
// type is None never carries a context, and likewise for the cause.
type None struct{}

// Tagged is the minimal contract shared by every tagged error value.
//
// It is the constraint for declared causes: a kind may be caused by one
// specific kind (TaggedError[C, K]) or, deliberately broad, by any tagged
// error (AnyError).
type Tagged interface {
	error

	// ErrorName returns the discriminant, e.g. "FileError".
	ErrorName() string

	// ErrorMessage returns the message without the name prefix.
	ErrorMessage() string
}

// TaggedError is the value produced by a Kind.
//
// Context and Cause are nil when absent; the JSON form then omits the key
// entirely rather than encoding null.
type TaggedError[C, K any] struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Context *C     `json:"context,omitempty"`
	Cause   *K     `json:"cause,omitempty"`
}

func (e TaggedError[C, K]) Error() string        { return e.Name + ": " + e.Message }
func (e TaggedError[C, K]) ErrorName() string    { return e.Name }
func (e TaggedError[C, K]) ErrorMessage() string { return e.Message }

// HasContext reports whether the value carries a context.
func (e TaggedError[C, K]) HasContext() bool { return e.Context != nil }

// HasCause reports whether the value carries a cause.
func (e TaggedError[C, K]) HasCause() bool { return e.Cause != nil }

// Unwrap returns the cause when it is itself an error, so errors.Is/As walk
// the tagged chain. It returns nil when there is no cause.
func (e TaggedError[C, K]) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	if err, ok := any(*e.Cause).(error); ok {
		return err
	}
	return nil
}

// AnyError is the broad tagged error shape: any kind, with its context held
// as JSON-native data (map[string]any, []any, string, float64, bool, nil).
//
// Use it as the cause type when a kind may follow from any other failure.
// Convert a specific value with Erase, or a foreign error with Summarize.
type AnyError struct {
	Name    string    `json:"name"`
	Message string    `json:"message"`
	Context any       `json:"context,omitempty"`
	Cause   *AnyError `json:"cause,omitempty"`
}

func (e AnyError) Error() string        { return e.Name + ": " + e.Message }
func (e AnyError) ErrorName() string    { return e.Name }
func (e AnyError) ErrorMessage() string { return e.Message }

func (e AnyError) Unwrap() error {
	if e.Cause == nil {
		return nil
	}
	return *e.Cause
}

var (
	_ Tagged = TaggedError[None, None]{}
	_ Tagged = AnyError{}
)
