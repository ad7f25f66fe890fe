package engine

import "fmt"

// BindingErrorKind classifies why a Binding failed to produce a fresh value.
type BindingErrorKind int

const (
	KindNone BindingErrorKind = iota
	KindBindingLoop
	KindEvaluationError
	KindUnknown
)

func (k BindingErrorKind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindBindingLoop:
		return "BindingLoop"
	case KindEvaluationError:
		return "EvaluationError"
	default:
		return "Unknown"
	}
}

// BindingError is attached to a Binding, never to the Cell it targets.
// It is sticky: it only clears on the binding's next successful
// evaluation, and it never propagates to dependents.
type BindingError struct {
	Kind        BindingErrorKind
	Description string

	// Cause is the evaluator's own error for a KindEvaluationError, wrapped
	// rather than flattened to a string, the way pkg/flimsy/api.go wraps
	// its own errors with %w. nil for KindBindingLoop, which the engine
	// itself detects and so has no underlying error to carry.
	Cause error
}

func (e *BindingError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Description)
}

// Unwrap exposes Cause to errors.Is/errors.As.
func (e *BindingError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}
