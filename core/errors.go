package core

import "fmt"

// ErrorKind classifies a FormatError.
type ErrorKind int

const (
	// UnbalancedMarkers is a user-facing validation failure.
	UnbalancedMarkers ErrorKind = iota + 1
	// InternalProcessingError is any unexpected failure inside the pipeline.
	InternalProcessingError
)

func (k ErrorKind) String() string {
	switch k {
	case UnbalancedMarkers:
		return "UnbalancedMarkers"
	case InternalProcessingError:
		return "InternalProcessingError"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// FormatError is the only error type returned by the formatter.
// Message is safe to show to the caller; Err carries internal detail
// for logs and is never serialized.
type FormatError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Sentinels for errors.Is.
var (
	ErrUnbalancedMarkers = &FormatError{Kind: UnbalancedMarkers, Message: "Unmatched formatting markers found"}
	ErrInternal          = &FormatError{Kind: InternalProcessingError, Message: "An error occurred while formatting the text"}
)

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FormatError) Unwrap() error { return e.Err }

// Is reports whether target is a FormatError of the same kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}

// UserMessage returns the message that may be shown to a caller.
func (e *FormatError) UserMessage() string {
	return e.Message
}

// Unbalanced builds an UnbalancedMarkers error with the offending counts.
func Unbalanced(bold, italic int) *FormatError {
	return &FormatError{
		Kind:    UnbalancedMarkers,
		Message: ErrUnbalancedMarkers.Message,
		Err:     fmt.Errorf("bold markers: %d, italic markers: %d", bold, italic),
	}
}

// Internal wraps an unexpected failure. The cause is kept for logging only.
func Internal(cause error) *FormatError {
	return &FormatError{
		Kind:    InternalProcessingError,
		Message: ErrInternal.Message,
		Err:     cause,
	}
}
