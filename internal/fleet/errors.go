package fleet

import "fmt"

// TransportError reports a request that never produced a usable response:
// the backend was unreachable, the connection dropped, or the request
// could not be built.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// BackendError carries the diagnostic string the backend attached to a
// rejected request. Message falls back to a generic status description
// when the body carried no structured error.
type BackendError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *BackendError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	return fmt.Sprintf("%s: backend returned status %d", e.Op, e.StatusCode)
}

// DecodeError reports a 2xx response whose body could not be decoded.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: decode response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// ValidationError reports a payload rejected client-side before any
// request was issued.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("field %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("field %s is required", e.Field)
}
