// Package resource defines the envelope every repository operation uses to
// report progress to its observers.
//
// A single logical operation emits zero or one Loading followed by exactly
// one terminal value (Success or Error), then the stream closes. Retries are
// never emitted automatically; retry is a fresh call.
package resource

// State identifies which variant of the envelope a value carries.
type State int

// Envelope states.
const (
	StateLoading State = iota
	StateSuccess
	StateError
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// Resource is a three-state tagged value: Loading carries nothing, Success
// carries a fully populated domain value, Error carries a display message
// plus the best available fallback (last-known-good cache, or an empty
// value for list-shaped results, never nil for those).
type Resource[T any] struct {
	State   State
	Data    T
	Message string
}

// Loading returns a Loading envelope.
func Loading[T any]() Resource[T] {
	return Resource[T]{State: StateLoading}
}

// Success returns a terminal Success envelope carrying data.
func Success[T any](data T) Resource[T] {
	return Resource[T]{State: StateSuccess, Data: data}
}

// Error returns a terminal Error envelope carrying a display message and
// the best available fallback data.
func Error[T any](message string, fallback T) Resource[T] {
	return Resource[T]{State: StateError, Data: fallback, Message: message}
}

// IsTerminal reports whether the envelope ends the stream.
func (r Resource[T]) IsTerminal() bool {
	return r.State == StateSuccess || r.State == StateError
}
