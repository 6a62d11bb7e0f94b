package models

// Result is the envelope every adapter operation returns.
// Err keeps the underlying cause for status mapping and is never serialized.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Err     error  `json:"-"`
}

// Ok wraps data in a successful envelope
func Ok[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

// Fail builds a failed envelope with a display message
func Fail[T any](message string, err error) Result[T] {
	return Result[T]{Success: false, Error: message, Err: err}
}
