package commands

// Field is an optional patch value that distinguishes "absent from the
// request" from "explicitly set". An unset Field leaves the current value
// untouched; a set Field applies, even when the wrapped value is nil.
type Field[T any] struct {
	set   bool
	value T
}

// NewField creates a set Field carrying value.
func NewField[T any](value T) Field[T] {
	return Field[T]{set: true, value: value}
}

// IsSet reports whether the field was supplied.
func (f Field[T]) IsSet() bool {
	return f.set
}

// Value returns the wrapped value. The zero value is returned when the
// field is not set.
func (f Field[T]) Value() T {
	return f.value
}
