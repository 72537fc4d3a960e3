package property

import (
	"errors"
	"fmt"
)

var (
	// ErrReadOnly is reported when assigning to a field without a setter.
	ErrReadOnly = errors.New("property is read-only")
	// ErrTypeMismatch is reported when a value does not have the field's representation.
	ErrTypeMismatch = errors.New("value type does not match property type")
	// ErrWrongObject is reported when a descriptor is used with an object of another type.
	ErrWrongObject = errors.New("object does not own this property")
)

// AssignmentError reports a value the property setter rejected.
type AssignmentError struct {
	Field string
	Type  Type
	Value any
	Err   error
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("cannot assign %#v (%T) to %s %s: %v", e.Value, e.Value, e.Field, e.Type, e.Err)
}

func (e *AssignmentError) Unwrap() error {
	return e.Err
}
