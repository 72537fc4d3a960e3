package convert

import (
	"errors"
	"fmt"

	"form-binder/property"
)

// ErrUnsupportedKind is reported when coercing into a kind without a parser.
var ErrUnsupportedKind = errors.New("unsupported property kind")

// ParseError reports a string that is not a member of the target enumeration.
type ParseError struct {
	Value string
	Type  property.Type
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q as %s: %v", e.Value, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConversionError reports a string that cannot be converted to the target type.
type ConversionError struct {
	Value string
	Type  property.Type
	Err   error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %q to %s: %v", e.Value, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
