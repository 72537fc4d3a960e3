// Package convert shapes property values for display and coerces raw
// control values back into property values.
package convert

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"form-binder/property"
)

// DefaultLocale is the locale of the binder's default converter.
var DefaultLocale = language.AmericanEnglish

// Converter converts between property values and control values. Its
// locale selects the short date format used in both directions.
type Converter struct {
	locale language.Tag
	layout string
}

// New returns a Converter for locale.
func New(locale language.Tag) *Converter {
	return &Converter{locale: locale, layout: ShortDateLayout(locale)}
}

// Locale returns the converter's locale.
func (c *Converter) Locale() language.Tag {
	return c.locale
}

// DateLayout returns the short date layout in use.
func (c *Converter) DateLayout() string {
	return c.layout
}

// Display reads f from obj and shapes it for a control: enums become their
// underlying int and dates their short date string. A nil nullable value
// stays nil; every other value is returned unchanged.
func (c *Converter) Display(f property.Field, obj any) any {
	v := f.Get(obj)

	switch f.Type.Kind {
	case property.KindEnum:
		if n, ok := v.(int); ok {
			return n
		}
	case property.KindTime:
		if t, ok := v.(time.Time); ok {
			return t.Format(c.layout)
		}
	}

	return v
}

// Coerce converts a raw control value into the representation of typ.
//
// A raw value that prints as the empty string yields nil for nullable
// types and "" otherwise; the caller's assignment then decides whether ""
// is acceptable. Nullable bools accept "1" and "0"; "-1" means nil, and
// with allowNullable any other string means nil as well.
func (c *Converter) Coerce(raw any, typ property.Type, allowNullable bool) (any, error) {
	s := stringify(raw)
	if s == "" {
		if typ.Nullable {
			return nil, nil
		}

		return "", nil
	}

	if typ.Kind == property.KindEnum {
		if typ.Enum == nil {
			return nil, &ParseError{Value: s, Type: typ, Err: ErrUnsupportedKind}
		}

		v, err := typ.Enum.Parse(s)
		if err != nil {
			return nil, &ParseError{Value: s, Type: typ, Err: err}
		}

		return v, nil
	}

	if typ.Nullable && typ.Kind == property.KindBool {
		switch s {
		case "1":
			return true, nil
		case "0":
			return false, nil
		case "-1":
			return nil, nil
		}

		if allowNullable {
			return nil, nil
		}
	}

	return c.convert(raw, s, typ)
}

func (c *Converter) convert(raw any, s string, typ property.Type) (any, error) {
	var (
		v   any
		err error
	)

	switch typ.Kind {
	case property.KindString:
		return s, nil
	case property.KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}

		v, err = strconv.ParseBool(strings.TrimSpace(s))
	case property.KindInt:
		if n, ok := raw.(int); ok {
			return n, nil
		}

		v, err = strconv.Atoi(strings.TrimSpace(s))
	case property.KindInt64:
		if n, ok := raw.(int64); ok {
			return n, nil
		}

		v, err = strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	case property.KindFloat64:
		if f, ok := raw.(float64); ok {
			return f, nil
		}

		v, err = strconv.ParseFloat(strings.TrimSpace(s), 64)
	case property.KindTime:
		if t, ok := raw.(time.Time); ok {
			return t, nil
		}

		v, err = c.parseTime(strings.TrimSpace(s))
	default:
		err = ErrUnsupportedKind
	}

	if err != nil {
		return nil, &ConversionError{Value: s, Type: typ, Err: err}
	}

	return v, nil
}

// parseTime accepts the locale's short date, ISO dates and RFC 3339.
func (c *Converter) parseTime(s string) (time.Time, error) {
	var firstErr error

	for _, layout := range []string{c.layout, isoDate, time.RFC3339} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return time.Time{}, firstErr
}

func stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
