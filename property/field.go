package property

import "time"

// Field describes one public property of a bindable type: its declared
// name and type plus accessors. The zero Field is not usable; build
// fields with the typed constructors below.
type Field struct {
	Name string
	Type Type

	get func(obj any) any
	set func(obj any, v any) error
}

// Get returns the current value of the property on obj.
// It returns nil when obj is not of the type the field was built for.
func (f Field) Get(obj any) any {
	if f.get == nil {
		return nil
	}

	return f.get(obj)
}

// Settable reports whether the property has a setter.
func (f Field) Settable() bool {
	return f.set != nil
}

// Set assigns v to the property on obj.
func (f Field) Set(obj any, v any) error {
	if f.set == nil {
		return &AssignmentError{Field: f.Name, Type: f.Type, Value: v, Err: ErrReadOnly}
	}

	return f.set(obj, v)
}

func scalar[T, V any](name string, typ Type, get func(*T) V, set func(*T, V)) Field {
	f := Field{Name: name, Type: typ}

	f.get = func(obj any) any {
		o, ok := obj.(*T)
		if !ok || o == nil {
			return nil
		}

		return get(o)
	}

	if set == nil {
		return f
	}

	f.set = func(obj any, v any) error {
		o, ok := obj.(*T)
		if !ok || o == nil {
			return &AssignmentError{Field: name, Type: typ, Value: v, Err: ErrWrongObject}
		}

		x, ok := v.(V)
		if !ok {
			return &AssignmentError{Field: name, Type: typ, Value: v, Err: ErrTypeMismatch}
		}

		set(o, x)

		return nil
	}

	return f
}

func nullable[T, V any](name string, typ Type, get func(*T) *V, set func(*T, *V)) Field {
	typ.Nullable = true
	f := Field{Name: name, Type: typ}

	f.get = func(obj any) any {
		o, ok := obj.(*T)
		if !ok || o == nil {
			return nil
		}

		p := get(o)
		if p == nil {
			return nil
		}

		return *p
	}

	if set == nil {
		return f
	}

	f.set = func(obj any, v any) error {
		o, ok := obj.(*T)
		if !ok || o == nil {
			return &AssignmentError{Field: name, Type: typ, Value: v, Err: ErrWrongObject}
		}

		if v == nil {
			set(o, nil)
			return nil
		}

		x, ok := v.(V)
		if !ok {
			return &AssignmentError{Field: name, Type: typ, Value: v, Err: ErrTypeMismatch}
		}

		set(o, &x)

		return nil
	}

	return f
}

// String declares a string property. A nil set makes it read-only.
func String[T any](name string, get func(*T) string, set func(*T, string)) Field {
	return scalar(name, Type{Kind: KindString}, get, set)
}

// Bool declares a bool property.
func Bool[T any](name string, get func(*T) bool, set func(*T, bool)) Field {
	return scalar(name, Type{Kind: KindBool}, get, set)
}

// Int declares an int property.
func Int[T any](name string, get func(*T) int, set func(*T, int)) Field {
	return scalar(name, Type{Kind: KindInt}, get, set)
}

// Int64 declares an int64 property.
func Int64[T any](name string, get func(*T) int64, set func(*T, int64)) Field {
	return scalar(name, Type{Kind: KindInt64}, get, set)
}

// Float64 declares a float64 property.
func Float64[T any](name string, get func(*T) float64, set func(*T, float64)) Field {
	return scalar(name, Type{Kind: KindFloat64}, get, set)
}

// Time declares a time.Time property.
func Time[T any](name string, get func(*T) time.Time, set func(*T, time.Time)) Field {
	return scalar(name, Type{Kind: KindTime}, get, set)
}

// Enum declares a property of an int-backed enumeration. The property's
// value representation is the member's int value.
func Enum[T any, E ~int](name string, enum *EnumType, get func(*T) E, set func(*T, E)) Field {
	var setInt func(*T, int)
	if set != nil {
		setInt = func(o *T, v int) { set(o, E(v)) }
	}

	return scalar(name, Type{Kind: KindEnum, Enum: enum}, func(o *T) int { return int(get(o)) }, setInt)
}

// NullableString declares a *string property.
func NullableString[T any](name string, get func(*T) *string, set func(*T, *string)) Field {
	return nullable(name, Type{Kind: KindString}, get, set)
}

// NullableBool declares a *bool property.
func NullableBool[T any](name string, get func(*T) *bool, set func(*T, *bool)) Field {
	return nullable(name, Type{Kind: KindBool}, get, set)
}

// NullableInt declares a *int property.
func NullableInt[T any](name string, get func(*T) *int, set func(*T, *int)) Field {
	return nullable(name, Type{Kind: KindInt}, get, set)
}

// NullableInt64 declares a *int64 property.
func NullableInt64[T any](name string, get func(*T) *int64, set func(*T, *int64)) Field {
	return nullable(name, Type{Kind: KindInt64}, get, set)
}

// NullableFloat64 declares a *float64 property.
func NullableFloat64[T any](name string, get func(*T) *float64, set func(*T, *float64)) Field {
	return nullable(name, Type{Kind: KindFloat64}, get, set)
}

// NullableTime declares a *time.Time property.
func NullableTime[T any](name string, get func(*T) *time.Time, set func(*T, *time.Time)) Field {
	return nullable(name, Type{Kind: KindTime}, get, set)
}
