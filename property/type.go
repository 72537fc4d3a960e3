package property

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the value kind a property is declared with.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindString
	KindBool
	KindInt
	KindInt64
	KindFloat64
	KindTime
	KindEnum
)

// Type is the declared type of a property.
type Type struct {
	Kind Kind
	// Nullable marks a pointer-backed property whose value may be nil.
	Nullable bool
	// Enum lists the members of a KindEnum property.
	Enum *EnumType
}

// String returns a Go-like spelling of the type, e.g. "*bool" or "enum Status".
func (t Type) String() string {
	var name string

	switch t.Kind {
	case KindString:
		name = "string"
	case KindBool:
		name = "bool"
	case KindInt:
		name = "int"
	case KindInt64:
		name = "int64"
	case KindFloat64:
		name = "float64"
	case KindTime:
		name = "time.Time"
	case KindEnum:
		name = "enum"
		if t.Enum != nil {
			name += " " + t.Enum.Name
		}
	default:
		name = t.Kind.String()
	}

	if t.Nullable {
		return "*" + name
	}

	return name
}
