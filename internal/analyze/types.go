package analyze

import (
	"strings"

	"form-binder/property"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "form-binder/examples/customer"
	Name    string // e.g., "Customer"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// FieldInfo describes a bindable struct field.
type FieldInfo struct {
	Name     string        // Property name controls are matched against
	GoName   string        // Go field name
	Kind     property.Kind // Value kind
	Nullable bool          // Pointer field
	ReadOnly bool          // Tagged readonly; no setter is generated
	GoType   string        // Field type as written in its own package, e.g. "*time.Time"
	Convert  string        // Named basic type the value converts to on assignment
	Enum     *EnumInfo     // Members for KindEnum
	Index    int           // Field index in the struct
}

// Constructor returns the name of the property package constructor that
// declares this field, e.g. "NullableBool".
func (f *FieldInfo) Constructor() string {
	name := strings.TrimPrefix(f.Kind.String(), "Kind")
	if f.Nullable {
		return "Nullable" + name
	}

	return name
}

// ValueType returns the Go type of the descriptor's accessor value.
func (f *FieldInfo) ValueType() string {
	var base string

	switch f.Kind {
	case property.KindString:
		base = "string"
	case property.KindBool:
		base = "bool"
	case property.KindInt:
		base = "int"
	case property.KindInt64:
		base = "int64"
	case property.KindFloat64:
		base = "float64"
	case property.KindTime:
		base = "time.Time"
	case property.KindEnum:
		if f.Enum != nil {
			base = f.Enum.ID.Name
		}
	}

	if f.Nullable {
		return "*" + base
	}

	return base
}

// SkippedField is an exported field that cannot be bound.
type SkippedField struct {
	Name   string
	Reason string
}

// EnumInfo describes an int-backed named type with declared constants.
type EnumInfo struct {
	ID      TypeID
	Members []EnumMember
}

// EnumMember is one constant of an enum type, in declaration order.
type EnumMember struct {
	Name  string
	Value int64
}

// StructInfo describes a struct type and its bindable fields.
type StructInfo struct {
	ID      TypeID
	Fields  []FieldInfo
	Skipped []SkippedField
}

// Field returns the bindable field with the given property name.
func (s *StructInfo) Field(name string) *FieldInfo {
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return &s.Fields[i]
		}
	}

	return nil
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path    string   // Import path
	Name    string   // Package name
	Dir     string   // Directory of the package sources
	Structs []TypeID // Exported struct types, in source order
}

// Graph holds all analyzed structs from loaded packages.
type Graph struct {
	// Structs maps TypeID to StructInfo for all exported structs.
	Structs map[TypeID]*StructInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Structs:  make(map[TypeID]*StructInfo),
		Packages: make(map[string]*PackageInfo),
	}
}
