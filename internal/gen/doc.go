// Package gen generates BindingFields descriptor lists for analyzed
// struct types.
//
// Generation uses text/template + go/format. One file is produced per
// package; it declares an EnumType variable for every enum used by a
// bound field, a []property.Field variable per struct and a
// BindingFields method returning it.
//
// Field mapping:
//   - basic kinds and time.Time: String, Bool, Int, Int64, Float64, Time
//   - pointers: the Nullable constructor of the element kind
//   - named basic types: the basic constructor with conversions
//   - int types with constants: Enum
//   - readonly fields: nil setter
package gen
