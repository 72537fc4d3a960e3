// Package analyze loads Go packages and classifies the fields of struct
// types into form binding kinds.
//
// It uses golang.org/x/tools/go/packages with go/types. For every exported
// struct it records which fields can be bound (and with which property
// constructor) and which cannot, with a reason.
//
// Key types:
//   - TypeID: package import path + type name
//   - StructInfo: the bindable and skipped fields of one struct
//   - FieldInfo: property name, Go field name, kind, nullability, enum
package analyze
