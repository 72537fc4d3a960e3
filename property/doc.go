// Package property describes the bindable properties of Go types.
//
// A bindable type exposes an explicit, ordered list of field descriptors
// instead of being walked with reflection. The lists are normally written
// by the formbind generator, but they are plain Go and can be declared by
// hand:
//
//	var personFields = []property.Field{
//		property.String("Name", func(p *Person) string { return p.Name }, func(p *Person, v string) { p.Name = v }),
//		property.NullableTime("Born", func(p *Person) *time.Time { return p.Born }, nil),
//	}
//
// Values cross the descriptor boundary type-erased:
//   - nullable getters return nil or the unwrapped value
//   - enum getters return the underlying int
//   - setters accept the same representation and report *AssignmentError
//     when handed anything else
package property
