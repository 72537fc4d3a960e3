// Package manifest loads the YAML configuration of the formbind
// generator: which struct types of which packages get BindingFields
// methods, and how the generated files are named.
//
//	version: "1"
//	file_name: formbind_gen.go
//	packages:
//	  - path: example.com/app/models
//	    types: [Customer, Order]
package manifest
