package gen

import "text/template"

// templateData holds all data needed for one generated file.
type templateData struct {
	Header      string
	PackageName string
	Property    string
	ImportTime  bool
	Enums       []enumData
	Types       []typeData
}

// enumData is an EnumType variable.
type enumData struct {
	Name    string
	Var     string
	Members []string
}

// typeData is the descriptor list and method of one struct.
type typeData struct {
	Name   string
	Var    string
	Fields []fieldData
}

// fieldData is one constructor call in a descriptor list.
type fieldData struct {
	Constructor string
	TypeArgs    string
	Name        string
	Owner       string
	EnumVar     string
	ValueType   string
	Getter      string
	Setter      string // empty for read-only fields
}

var fileTemplate = template.Must(
	template.New("bindings").
		Parse(`{{.Header}}

package {{.PackageName}}

import (
{{- if .ImportTime}}
	"time"
{{end}}
	"{{.Property}}"
)
{{range .Enums}}
var {{.Var}} = property.NewEnumType({{printf "%q" .Name}},
{{- range .Members}}
	property.EnumMember{Name: {{printf "%q" .}}, Value: int({{.}})},
{{- end}}
)
{{end}}
{{- range .Types}}
var {{.Var}} = []property.Field{
{{- range .Fields}}
	property.{{.Constructor}}[{{.TypeArgs}}]({{printf "%q" .Name}},{{if .EnumVar}} {{.EnumVar}},{{end}}
		func(o *{{.Owner}}) {{.ValueType}} { return {{.Getter}} },
		{{if .Setter}}func(o *{{.Owner}}, v {{.ValueType}}) { {{.Setter}} }{{else}}nil{{end}}),
{{- end}}
}

// BindingFields returns the form binding descriptors of {{.Name}}.
func (*{{.Name}}) BindingFields() []property.Field { return {{.Var}} }
{{end}}`))
