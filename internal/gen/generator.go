package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"slices"
	"strings"
	"unicode"

	"form-binder/internal/analyze"
	"form-binder/property"
)

// DefaultFileName is the name of the generated file in each package.
const DefaultFileName = "formbind_gen.go"

// DefaultHeader is the first line of every generated file.
const DefaultHeader = "// Code generated by formbind. DO NOT EDIT."

// DefaultPropertyImport is the import path of the property package.
const DefaultPropertyImport = "form-binder/property"

// Config holds configuration for code generation.
type Config struct {
	// FileName is the name of the generated file.
	FileName string
	// Header is written above the package clause.
	Header string
	// PropertyImport is the import path of the property package.
	PropertyImport string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		FileName:       DefaultFileName,
		Header:         DefaultHeader,
		PropertyImport: DefaultPropertyImport,
	}
}

// Generator generates descriptor files from analyzed structs.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator. Empty config values are replaced
// by their defaults.
func NewGenerator(config Config) *Generator {
	def := DefaultConfig()

	if config.FileName == "" {
		config.FileName = def.FileName
	}

	if config.Header == "" {
		config.Header = def.Header
	}

	if config.PropertyImport == "" {
		config.PropertyImport = def.PropertyImport
	}

	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Dir is the package directory the file belongs to.
	Dir string
	// Filename is the name of the file (e.g., "formbind_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// ErrNoStructs is returned when Generate is called without structs.
var ErrNoStructs = errors.New("no struct types to generate")

// Generate generates the descriptor file for structs, which must all belong
// to pkg.
func (g *Generator) Generate(pkg *analyze.PackageInfo, structs []*analyze.StructInfo) (*GeneratedFile, error) {
	if len(structs) == 0 {
		return nil, ErrNoStructs
	}

	for _, st := range structs {
		if st.ID.PkgPath != pkg.Path {
			return nil, fmt.Errorf("struct %s is not in package %s", st.ID, pkg.Path)
		}
	}

	data := g.buildTemplateData(pkg, structs)

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		_ = writeDebugUnformatted(pkg.Dir, g.config.FileName, buf.Bytes())

		return &GeneratedFile{
			Dir:      pkg.Dir,
			Filename: g.config.FileName,
			Content:  buf.Bytes(),
		}, fmt.Errorf("formatting code: %w (unformatted code returned)", err)
	}

	return &GeneratedFile{
		Dir:      pkg.Dir,
		Filename: g.config.FileName,
		Content:  formatted,
	}, nil
}

func (g *Generator) buildTemplateData(pkg *analyze.PackageInfo, structs []*analyze.StructInfo) *templateData {
	data := &templateData{
		Header:      g.config.Header,
		PackageName: pkg.Name,
		Property:    g.config.PropertyImport,
	}

	seenEnums := make(map[analyze.TypeID]bool)

	for _, st := range structs {
		td := typeData{
			Name: st.ID.Name,
			Var:  lowerFirst(st.ID.Name) + "BindingFields",
		}

		for i := range st.Fields {
			f := &st.Fields[i]

			if f.Kind == property.KindTime {
				data.ImportTime = true
			}

			if f.Enum != nil && !seenEnums[f.Enum.ID] {
				seenEnums[f.Enum.ID] = true
				data.Enums = append(data.Enums, buildEnum(f.Enum))
			}

			td.Fields = append(td.Fields, buildField(st.ID.Name, f))
		}

		data.Types = append(data.Types, td)
	}

	return data
}

func buildEnum(e *analyze.EnumInfo) enumData {
	ed := enumData{
		Name: e.ID.Name,
		Var:  enumVar(e),
	}

	for _, m := range e.Members {
		ed.Members = append(ed.Members, m.Name)
	}

	return ed
}

func buildField(owner string, f *analyze.FieldInfo) fieldData {
	fd := fieldData{
		Constructor: f.Constructor(),
		TypeArgs:    owner,
		Name:        f.Name,
		Owner:       owner,
		ValueType:   f.ValueType(),
		Getter:      "o." + f.GoName,
	}

	if f.Enum != nil {
		fd.TypeArgs = owner + ", " + f.Enum.ID.Name
		fd.EnumVar = enumVar(f.Enum)
	}

	if f.Convert != "" {
		fd.Getter = fmt.Sprintf("%s(o.%s)", f.ValueType(), f.GoName)
	}

	if !f.ReadOnly {
		v := "v"
		if f.Convert != "" {
			v = f.Convert + "(v)"
		}

		fd.Setter = fmt.Sprintf("o.%s = %s", f.GoName, v)
	}

	return fd
}

func enumVar(e *analyze.EnumInfo) string {
	return lowerFirst(e.ID.Name) + "Enum"
}

// lowerFirst lowers the leading upper-case run of s, keeping the last
// letter of a run that starts a new word: "URLInfo" becomes "urlInfo".
func lowerFirst(s string) string {
	r := []rune(s)

	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}

	if n > 1 && n < len(r) {
		n--
	}

	for i := range n {
		r[i] = unicode.ToLower(r[i])
	}

	return string(r)
}

// SortedStructs returns the structs of pkg named in names, in the order of
// names. Unknown names are reported together.
func SortedStructs(graph *analyze.Graph, pkgPath string, names []string) ([]*analyze.StructInfo, error) {
	var (
		out     []*analyze.StructInfo
		missing []string
	)

	for _, name := range names {
		st, ok := graph.Structs[analyze.TypeID{PkgPath: pkgPath, Name: name}]
		if !ok {
			missing = append(missing, name)
			continue
		}

		out = append(out, st)
	}

	if len(missing) > 0 {
		slices.Sort(missing)
		return nil, fmt.Errorf("struct types not found in %s: %s", pkgPath, strings.Join(missing, ", "))
	}

	return out, nil
}
