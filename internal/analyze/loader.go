package analyze

import (
	"fmt"
	"go/constant"
	"go/types"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"form-binder/property"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// TagKey is the struct tag that renames or excludes fields:
//
//	`form:"-"`            not bound
//	`form:"Email"`        bound as property Email
//	`form:",readonly"`    bound without a setter
const TagKey = "form"

// Analyzer loads Go packages and classifies their structs.
type Analyzer struct {
	// Dir is the directory packages are resolved from; empty means the
	// current directory.
	Dir string

	graph *Graph
	enums map[TypeID]*EnumInfo
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph: NewGraph(),
		enums: make(map[TypeID]*EnumInfo),
	}
}

// LoadPackages loads the specified packages and analyzes their structs.
// Patterns are standard Go package patterns (e.g., "./models").
func (a *Analyzer) LoadPackages(patterns ...string) (*Graph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.processPackage(pkg)
	}

	return a.graph, nil
}

// Graph returns the current graph.
func (a *Analyzer) Graph() *Graph {
	return a.graph
}

// Struct returns the analysis of a named struct.
func (a *Analyzer) Struct(pkgPath, typeName string) (*StructInfo, error) {
	id := TypeID{PkgPath: pkgPath, Name: typeName}

	info, ok := a.graph.Structs[id]
	if !ok {
		return nil, fmt.Errorf("struct %s not found", id)
	}

	return info, nil
}

func (a *Analyzer) processPackage(pkg *packages.Package) {
	pkgInfo := &PackageInfo{
		Path: pkg.PkgPath,
		Name: pkg.Name,
	}

	if len(pkg.GoFiles) > 0 {
		pkgInfo.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	scope := pkg.Types.Scope()

	var names []*types.TypeName
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		if _, ok := typeName.Type().Underlying().(*types.Struct); ok {
			names = append(names, typeName)
		}
	}

	slices.SortFunc(names, func(x, y *types.TypeName) int { return int(x.Pos() - y.Pos()) })

	for _, typeName := range names {
		id := TypeID{PkgPath: pkg.PkgPath, Name: typeName.Name()}
		st, _ := typeName.Type().Underlying().(*types.Struct)

		a.graph.Structs[id] = a.analyzeStruct(id, st, pkg.Types)
		pkgInfo.Structs = append(pkgInfo.Structs, id)
	}

	a.graph.Packages[pkg.PkgPath] = pkgInfo
}

func (a *Analyzer) analyzeStruct(id TypeID, st *types.Struct, pkg *types.Package) *StructInfo {
	info := &StructInfo{ID: id}
	qualifier := types.RelativeTo(pkg)

	for i := range st.NumFields() {
		field := st.Field(i)
		if !field.Exported() {
			continue
		}

		if field.Embedded() {
			info.Skipped = append(info.Skipped, SkippedField{Name: field.Name(), Reason: "embedded field"})
			continue
		}

		name, readOnly, skip := parseTag(reflect.StructTag(st.Tag(i)).Get(TagKey))
		if skip {
			info.Skipped = append(info.Skipped, SkippedField{Name: field.Name(), Reason: "excluded by tag"})
			continue
		}

		if name == "" {
			name = field.Name()
		}

		fi := FieldInfo{
			Name:     name,
			GoName:   field.Name(),
			ReadOnly: readOnly,
			GoType:   types.TypeString(field.Type(), qualifier),
			Index:    i,
		}

		if reason := a.classify(field.Type(), pkg, &fi); reason != "" {
			info.Skipped = append(info.Skipped, SkippedField{Name: field.Name(), Reason: reason})
			continue
		}

		info.Fields = append(info.Fields, fi)
	}

	return info
}

// classify fills the kind of fi from t. It returns a non-empty reason when
// the type cannot be bound.
func (a *Analyzer) classify(t types.Type, pkg *types.Package, fi *FieldInfo) string {
	t = types.Unalias(t)

	if ptr, ok := t.(*types.Pointer); ok {
		fi.Nullable = true
		t = types.Unalias(ptr.Elem())
	}

	if isTime(t) {
		fi.Kind = property.KindTime
		return ""
	}

	unsupported := "unsupported type " + fi.GoType

	switch tt := t.(type) {
	case *types.Basic:
		fi.Kind = basicKind(tt)
		if fi.Kind == property.KindInvalid {
			return unsupported
		}

		return ""

	case *types.Named:
		basic, ok := tt.Underlying().(*types.Basic)
		if !ok {
			return unsupported
		}

		if tt.Obj().Pkg() != pkg {
			return "named type from another package: " + fi.GoType
		}

		if basic.Kind() == types.Int {
			if enum := a.enum(tt); enum != nil {
				if fi.Nullable {
					return "nullable enum " + fi.GoType
				}

				fi.Kind = property.KindEnum
				fi.Enum = enum

				return ""
			}
		}

		if fi.Nullable {
			return "nullable named type " + fi.GoType
		}

		fi.Kind = basicKind(basic)
		if fi.Kind == property.KindInvalid {
			return unsupported
		}

		fi.Convert = tt.Obj().Name()

		return ""
	}

	return unsupported
}

// enum returns the constants declared with type named, or nil when there
// are none.
func (a *Analyzer) enum(named *types.Named) *EnumInfo {
	obj := named.Obj()
	id := TypeID{PkgPath: obj.Pkg().Path(), Name: obj.Name()}

	if e, ok := a.enums[id]; ok {
		return e
	}

	scope := obj.Pkg().Scope()

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if ok && types.Identical(c.Type(), named) {
			consts = append(consts, c)
		}
	}

	if len(consts) == 0 {
		a.enums[id] = nil
		return nil
	}

	slices.SortFunc(consts, func(x, y *types.Const) int { return int(x.Pos() - y.Pos()) })

	e := &EnumInfo{ID: id}
	for _, c := range consts {
		v, _ := constant.Int64Val(constant.ToInt(c.Val()))
		e.Members = append(e.Members, EnumMember{Name: c.Name(), Value: v})
	}

	a.enums[id] = e

	return e
}

func basicKind(b *types.Basic) property.Kind {
	switch b.Kind() {
	case types.String:
		return property.KindString
	case types.Bool:
		return property.KindBool
	case types.Int:
		return property.KindInt
	case types.Int64:
		return property.KindInt64
	case types.Float64:
		return property.KindFloat64
	default:
		return property.KindInvalid
	}
}

func isTime(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Pkg() != nil && obj.Pkg().Path() == "time" && obj.Name() == "Time"
}

func parseTag(tag string) (name string, readOnly, skip bool) {
	if tag == "-" {
		return "", false, true
	}

	name, opts, _ := strings.Cut(tag, ",")
	for opt := range strings.SplitSeq(opts, ",") {
		if opt == "readonly" {
			readOnly = true
		}
	}

	return name, readOnly, false
}
