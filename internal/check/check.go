// Package check compares the fields of an analyzed struct with the
// controls of a form and reports what will and will not bind.
package check

import (
	"fmt"

	"form-binder/binder"
	"form-binder/control"
	"form-binder/internal/analyze"
	"form-binder/internal/diagnostic"
	"form-binder/internal/match"
)

// Diagnostic codes.
const (
	CodeUnboundField     = "unbound-field"
	CodeShadowedControl  = "shadowed-control"
	CodeWriteOnlyControl = "write-only-control"
	CodeReadOnlyField    = "read-only-field"
	CodeUnsupportedField = "unsupported-field"
)

// suggestionLimit caps the near misses listed for an unbound field.
const suggestionLimit = 3

// Binding pairs a property with the control it binds to.
type Binding struct {
	Field     string
	GoType    string
	ControlID string
	Kind      control.Kind
}

// Report is the result of checking one struct against one form.
type Report struct {
	Type        string
	Bindings    []Binding
	Diagnostics diagnostic.Diagnostics
}

// Form checks st against the control tree rooted at root, pairing fields
// and controls the way m does.
func Form(root *control.Control, st *analyze.StructInfo, m *binder.Mapper) *Report {
	r := &Report{Type: st.ID.Name}

	var ids []string

	control.Walk(root, func(c *control.Control) bool {
		if c.ID != "" {
			ids = append(ids, c.ID)
		}

		return true
	})

	for i := range st.Fields {
		f := &st.Fields[i]

		matches := control.FindAll(root, m.Suffix(f.Name))
		if len(matches) == 0 {
			r.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:    diagnostic.SeverityWarning,
				Code:        CodeUnboundField,
				Message:     fmt.Sprintf("no control ID ends with %q", m.Suffix(f.Name)),
				TypeName:    r.Type,
				Field:       f.Name,
				Suggestions: match.Suggest(f.Name, ids, suggestionLimit),
			})

			continue
		}

		bound := matches[0]
		r.Bindings = append(r.Bindings, Binding{
			Field:     f.Name,
			GoType:    f.GoType,
			ControlID: bound.ID,
			Kind:      bound.Kind,
		})

		for _, shadowed := range matches[1:] {
			r.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Code:      CodeShadowedControl,
				Message:   fmt.Sprintf("never bound; %s is found first", bound.ID),
				TypeName:  r.Type,
				Field:     f.Name,
				ControlID: shadowed.ID,
			})
		}

		switch {
		case f.ReadOnly:
			r.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityInfo,
				Code:      CodeReadOnlyField,
				Message:   "loaded only; the property has no setter",
				TypeName:  r.Type,
				Field:     f.Name,
				ControlID: bound.ID,
			})
		case !bound.Kind.Readable():
			r.Diagnostics.Add(diagnostic.Diagnostic{
				Severity:  diagnostic.SeverityWarning,
				Code:      CodeWriteOnlyControl,
				Message:   fmt.Sprintf("%s control has no value; save leaves the property unchanged", bound.Kind),
				TypeName:  r.Type,
				Field:     f.Name,
				ControlID: bound.ID,
			})
		}
	}

	for _, s := range st.Skipped {
		r.Diagnostics.AddInfo(CodeUnsupportedField, s.Reason, r.Type, s.Name)
	}

	return r
}
