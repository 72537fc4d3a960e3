// Package binder copies values between bindable objects and the controls
// of a form, pairing each property with the first control, in
// breadth-first order, whose ID ends with "_" + the property name.
package binder

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"form-binder/control"
	"form-binder/convert"
	"form-binder/property"
)

// Mapper binds objects to forms. It holds configuration only and may be
// shared; the objects and control trees passed to it may not.
type Mapper struct {
	conv         *convert.Converter
	logger       *log.Logger
	suffixFormat string
}

// New returns a Mapper using the default locale, a discarding logger and
// the "_%s" naming convention unless overridden by opts.
func New(opts ...Option) *Mapper {
	m := &Mapper{
		conv:         convert.New(convert.DefaultLocale),
		logger:       log.New(io.Discard),
		suffixFormat: DefaultSuffixFormat,
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Suffix returns the control ID suffix a property binds to.
func (m *Mapper) Suffix(name string) string {
	return fmt.Sprintf(m.suffixFormat, name)
}

// Load writes every property of obj into its matching control under form.
// With lock, controls that can be disabled are disabled and link buttons
// hidden. With ignoreStrings, text inputs keep their current text.
// Properties without a matching control are skipped.
func (m *Mapper) Load(form *control.Control, obj any, lock, ignoreStrings bool) {
	if form == nil || obj == nil {
		return
	}

	for _, f := range property.Properties(obj) {
		c := control.Find(form, m.Suffix(f.Name))
		if c == nil {
			m.logger.Debug("no control for property", "property", f.Name)
			continue
		}

		control.SetValue(c, m.conv.Display(f, obj), lock, ignoreStrings)
	}
}

// Save reads every settable property of obj from its matching control
// and reports whether all of them were stored. A failing property does not
// stop the others.
func (m *Mapper) Save(form *control.Control, obj any, allowNullable bool) bool {
	return len(m.SaveErrors(form, obj, allowNullable)) == 0
}

// SaveErrors performs Save and returns the failures keyed by control ID.
//
// A control without a readable value leaves its property untouched. A
// coerced nil is only assigned when allowNullable is set.
func (m *Mapper) SaveErrors(form *control.Control, obj any, allowNullable bool) FieldErrors {
	errs := make(FieldErrors)
	if form == nil || obj == nil {
		return errs
	}

	for _, f := range property.Properties(obj) {
		if !f.Settable() {
			continue
		}

		c := control.Find(form, m.Suffix(f.Name))
		if c == nil {
			m.logger.Debug("no control for property", "property", f.Name)
			continue
		}

		raw := control.Value(c)
		if raw == nil {
			continue
		}

		v, err := m.conv.Coerce(raw, f.Type, allowNullable)
		if err == nil && (allowNullable || v != nil) {
			err = f.Set(obj, v)
		}

		if err != nil {
			m.logger.Debug("property not saved", "property", f.Name, "control", c.ID, "err", err)
			errs.add(c.ID, err)
		}
	}

	return errs
}
