package binder

import (
	"github.com/charmbracelet/log"
	"golang.org/x/text/language"

	"form-binder/convert"
)

// DefaultSuffixFormat builds the control ID suffix from a property name.
const DefaultSuffixFormat = "_%s"

// Option configures a Mapper.
type Option func(*Mapper)

// WithConverter replaces the value converter.
func WithConverter(c *convert.Converter) Option {
	return func(m *Mapper) {
		if c != nil {
			m.conv = c
		}
	}
}

// WithLocale uses a converter for locale.
func WithLocale(locale language.Tag) Option {
	return func(m *Mapper) {
		m.conv = convert.New(locale)
	}
}

// WithLogger sets the logger that receives per-property debug output.
func WithLogger(l *log.Logger) Option {
	return func(m *Mapper) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSuffixFormat changes how a property name turns into a control ID
// suffix. The format receives the property name as its only argument.
func WithSuffixFormat(format string) Option {
	return func(m *Mapper) {
		if format != "" {
			m.suffixFormat = format
		}
	}
}
