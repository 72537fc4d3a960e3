package control

import "strings"

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the closed set of control kinds the binder knows how to read and
// write. Container is the zero kind and carries no value.
type Kind uint8

const (
	Container Kind = iota
	TextInput
	Label
	Literal
	LinkButton
	Button
	Image
	CheckBox
	DropDown
	RadioGroup
	Hidden
	Element
)

// HasEnabled reports whether controls of kind k carry an enabled state
// that binding with a lock toggles.
func (k Kind) HasEnabled() bool {
	switch k {
	case TextInput, Label, LinkButton, Button, Image, CheckBox, DropDown, RadioGroup:
		return true
	default:
		return false
	}
}

// Readable reports whether Value returns a value for controls of kind k.
func (k Kind) Readable() bool {
	switch k {
	case Container, Element:
		return false
	default:
		return true
	}
}

// ParseKind resolves a kind name case-insensitively, ignoring '-' and '_'
// so that markup spellings such as "radio-group" work.
func ParseKind(s string) (Kind, bool) {
	want := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(s))

	for k := Container; k <= Element; k++ {
		if strings.ToLower(k.String()) == want {
			return k, true
		}
	}

	return Container, false
}
