package property

import (
	"fmt"
	"strconv"
	"strings"
)

// EnumMember is one named value of an enumeration.
type EnumMember struct {
	Name  string
	Value int
}

// EnumType lists the members of an enumeration in declaration order.
type EnumType struct {
	Name    string
	Members []EnumMember
}

// NewEnumType creates an EnumType with the given members.
func NewEnumType(name string, members ...EnumMember) *EnumType {
	return &EnumType{Name: name, Members: members}
}

// Lookup returns the value of the member with the given name.
// Names are case-sensitive.
func (e *EnumType) Lookup(name string) (int, bool) {
	for _, m := range e.Members {
		if m.Name == name {
			return m.Value, true
		}
	}

	return 0, false
}

// MemberName returns the name of the first member holding value v.
func (e *EnumType) MemberName(v int) (string, bool) {
	for _, m := range e.Members {
		if m.Value == v {
			return m.Name, true
		}
	}

	return "", false
}

// Parse resolves s to a member value. s may be a member name or the
// decimal value of a declared member; surrounding blanks are ignored.
func (e *EnumType) Parse(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty value for enum %s", e.Name)
	}

	if v, ok := e.Lookup(s); ok {
		return v, nil
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not a member of enum %s", s, e.Name)
	}

	if _, ok := e.MemberName(n); !ok {
		return 0, fmt.Errorf("%d is not a declared value of enum %s", n, e.Name)
	}

	return n, nil
}
