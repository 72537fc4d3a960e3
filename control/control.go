// Package control models the server-side control tree of a web form page
// and implements the value dispatch the binder performs on it.
//
// A Control is a tagged variant: Kind selects which of the state fields
// are meaningful. The set of kinds is closed; SetValue and Value switch
// over it exhaustively.
package control

// Option is one entry of a DropDown or RadioGroup.
type Option struct {
	Text     string
	Value    string
	Selected bool
}

// Attribute is a single markup attribute of an Element.
type Attribute struct {
	// Namespace is set for foreign attributes such as xlink:href.
	Namespace string
	Key       string
	Val       string
}

// Attributes is an ordered attribute list. Get, Set and Delete only see
// attributes without a namespace.
type Attributes []Attribute

// Get returns the value of key and whether it is present.
func (a Attributes) Get(key string) (string, bool) {
	for _, at := range a {
		if at.Namespace == "" && at.Key == key {
			return at.Val, true
		}
	}

	return "", false
}

// Set overwrites key when present and appends it otherwise.
func (a *Attributes) Set(key, val string) {
	for i := range *a {
		if (*a)[i].Namespace == "" && (*a)[i].Key == key {
			(*a)[i].Val = val
			return
		}
	}

	*a = append(*a, Attribute{Key: key, Val: val})
}

// Delete removes key.
func (a *Attributes) Delete(key string) {
	out := (*a)[:0]
	for _, at := range *a {
		if at.Namespace != "" || at.Key != key {
			out = append(out, at)
		}
	}

	*a = out
}

// Control is a node of the control tree.
type Control struct {
	ID       string
	Kind     Kind
	Children []*Control

	// Text is the displayed text of TextInput, Label, Literal, Button and LinkButton.
	Text string
	// CommandArgument is the payload of a LinkButton.
	CommandArgument string
	// ImageURL is the source of an Image.
	ImageURL string
	// Value is the value of a Hidden field.
	Value string
	// Checked is the state of a CheckBox.
	Checked bool
	// Options are the entries of a DropDown or RadioGroup.
	Options []Option
	// Attributes are the markup attributes of an Element.
	Attributes Attributes

	Enabled bool
	Visible bool
}

// New returns an enabled, visible control.
func New(kind Kind, id string) *Control {
	return &Control{ID: id, Kind: kind, Enabled: true, Visible: true}
}

// Add appends children and returns c.
func (c *Control) Add(children ...*Control) *Control {
	c.Children = append(c.Children, children...)
	return c
}

// AddOption appends an option and returns c.
func (c *Control) AddOption(text, value string) *Control {
	c.Options = append(c.Options, Option{Text: text, Value: value})
	return c
}

// SelectedIndex returns the index of the first selected option, or -1.
func (c *Control) SelectedIndex() int {
	for i, o := range c.Options {
		if o.Selected {
			return i
		}
	}

	return -1
}

// Select marks option i as the only selected option.
func (c *Control) Select(i int) {
	for j := range c.Options {
		c.Options[j].Selected = j == i
	}
}
