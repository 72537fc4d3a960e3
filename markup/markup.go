// Package markup turns an HTML form into a control tree and writes the
// tree's state back into the HTML.
//
// Kinds are inferred from elements:
//
//	input text/password/email/...  TextInput    textarea          TextInput
//	input hidden                   Hidden       input checkbox    CheckBox
//	input submit/button/reset      Button       input image, img  Image
//	select                         DropDown     [role=radiogroup] RadioGroup
//	a                              LinkButton   button            Button
//	label, span (text only)        Label        other with id     Element
//
// Elements without an id become Containers. A data-control attribute
// naming a kind (e.g. data-control="literal") overrides the inference.
package markup

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"form-binder/control"
)

// Document is a parsed HTML page and its control tree.
type Document struct {
	// Root is a Container standing for the whole document.
	Root *control.Control

	doc   *html.Node
	nodes map[*control.Control]*binding
}

// binding remembers where a control came from.
type binding struct {
	node *html.Node
	// items are the option or radio input nodes of list controls, in
	// the same order as the control's Options.
	items []*html.Node
	// text is the text content seen at parse time.
	text string
}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	n, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	d := &Document{
		Root:  control.New(control.Container, ""),
		doc:   n,
		nodes: make(map[*control.Control]*binding),
	}
	d.readChildren(d.Root, n)

	return d, nil
}

// ParseString reads an HTML document from s.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the current control state into the HTML and renders it.
func (d *Document) Render(w io.Writer) error {
	d.Sync()
	return html.Render(w, d.doc)
}

func (d *Document) readChildren(parent *control.Control, n *html.Node) {
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if child.Type != html.ElementNode {
			d.readChildren(parent, child)
			continue
		}

		c, leaf := d.read(child)
		parent.Add(c)

		if !leaf {
			d.readChildren(c, child)
		}
	}
}

// read builds the control for element n and reports whether its
// descendants are already consumed.
func (d *Document) read(n *html.Node) (*control.Control, bool) {
	id := attr(n, "id")
	kind := inferKind(n)

	if name, ok := lookupAttr(n, "data-control"); ok {
		if k, ok := control.ParseKind(name); ok {
			kind = k
		}
	}

	c := control.New(kind, id)
	b := &binding{node: n}
	d.nodes[c] = b

	if kind.HasEnabled() {
		c.Enabled = !hasAttr(n, "disabled")
	}

	leaf := true

	switch kind {
	case control.TextInput:
		if n.DataAtom == atom.Textarea {
			c.Text = rawText(n)
		} else {
			c.Text = attr(n, "value")
		}
	case control.Label, control.Literal:
		c.Text = textContent(n)
	case control.Button:
		if n.DataAtom == atom.Input {
			c.Text = attr(n, "value")
		} else {
			c.Text = textContent(n)
		}
	case control.LinkButton:
		c.Text = textContent(n)
		c.CommandArgument = attr(n, "data-argument")
		c.Visible = !hasAttr(n, "hidden")
	case control.Image:
		c.ImageURL = attr(n, "src")
	case control.Hidden:
		c.Value = attr(n, "value")
	case control.CheckBox:
		c.Checked = hasAttr(n, "checked")
	case control.DropDown:
		b.items = collect(n, func(e *html.Node) bool { return e.DataAtom == atom.Option })
		for _, o := range b.items {
			text := textContent(o)
			value, ok := lookupAttr(o, "value")
			if !ok {
				value = text
			}

			c.Options = append(c.Options, control.Option{Text: text, Value: value, Selected: hasAttr(o, "selected")})
		}
	case control.RadioGroup:
		b.items = collect(n, isRadio)
		if len(b.items) > 0 && hasAttr(b.items[0], "disabled") {
			c.Enabled = false
		}

		for _, r := range b.items {
			value := attr(r, "value")
			text := radioLabel(n, r)
			if text == "" {
				text = value
			}

			c.Options = append(c.Options, control.Option{Text: text, Value: value, Selected: hasAttr(r, "checked")})
		}
	case control.Element:
		for _, a := range n.Attr {
			c.Attributes = append(c.Attributes, control.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val})
		}

		leaf = false
	case control.Container:
		leaf = false
	}

	b.text = c.Text

	return c, leaf
}

func inferKind(n *html.Node) control.Kind {
	if attr(n, "role") == "radiogroup" {
		return control.RadioGroup
	}

	switch n.DataAtom {
	case atom.Input:
		switch strings.ToLower(attr(n, "type")) {
		case "hidden":
			return control.Hidden
		case "checkbox":
			return control.CheckBox
		case "radio":
			return control.Element
		case "submit", "button", "reset":
			return control.Button
		case "image":
			return control.Image
		default:
			return control.TextInput
		}
	case atom.Textarea:
		return control.TextInput
	case atom.Select:
		return control.DropDown
	case atom.Img:
		return control.Image
	case atom.Button:
		return control.Button
	case atom.A:
		return control.LinkButton
	case atom.Label, atom.Span:
		if attr(n, "id") != "" && !hasElementChild(n) {
			return control.Label
		}
	}

	if attr(n, "id") != "" {
		return control.Element
	}

	return control.Container
}

func isRadio(n *html.Node) bool {
	return n.DataAtom == atom.Input && strings.EqualFold(attr(n, "type"), "radio")
}

// radioLabel finds the text of the label for a radio input: a label with a
// matching for attribute inside the group, or an enclosing label.
func radioLabel(group, radio *html.Node) string {
	if id := attr(radio, "id"); id != "" {
		for _, l := range collect(group, func(e *html.Node) bool { return e.DataAtom == atom.Label }) {
			if attr(l, "for") == id {
				return textContent(l)
			}
		}
	}

	for p := radio.Parent; p != nil && p != group; p = p.Parent {
		if p.DataAtom == atom.Label {
			return textContent(p)
		}
	}

	return ""
}
