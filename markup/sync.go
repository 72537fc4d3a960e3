package markup

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"form-binder/control"
)

// Sync copies the state of every parsed control back onto its element.
// Text-carrying elements only have their children replaced when the text
// changed, so nested markup survives an unchanged value.
func (d *Document) Sync() {
	for c, b := range d.nodes {
		d.sync(c, b)
	}
}

func (d *Document) sync(c *control.Control, b *binding) {
	n := b.node

	switch {
	case c.Kind == control.RadioGroup:
		for _, item := range b.items {
			setBoolAttr(item, "disabled", !c.Enabled)
		}
	case c.Kind.HasEnabled():
		setBoolAttr(n, "disabled", !c.Enabled)
	}

	switch c.Kind {
	case control.TextInput:
		if n.DataAtom == atom.Textarea {
			syncText(c, b)
		} else {
			setAttr(n, "value", c.Text)
		}
	case control.Label, control.Literal:
		syncText(c, b)
	case control.Button:
		if n.DataAtom == atom.Input {
			setAttr(n, "value", c.Text)
		} else {
			syncText(c, b)
		}
	case control.LinkButton:
		syncText(c, b)
		setAttr(n, "data-argument", c.CommandArgument)
		setBoolAttr(n, "hidden", !c.Visible)
	case control.Image:
		setAttr(n, "src", c.ImageURL)
	case control.Hidden:
		setAttr(n, "value", c.Value)
	case control.CheckBox:
		setBoolAttr(n, "checked", c.Checked)
	case control.DropDown:
		syncItems(c, b, "selected")
	case control.RadioGroup:
		syncItems(c, b, "checked")
	case control.Element:
		n.Attr = n.Attr[:0]
		for _, a := range c.Attributes {
			n.Attr = append(n.Attr, html.Attribute{Namespace: a.Namespace, Key: a.Key, Val: a.Val})
		}
	case control.Container:
	}
}

func syncText(c *control.Control, b *binding) {
	if c.Text == b.text {
		return
	}

	setText(b.node, c.Text)
	b.text = c.Text
}

func syncItems(c *control.Control, b *binding, key string) {
	for i, item := range b.items {
		if i >= len(c.Options) {
			break
		}

		setBoolAttr(item, key, c.Options[i].Selected)
	}
}
