package control

import (
	"fmt"
	"strconv"
	"strings"
)

// SetValue writes value into c. A nil value is ignored.
//
// Writing happens in two steps. First, every kind with an enabled state
// is enabled or disabled according to lock. Then exactly one kind-specific
// branch stores the value. With ignoreStrings a TextInput keeps its text
// but still receives the lock state.
func SetValue(c *Control, value any, lock, ignoreStrings bool) {
	if c == nil || value == nil {
		return
	}

	if c.Kind.HasEnabled() {
		c.Enabled = !lock
	}

	str := fmt.Sprint(value)

	switch c.Kind {
	case TextInput:
		if !ignoreStrings {
			c.Text = str
		}
	case Label, Literal, Button:
		c.Text = str
	case LinkButton:
		c.CommandArgument = str
		c.Visible = !lock
	case Image:
		c.ImageURL = str
	case CheckBox:
		c.Checked = truthy(value)
	case DropDown:
		if b, ok := value.(bool); ok {
			str = "0"
			if b {
				str = "1"
			}
		}

		selectValue(c, str)
	case RadioGroup:
		selectValue(c, str)
	case Hidden:
		c.Value = str
	case Element:
		c.Attributes.Set("value", str)

		if typ, _ := c.Attributes.Get("type"); typ == "radio" || typ == "checkbox" {
			c.Attributes.Set("checked", "true")
		}
	case Container:
	}
}

// Value reads the value of c. It returns nil for kinds that carry no
// readable value.
func Value(c *Control) any {
	if c == nil {
		return nil
	}

	switch c.Kind {
	case TextInput, Label, Literal, LinkButton, Button:
		return c.Text
	case Image:
		return c.ImageURL
	case CheckBox:
		return c.Checked
	case DropDown:
		if i := c.SelectedIndex(); i >= 0 {
			return c.Options[i].Value
		}

		if len(c.Options) > 0 {
			return c.Options[0].Value
		}

		return ""
	case RadioGroup:
		if i := c.SelectedIndex(); i >= 0 {
			return c.Options[i].Text
		}

		return ""
	case Hidden:
		return c.Value
	default:
		return nil
	}
}

// selectValue selects the first option whose value is v. Without a match
// the selection is left as it was.
func selectValue(c *Control, v string) {
	for i, o := range c.Options {
		if o.Value == v {
			c.Select(i)
			return
		}
	}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		return err == nil && b
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return false
	}
}
