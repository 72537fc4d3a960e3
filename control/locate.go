package control

import "strings"

// Find returns the first control, in breadth-first order starting at root
// itself, whose ID ends with suffix. Shallower controls win over deeper
// ones and siblings are visited in declaration order. It returns nil when
// root is nil, suffix is empty or nothing matches.
func Find(root *Control, suffix string) *Control {
	if root == nil || suffix == "" {
		return nil
	}

	var found *Control

	Walk(root, func(c *Control) bool {
		if c.ID != "" && strings.HasSuffix(c.ID, suffix) {
			found = c
			return false
		}

		return true
	})

	return found
}

// Walk visits root and its descendants breadth-first until fn returns false.
func Walk(root *Control, fn func(*Control) bool) {
	if root == nil {
		return
	}

	queue := []*Control{root}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]

		if !fn(c) {
			return
		}

		for _, child := range c.Children {
			if child != nil {
				queue = append(queue, child)
			}
		}
	}
}

// FindAll returns every control whose ID ends with suffix, in the order
// Find would consider them.
func FindAll(root *Control, suffix string) []*Control {
	if suffix == "" {
		return nil
	}

	var out []*Control

	Walk(root, func(c *Control) bool {
		if c.ID != "" && strings.HasSuffix(c.ID, suffix) {
			out = append(out, c)
		}

		return true
	})

	return out
}
