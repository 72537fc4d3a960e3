package markup

import (
	"strings"

	"golang.org/x/net/html"
)

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}

	return "", false
}

func attr(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func removeAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace != "" || a.Key != key {
			out = append(out, a)
		}
	}

	n.Attr = out
}

// setBoolAttr adds or removes a boolean attribute such as checked.
func setBoolAttr(n *html.Node, key string, on bool) {
	if !on {
		removeAttr(n, key)
		return
	}

	if !hasAttr(n, key) {
		n.Attr = append(n.Attr, html.Attribute{Key: key})
	}
}

func hasElementChild(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return true
		}
	}

	return false
}

// textContent returns the text below n with runs of whitespace collapsed.
func textContent(n *html.Node) string {
	var sb strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(strings.Fields(sb.String()), " ")
}

// rawText returns the text children of n as written. The parser already
// drops the newline that may follow a <textarea> start tag.
func rawText(n *html.Node) string {
	var sb strings.Builder

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	}

	return sb.String()
}

// setText replaces the children of n with a single text node.
func setText(n *html.Node, s string) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}

	n.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// collect returns the descendants of n matching keep, in document order.
func collect(n *html.Node, keep func(*html.Node) bool) []*html.Node {
	var out []*html.Node

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && keep(c) {
			out = append(out, c)
		}

		out = append(out, collect(c, keep)...)
	}

	return out
}
