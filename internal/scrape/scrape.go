// Package scrape contains small helpers for pulling structured data out of
// HTML parse trees produced by golang.org/x/net/html.
//
// The PLET portal has no listing API; the set of available datasets only
// exists as a <select> element on the query form, so the listing code walks
// the parsed page looking for it.
package scrape

import (
	"strings"

	"golang.org/x/net/html"
)

// Option is one <option> of a <select> element.
type Option struct {
	Value string // value attribute, may be empty for placeholders
	Text  string // trimmed text content
}

// Walk traverses an HTML parse tree depth first, calling fn for every node.
func Walk(root *html.Node, fn func(*html.Node)) {
	fn(root)
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, fn)
	}
}

// ElementByID returns the first element with the given tag name and id
// attribute, or nil if the document contains no such element.
func ElementByID(root *html.Node, tag, id string) *html.Node {
	var found *html.Node
	Walk(root, func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode && n.Data == tag && Attr(n, "id") == id {
			found = n
		}
	})
	return found
}

// SelectOptions returns the options of the <select> element with the given
// id, in document order. Returns nil if the element is not present.
func SelectOptions(root *html.Node, id string) []Option {
	sel := ElementByID(root, "select", id)
	if sel == nil {
		return nil
	}

	var options []Option
	Walk(sel, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "option" {
			return
		}
		options = append(options, Option{
			Value: Attr(n, "value"),
			Text:  strings.TrimSpace(Text(n)),
		})
	})
	return options
}

// Attr returns the value of the named attribute, or "" if absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text returns the concatenated text content of a node and its children.
func Text(n *html.Node) string {
	var sb strings.Builder
	Walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
