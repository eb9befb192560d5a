// Package svg builds SVG element trees on top of golang.org/x/net/html nodes.
package svg

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

const Namespace = "http://www.w3.org/2000/svg"

// Style is a set of CSS properties applied through the style attribute
type Style map[string]string

// String renders the properties sorted by name so output is deterministic
func (s Style) String() string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(s[k])
		b.WriteByte(';')
	}
	return b.String()
}

// Clone returns an independent copy of the style
func (s Style) Clone() Style {
	c := make(Style, len(s))
	for k, v := range s {
		c[k] = v
	}
	return c
}

// ParseStyle reads a style attribute value back into a Style
func ParseStyle(attr string) Style {
	s := Style{}
	for _, decl := range strings.Split(attr, ";") {
		k, v, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			s[k] = strings.TrimSpace(v)
		}
	}
	return s
}

// Attr is a shorthand for an html.Attribute
func Attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

// Element creates a detached SVG element
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		Namespace: "svg",
		Attr:      attrs,
	}
}

// Append creates an element and appends it to parent
func Append(parent *html.Node, tag string, attrs ...html.Attribute) *html.Node {
	e := Element(tag, attrs...)
	parent.AppendChild(e)
	return e
}

// Root creates the outer <svg> element
func Root(width, height float64, className string) *html.Node {
	attrs := []html.Attribute{
		Attr("xmlns", Namespace),
		Attr("width", Num(width)),
		Attr("height", Num(height)),
	}
	if className != "" {
		attrs = append(attrs, Attr("class", className))
	}
	return Element("svg", attrs...)
}

// Group creates a <g> element; empty class or transform are omitted
func Group(className, transform string) *html.Node {
	g := Element("g")
	if className != "" {
		SetAttr(g, "class", className)
	}
	if transform != "" {
		SetAttr(g, "transform", transform)
	}
	return g
}

// Path creates a <path> element; an empty d leaves the attribute out
func Path(className, d string) *html.Node {
	p := Element("path")
	if className != "" {
		SetAttr(p, "class", className)
	}
	if d != "" {
		SetAttr(p, "d", d)
	}
	return p
}

// Text creates a <text> element holding content
func Text(content string, attrs ...html.Attribute) *html.Node {
	t := Element("text", attrs...)
	t.AppendChild(&html.Node{Type: html.TextNode, Data: content})
	return t
}

// TextContent concatenates the text children of n
func TextContent(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			b.WriteString(TextContent(c))
		}
	}
	return b.String()
}

// SetAttr sets or replaces an attribute
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, Attr(key, val))
}

// GetAttr returns the value of an attribute
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// RemoveAttr drops an attribute if present
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// SetStyle merges properties into the element style attribute
func SetStyle(n *html.Node, style Style) {
	if len(style) == 0 {
		return
	}
	current := Style{}
	if v, ok := GetAttr(n, "style"); ok {
		current = ParseStyle(v)
	}
	for k, v := range style {
		current[k] = v
	}
	SetAttr(n, "style", current.String())
}

// Translate renders a translate(x,y) transform
func Translate(x, y float64) string {
	return "translate(" + Num(x) + "," + Num(y) + ")"
}

// Num renders a coordinate with the shortest exact representation
func Num(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
