// Package dom resolves and manipulates the element a chart is drawn into.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/raykavin/linechart/pkg/svg"
	"golang.org/x/net/html"
)

var (
	ErrNoElement  = errors.New("selector matched no element")
	ErrAmbiguous  = errors.New("selector matched more than one element")
	ErrNilElement = errors.New("nil element")
)

// Container is the host element of a chart
type Container interface {
	Node() *html.Node
	// Width and Height return the measured size, or 0 when unknown
	Width() float64
	Height() float64
	AppendChild(n *html.Node)
	RemoveChild(n *html.Node)
	// SetInnerHTML replaces every child with the parsed markup
	SetInnerHTML(markup string)
}

// Element is a Container backed by a node of an html document tree
type Element struct {
	node *html.Node
}

// NewElement wraps an existing element node
func NewElement(node *html.Node) (*Element, error) {
	if node == nil {
		return nil, ErrNilElement
	}
	if node.Type != html.ElementNode {
		return nil, fmt.Errorf("node %q is not an element", node.Data)
	}
	return &Element{node: node}, nil
}

// Parse reads an html document
func Parse(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// Select resolves a CSS selector against root; it must match exactly one element
func Select(root *html.Node, selector string) (*Element, error) {
	if root == nil {
		return nil, ErrNilElement
	}

	found := goquery.NewDocumentFromNode(root).Find(selector)
	switch found.Length() {
	case 0:
		return nil, fmt.Errorf("%w: %q", ErrNoElement, selector)
	case 1:
		return NewElement(found.Nodes[0])
	default:
		return nil, fmt.Errorf("%w: %q matched %d", ErrAmbiguous, selector, found.Length())
	}
}

// Node returns the wrapped node
func (e *Element) Node() *html.Node {
	return e.node
}

// Width returns the width attribute or inline style width in pixels
func (e *Element) Width() float64 {
	return e.measure("width")
}

// Height returns the height attribute or inline style height in pixels
func (e *Element) Height() float64 {
	return e.measure("height")
}

func (e *Element) measure(property string) float64 {
	sel := goquery.NewDocumentFromNode(e.node).Selection
	if v, ok := sel.Attr("style"); ok {
		if size, ok := pixels(svg.ParseStyle(v)[property]); ok {
			return size
		}
	}
	if v, ok := sel.Attr(property); ok {
		if size, ok := pixels(v); ok {
			return size
		}
	}
	return 0
}

// pixels parses "300" or "300px"; percentages and other units are unknown sizes
func pixels(v string) (float64, bool) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	if v == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	return f, true
}

// AppendChild appends n as the last child of the element
func (e *Element) AppendChild(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
	e.node.AppendChild(n)
}

// RemoveChild detaches n when it is a direct child of the element
func (e *Element) RemoveChild(n *html.Node) {
	if n != nil && n.Parent == e.node {
		e.node.RemoveChild(n)
	}
}

// SetInnerHTML replaces the content of the element
func (e *Element) SetInnerHTML(markup string) {
	goquery.NewDocumentFromNode(e.node).Selection.SetHtml(markup)
}

// InnerHTML renders the children of the element
func (e *Element) InnerHTML() (string, error) {
	return goquery.NewDocumentFromNode(e.node).Selection.Html()
}

// Render writes the element and its subtree
func (e *Element) Render(w io.Writer) error {
	return html.Render(w, e.node)
}
