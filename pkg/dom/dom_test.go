package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

const page = `<html><body>
<div id="chart" width="320" height="160"></div>
<div id="styled" style="width: 500px; height:250px"></div>
<div class="panel"></div><div class="panel"></div>
</body></html>`

func parsePage(t *testing.T) *html.Node {
	t.Helper()
	doc, err := Parse(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestSelect(t *testing.T) {
	doc := parsePage(t)

	el, err := Select(doc, "#chart")
	require.NoError(t, err)
	assert.Equal(t, "div", el.Node().Data)

	_, err = Select(doc, "#missing")
	assert.ErrorIs(t, err, ErrNoElement)

	_, err = Select(doc, ".panel")
	assert.ErrorIs(t, err, ErrAmbiguous)

	_, err = Select(nil, "#chart")
	assert.ErrorIs(t, err, ErrNilElement)
}

func TestElement_Measure(t *testing.T) {
	doc := parsePage(t)

	el, err := Select(doc, "#chart")
	require.NoError(t, err)
	assert.Equal(t, 320.0, el.Width())
	assert.Equal(t, 160.0, el.Height())

	styled, err := Select(doc, "#styled")
	require.NoError(t, err)
	assert.Equal(t, 500.0, styled.Width())
	assert.Equal(t, 250.0, styled.Height())

	panel, err := Select(doc, "body")
	require.NoError(t, err)
	assert.Zero(t, panel.Width())
}

func TestElement_Children(t *testing.T) {
	doc := parsePage(t)
	el, err := Select(doc, "#chart")
	require.NoError(t, err)

	child := &html.Node{Type: html.ElementNode, Data: "span"}
	el.AppendChild(child)
	inner, err := el.InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, "<span></span>", inner)

	el.RemoveChild(child)
	assert.Nil(t, el.Node().FirstChild)

	el.AppendChild(child)
	el.SetInnerHTML(`<p class="msg">hi &amp; bye</p>`)
	inner, err = el.InnerHTML()
	require.NoError(t, err)
	assert.Equal(t, `<p class="msg">hi &amp; bye</p>`, inner)
	assert.Nil(t, child.Parent)
}

func TestNewElement(t *testing.T) {
	_, err := NewElement(nil)
	assert.ErrorIs(t, err, ErrNilElement)

	_, err = NewElement(&html.Node{Type: html.TextNode, Data: "x"})
	assert.Error(t, err)
}
