// Package export serialises rendered charts to SVG files and standalone HTML pages.
package export

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/raykavin/linechart/pkg/dom"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	mhtml "github.com/tdewolff/minify/v2/html"
	msvg "github.com/tdewolff/minify/v2/svg"
	"golang.org/x/net/html"
)

// Static assets embedded in the binary
var (
	//go:embed assets
	staticFiles embed.FS

	pageTemplate = template.Must(template.ParseFS(staticFiles, "assets/page.html"))
)

var ErrNotRendered = errors.New("chart has no svg, render it first")

const (
	mediaSVG  = "image/svg+xml"
	mediaHTML = "text/html"
	mediaCSS  = "text/css"
)

// Chart is anything drawn into a container, such as *linechart.LineChart
type Chart interface {
	Container() dom.Container
}

// Options configures SVG
type Options struct {
	Minify bool
}

// PageOptions configures Page
type PageOptions struct {
	Title  string
	Minify bool
	// Stylesheet replaces the embedded default style
	Stylesheet string
}

var minifier = newMinifier()

func newMinifier() *minify.M {
	m := minify.New()
	m.AddFunc(mediaCSS, css.Minify)
	m.AddFunc(mediaHTML, mhtml.Minify)
	m.AddFunc(mediaSVG, msvg.Minify)
	return m
}

// SVG writes the svg element of the chart as a standalone document
func SVG(w io.Writer, chart Chart, opts Options) error {
	node := findSVG(chart.Container().Node())
	if node == nil {
		return ErrNotRendered
	}

	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return fmt.Errorf("failed to render svg: %w", err)
	}
	return write(w, mediaSVG, buf.Bytes(), opts.Minify)
}

// Page writes an html document holding the chart content: the svg, or the
// empty state message
func Page(w io.Writer, chart Chart, opts PageOptions) error {
	var content bytes.Buffer
	for c := chart.Container().Node().FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&content, c); err != nil {
			return fmt.Errorf("failed to render chart: %w", err)
		}
	}

	style, err := stylesheet(opts)
	if err != nil {
		return err
	}

	title := opts.Title
	if title == "" {
		title = "Line chart"
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, map[string]any{
		"Title":   title,
		"Style":   template.CSS(style),
		"Content": template.HTML(content.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to execute page template: %w", err)
	}
	return write(w, mediaHTML, buf.Bytes(), opts.Minify)
}

// stylesheet returns the page css, minified with esbuild when requested
func stylesheet(opts PageOptions) (string, error) {
	source := opts.Stylesheet
	if source == "" {
		data, err := staticFiles.ReadFile("assets/chart.css")
		if err != nil {
			return "", fmt.Errorf("failed to read chart.css: %w", err)
		}
		source = string(data)
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:            api.LoaderCSS,
		MinifyWhitespace:  opts.Minify,
		MinifySyntax:      opts.Minify,
		MinifyIdentifiers: opts.Minify,
	})
	if len(result.Errors) > 0 {
		return "", fmt.Errorf("stylesheet failed with: %v", result.Errors[0].Text)
	}
	return string(result.Code), nil
}

func write(w io.Writer, media string, content []byte, minified bool) error {
	if minified {
		return minifier.Minify(media, w, bytes.NewReader(content))
	}
	_, err := w.Write(content)
	return err
}

func findSVG(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "svg" {
			return c
		}
	}
	return nil
}
