// Package view builds the HTML of the portfolio site with gomponents.
package view

import (
	"bytes"
	"io"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Palette used across every page.
const (
	ColorPrimary = "#104F8F"
	ColorBorder  = "#B7C9E2"
	Background   = "linear-gradient(135deg, #F5F6F7 0%, #B7C9E2 100%)"
)

const (
	defaultTitle       = "Hasib Ahmed - Projects"
	defaultDescription = "Selected engineering projects by Hasib Ahmed."
)

// PageConfig carries the document head of a page.
type PageConfig struct {
	Title       string
	Description string
	// URL is the absolute canonical URL. Canonical and og:url tags are
	// omitted when empty.
	URL string
}

// Layout wraps content in a complete HTML document.
func Layout(config PageConfig, content ...g.Node) g.Node {
	if config.Title == "" {
		config.Title = defaultTitle
	}
	if config.Description == "" {
		config.Description = defaultDescription
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(config.Title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(config.Title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				g.If(config.URL != "", g.Group([]g.Node{
					Meta(g.Attr("property", "og:url"), Content(config.URL)),
					Link(Rel("canonical"), Href(config.URL)),
				})),

				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),
			),
		),
	})
}

// Render writes n to w.
func Render(w io.Writer, n g.Node) error {
	return n.Render(w)
}

// Bytes renders n into a byte slice.
func Bytes(n g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Icon renders a lucide icon through iconify. size is a Tailwind size
// utility such as "size-5".
func Icon(name, size string) g.Node {
	return Span(
		Class("iconify inline-block "+size),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// shell is the full-height gradient frame shared by every page.
func shell(content ...g.Node) g.Node {
	return Div(
		Class("min-h-screen py-20"),
		Style("background: "+Background),
		Div(
			Class("container mx-auto px-6"),
			Div(
				Class("max-w-4xl mx-auto"),
				g.Group(content),
			),
		),
	)
}

func primaryText() g.Node {
	return Style("color: " + ColorPrimary)
}
