package view

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// RedirectPage renders a document that sends the browser to target. Used
// where the site is served from static storage and cannot answer with a
// redirect status.
func RedirectPage(target string) g.Node {
	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(g.Attr("http-equiv", "refresh"), Content("0; url="+target)),
				Link(Rel("canonical"), Href(target)),
				TitleEl(g.Text("Redirecting")),
			),
			Body(
				A(Href(target), g.Text("Continue to "+target)),
			),
		),
	})
}
