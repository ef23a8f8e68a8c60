package view

import (
	"net/http"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/hasib2k/portfolio/internal/project"
)

// ProjectsIndex renders the project listing page.
func ProjectsIndex(projects []project.Project, baseURL string) g.Node {
	return Layout(
		PageConfig{
			Title:       "Projects - Hasib Ahmed",
			Description: defaultDescription,
			URL:         absoluteURL(baseURL, project.ListPath),
		},
		shell(
			H1(
				Class("text-4xl md:text-5xl font-bold mb-12 text-center"),
				primaryText(),
				g.Text("Projects"),
			),
			Div(
				Class("grid gap-8"),
				g.Attr("data-role", "projects"),
				g.Group(g.Map(projects, projectCard)),
			),
		),
	)
}

func projectCard(p project.Project) g.Node {
	return A(
		Href(p.Path()),
		Class("block p-8 "+glassCard+" transition-all duration-300 hover:bg-white/20 hover:scale-105"),
		Style("border-color: "+ColorBorder),
		g.Attr("data-role", "project"),
		H2(Class("text-2xl font-bold mb-3"), primaryText(), g.Text(p.Name)),
		P(Class("leading-relaxed mb-4"), primaryText(), g.Text(p.Metadata.Description)),
		Div(
			Class("flex flex-wrap gap-2"),
			g.Group(g.Map(p.Technologies, func(tech string) g.Node {
				return Span(
					Class("px-3 py-1 rounded-full text-xs font-medium border"),
					Style("border-color: "+ColorBorder+"; color: "+ColorPrimary),
					g.Text(tech),
				)
			})),
		),
	)
}

// Not found page text, shared by the server and the static export.
const (
	NotFoundTitle   = "Not Found"
	NotFoundMessage = "The page you requested does not exist."
)

// NotFoundPage renders the 404 page.
func NotFoundPage() g.Node {
	return ErrorPage(http.StatusNotFound, NotFoundTitle, NotFoundMessage)
}

// ErrorPage renders an HTML error page for the given status.
func ErrorPage(status int, title, message string) g.Node {
	return Layout(
		PageConfig{
			Title:       title + " - Hasib Ahmed",
			Description: message,
		},
		shell(
			Div(
				Class("text-center"),
				P(Class("text-6xl font-bold mb-4"), primaryText(), g.Text(strconv.Itoa(status))),
				H1(Class("text-3xl font-bold mb-4"), primaryText(), g.Text(title)),
				P(Class("text-lg mb-8"), primaryText(), g.Text(message)),
				A(
					Href(project.ListPath),
					Class("inline-flex items-center gap-2 px-4 py-2 rounded-lg border"),
					Style("border-color: "+ColorBorder+"; color: "+ColorPrimary),
					Icon("arrow-left", "size-5"),
					g.Text("Back to Projects"),
				),
			),
		),
	)
}
