package view

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/hasib2k/portfolio/internal/project"
)

const glassCard = "rounded-2xl border backdrop-blur-md bg-white/10 shadow-lg"

// ProjectPage renders the detail page of a project.
func ProjectPage(p project.Project, baseURL string) g.Node {
	return Layout(
		PageConfig{
			Title:       p.Metadata.Title,
			Description: p.Metadata.Description,
			URL:         absoluteURL(baseURL, p.Path()),
		},
		ProjectContent(p),
	)
}

// ProjectContent renders the body of a project page without the document
// head.
func ProjectContent(p project.Project) g.Node {
	return shell(
		backLink(),
		projectHeader(p),
		repoButton(p.RepoURL),
		featureGrid(p.Features),
		architecturePanel(p.Architecture),
	)
}

func backLink() g.Node {
	return A(
		Href(project.ListPath),
		Class("inline-flex items-center gap-2 mb-8 px-4 py-2 rounded-lg backdrop-blur-md bg-white/10 shadow-lg border transition-all duration-300 hover:bg-white/20 hover:scale-105"),
		Style("border-color: "+ColorBorder+"; color: "+ColorPrimary),
		g.Attr("data-role", "back"),
		Icon("arrow-left", "size-5"),
		g.Text("Back to Projects"),
	)
}

func projectHeader(p project.Project) g.Node {
	return Div(
		Class("text-center mb-12"),
		H1(
			Class("text-4xl md:text-5xl font-bold mb-6"),
			primaryText(),
			g.Text(p.Name),
		),
		P(
			Class("text-xl leading-relaxed max-w-3xl mx-auto mb-8"),
			primaryText(),
			g.Text(p.Summary),
		),
		technologyBadges(p.Technologies),
	)
}

func technologyBadges(technologies []string) g.Node {
	return Div(
		Class("flex flex-wrap justify-center gap-3 mb-8"),
		g.Attr("data-role", "technologies"),
		g.Group(g.Map(technologies, func(tech string) g.Node {
			return Span(
				Class("px-4 py-2 rounded-full text-sm font-medium border backdrop-blur-md bg-white/10 shadow-lg"),
				Style("border-color: "+ColorBorder+"; color: "+ColorPrimary),
				g.Attr("data-role", "technology"),
				g.Text(tech),
			)
		})),
	)
}

func repoButton(url string) g.Node {
	return Div(
		Class("flex flex-col sm:flex-row gap-4 justify-center mb-16"),
		A(
			Href(url),
			Target("_blank"),
			Rel("noopener noreferrer"),
			Class("flex items-center justify-center gap-2 px-8 py-4 rounded-2xl font-semibold text-white transition-all duration-300 hover:shadow-2xl transform hover:scale-105 shadow-xl"),
			Style("background-color: "+ColorPrimary),
			g.Attr("data-role", "repository"),
			Icon("github", "size-5"),
			g.Text("View Code"),
		),
	)
}

func featureGrid(features []project.Feature) g.Node {
	return Div(
		Class("grid md:grid-cols-2 gap-8 mb-16"),
		g.Attr("data-role", "features"),
		g.Group(g.Map(features, func(f project.Feature) g.Node {
			return Div(
				Class("p-8 "+glassCard+" transition-all duration-300 hover:bg-white/20 hover:scale-105"),
				Style("border-color: "+ColorBorder),
				g.Attr("data-role", "feature"),
				Span(Class("block mb-4"), primaryText(), Icon(f.Icon, "size-8")),
				H3(Class("text-xl font-bold mb-3"), primaryText(), g.Text(f.Title)),
				P(Class("leading-relaxed"), primaryText(), g.Text(f.Description)),
			)
		})),
	)
}

func architecturePanel(sections []project.Section) g.Node {
	return Div(
		Class(glassCard+" p-8"),
		Style("border-color: "+ColorBorder),
		g.Attr("data-role", "architecture"),
		H2(Class("text-3xl font-bold mb-6"), primaryText(), g.Text("Framework Architecture")),
		Div(
			Class("space-y-6"),
			primaryText(),
			g.Group(g.Map(sections, architectureSection)),
		),
	)
}

func architectureSection(s project.Section) g.Node {
	var body g.Node
	if len(s.Bullets) > 0 {
		body = Ul(
			Class("list-disc list-inside space-y-2 leading-relaxed"),
			g.Group(g.Map(s.Bullets, func(b string) g.Node {
				return Li(g.Text(b))
			})),
		)
	} else {
		body = P(Class("leading-relaxed"), g.Text(s.Paragraph))
	}

	return Div(
		H3(Class("text-xl font-semibold mb-3"), g.Text(s.Heading)),
		body,
	)
}

func absoluteURL(baseURL, path string) string {
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + path
}
