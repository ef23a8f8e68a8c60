package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/hasib2k/portfolio/internal/project"
)

func parse(t *testing.T, b []byte) *html.Node {
	t.Helper()
	doc, err := html.Parse(bytes.NewReader(b))
	require.NoError(t, err)
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// findAll walks the tree in document order and returns matching nodes.
func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if match(n) {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func byRole(role string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "data-role") == role
	}
}

func text(n *html.Node) string {
	var sb strings.Builder
	for _, t := range findAll(n, func(n *html.Node) bool { return n.Type == html.TextNode }) {
		sb.WriteString(t.Data)
	}
	return strings.TrimSpace(sb.String())
}

func countText(doc *html.Node, s string) int {
	return len(findAll(doc, func(n *html.Node) bool {
		return n.Type == html.TextNode && strings.TrimSpace(n.Data) == s
	}))
}

func renderProject(t *testing.T, baseURL string) []byte {
	t.Helper()
	b, err := Bytes(ProjectPage(project.CrossPlatformTesting(), baseURL))
	require.NoError(t, err)
	return b
}

func TestProjectPage_TechnologiesInOrder(t *testing.T) {
	doc := parse(t, renderProject(t, ""))
	p := project.CrossPlatformTesting()

	badges := findAll(doc, byRole("technology"))
	require.Len(t, badges, len(p.Technologies))
	for i, tech := range p.Technologies {
		assert.Equal(t, tech, text(badges[i]))
	}
}

func TestProjectPage_FeaturesRenderedOnce(t *testing.T) {
	doc := parse(t, renderProject(t, ""))
	p := project.CrossPlatformTesting()

	cards := findAll(doc, byRole("feature"))
	require.Len(t, cards, len(p.Features))

	for i, f := range p.Features {
		assert.Equal(t, 1, countText(doc, f.Title), f.Title)
		assert.Equal(t, 1, countText(doc, f.Description), f.Description)

		icons := findAll(cards[i], func(n *html.Node) bool {
			return n.Type == html.ElementNode && attr(n, "data-icon") != ""
		})
		require.Len(t, icons, 1)
		assert.Equal(t, "lucide:"+f.Icon, attr(icons[0], "data-icon"))
	}
}

func TestProjectPage_Links(t *testing.T) {
	doc := parse(t, renderProject(t, ""))

	repo := findAll(doc, byRole("repository"))
	require.Len(t, repo, 1)
	assert.Equal(t, "https://github.com/hasib2k/cross-platform-testing", attr(repo[0], "href"))
	assert.Equal(t, "_blank", attr(repo[0], "target"))
	assert.Equal(t, "noopener noreferrer", attr(repo[0], "rel"))
	assert.Equal(t, "View Code", text(repo[0]))

	back := findAll(doc, byRole("back"))
	require.Len(t, back, 1)
	assert.Equal(t, "/projects", attr(back[0], "href"))
	assert.Equal(t, "Back to Projects", text(back[0]))
}

func TestProjectPage_Metadata(t *testing.T) {
	doc := parse(t, renderProject(t, ""))

	titles := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "title"
	})
	require.Len(t, titles, 1)
	assert.Equal(t, "Cross-Platform Testing Framework - Hasib Ahmed", text(titles[0]))

	desc := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "meta" && attr(n, "name") == "description"
	})
	require.Len(t, desc, 1)
	assert.Equal(t,
		"Python-based testing framework supporting web, API, and mobile testing with detailed reporting and CI/CD integration capabilities.",
		attr(desc[0], "content"))

	canonical := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "link" && attr(n, "rel") == "canonical"
	})
	assert.Empty(t, canonical)
}

func TestProjectPage_CanonicalURL(t *testing.T) {
	doc := parse(t, renderProject(t, "https://hasib.dev/"))

	canonical := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "link" && attr(n, "rel") == "canonical"
	})
	require.Len(t, canonical, 1)
	assert.Equal(t, "https://hasib.dev/projects/cross-platform-testing", attr(canonical[0], "href"))
}

func TestProjectPage_Architecture(t *testing.T) {
	doc := parse(t, renderProject(t, ""))

	panel := findAll(doc, byRole("architecture"))
	require.Len(t, panel, 1)

	items := findAll(panel[0], func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "li"
	})
	assert.Len(t, items, 6)
	assert.Equal(t, 1, countText(doc, "Framework Architecture"))
	assert.Equal(t, 1, countText(doc, "Enterprise Impact"))
}

func TestProjectPage_Idempotent(t *testing.T) {
	first := renderProject(t, "https://hasib.dev")
	second := renderProject(t, "https://hasib.dev")
	assert.Equal(t, first, second)
	assert.True(t, bytes.HasPrefix(first, []byte("<!DOCTYPE html>")))
}

func TestProjectsIndex(t *testing.T) {
	b, err := Bytes(ProjectsIndex(project.All(), ""))
	require.NoError(t, err)
	doc := parse(t, b)

	cards := findAll(doc, byRole("project"))
	require.Len(t, cards, 1)
	assert.Equal(t, "/projects/cross-platform-testing", attr(cards[0], "href"))
}

func TestErrorPage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ErrorPage(404, "Not Found", "The page you requested does not exist.")))
	doc := parse(t, buf.Bytes())

	assert.Equal(t, 1, countText(doc, "404"))
	assert.Equal(t, 1, countText(doc, "Not Found"))
	assert.Equal(t, 1, countText(doc, "The page you requested does not exist."))
}

func TestNotFoundPage(t *testing.T) {
	got, err := Bytes(NotFoundPage())
	require.NoError(t, err)
	want, err := Bytes(ErrorPage(404, NotFoundTitle, NotFoundMessage))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRedirectPage(t *testing.T) {
	b, err := Bytes(RedirectPage("/projects"))
	require.NoError(t, err)
	doc := parse(t, b)

	refresh := findAll(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.Data == "meta" && attr(n, "http-equiv") == "refresh"
	})
	require.Len(t, refresh, 1)
	assert.Equal(t, "0; url=/projects", attr(refresh[0], "content"))
}
