package testutil

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Page is a fetched and parsed HTML response.
type Page struct {
	Status int
	Header http.Header
	Body   string
	Doc    *html.Node
}

// Client returns an HTTP client that does not follow redirects.
func (ts *TestServer) Client() *http.Client {
	return &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Get fetches path from the test server and parses the body as HTML.
func (ts *TestServer) Get(t *testing.T, path string) *Page {
	t.Helper()

	resp, err := ts.Client().Get(ts.Endpoint + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read body: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		t.Fatalf("failed to parse %s: %v", path, err)
	}

	return &Page{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   string(body),
		Doc:    doc,
	}
}

// FindAll returns the nodes matching match in document order.
func (p *Page) FindAll(match func(*html.Node) bool) []*html.Node {
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
	walk(p.Doc)
	return out
}

// ByRole returns the elements carrying data-role="role".
func (p *Page) ByRole(role string) []*html.Node {
	return p.FindAll(func(n *html.Node) bool {
		return n.Type == html.ElementNode && Attr(n, "data-role") == role
	})
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Text returns the trimmed text content of n.
func Text(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
