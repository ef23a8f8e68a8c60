package render

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hasib2k/portfolio/internal/project"
	"github.com/hasib2k/portfolio/internal/publish"
	"github.com/hasib2k/portfolio/internal/server"
	"github.com/hasib2k/portfolio/internal/view"
)

// BenchmarkRenderProjectPage measures rendering of the project page tree.
func BenchmarkRenderProjectPage(b *testing.B) {
	p := project.CrossPlatformTesting()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := view.Render(io.Discard, view.ProjectPage(p, "https://hasib.dev")); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkServeProjectPage measures a full request through the router.
func BenchmarkServeProjectPage(b *testing.B) {
	h := server.NewRouter(server.NewHandler(""))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/projects/cross-platform-testing", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

// BenchmarkExportSite measures rendering every static page.
func BenchmarkExportSite(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := publish.Site(""); err != nil {
			b.Fatal(err)
		}
	}
}
