// Package publish exports the site as static files and uploads them to an
// S3-compatible bucket.
package publish

import (
	"fmt"
	"os"
	"path/filepath"

	g "maragu.dev/gomponents"

	"github.com/hasib2k/portfolio/internal/project"
	"github.com/hasib2k/portfolio/internal/view"
)

const htmlContentType = "text/html; charset=utf-8"

// File is one rendered page of the static site.
type File struct {
	Key         string
	Body        []byte
	ContentType string
}

type page struct {
	key  string
	node g.Node
}

// Site renders every page of the site. Keys are relative paths such as
// "projects/cross-platform-testing/index.html".
func Site(baseURL string) ([]File, error) {
	projects := project.All()

	pages := []page{
		{"index.html", view.RedirectPage(project.ListPath)},
		{"404.html", view.NotFoundPage()},
		{"projects/index.html", view.ProjectsIndex(projects, baseURL)},
	}
	for _, p := range projects {
		pages = append(pages, page{"projects/" + p.Slug + "/index.html", view.ProjectPage(p, baseURL)})
	}

	files := make([]File, 0, len(pages))
	for _, p := range pages {
		body, err := view.Bytes(p.node)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s: %w", p.key, err)
		}
		files = append(files, File{
			Key:         p.key,
			Body:        body,
			ContentType: htmlContentType,
		})
	}

	return files, nil
}

// Page renders the page of a single project slug.
func Page(slug, baseURL string) (File, error) {
	p, err := project.Get(slug)
	if err != nil {
		return File{}, err
	}

	body, err := view.Bytes(view.ProjectPage(p, baseURL))
	if err != nil {
		return File{}, fmt.Errorf("failed to render %s: %w", slug, err)
	}

	return File{
		Key:         "projects/" + p.Slug + "/index.html",
		Body:        body,
		ContentType: htmlContentType,
	}, nil
}

// WriteDir writes files below dir, creating directories as needed.
func WriteDir(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, filepath.FromSlash(f.Key))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create directory for %s: %w", f.Key, err)
		}
		if err := os.WriteFile(path, f.Body, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", f.Key, err)
		}
	}
	return nil
}
