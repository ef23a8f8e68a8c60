// Package project holds the static content rendered by the portfolio site.
package project

import (
	"errors"
)

// ErrNotFound is returned when no project matches a slug.
var ErrNotFound = errors.New("project not found")

// ListPath is the path of the project listing page.
const ListPath = "/projects"

// Metadata is the document-level title and description of a page.
type Metadata struct {
	Title       string
	Description string
}

// Feature is a card in the feature grid.
type Feature struct {
	Icon        string
	Title       string
	Description string
}

// Section is one block of the architecture panel. A section carries either
// a paragraph or a bullet list.
type Section struct {
	Heading   string
	Paragraph string
	Bullets   []string
}

// Project describes a single portfolio entry.
type Project struct {
	Slug         string
	Name         string
	Summary      string
	Metadata     Metadata
	Technologies []string
	Features     []Feature
	RepoURL      string
	Architecture []Section
}

// Path returns the site path of the project page.
func (p Project) Path() string {
	return ListPath + "/" + p.Slug
}

// clone returns a deep copy so callers never share slices with the catalog.
func (p Project) clone() Project {
	c := p
	c.Technologies = append([]string(nil), p.Technologies...)
	c.Features = append([]Feature(nil), p.Features...)
	c.Architecture = make([]Section, len(p.Architecture))
	for i, s := range p.Architecture {
		s.Bullets = append([]string(nil), s.Bullets...)
		c.Architecture[i] = s
	}
	return c
}
