package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	g "maragu.dev/gomponents"

	"github.com/hasib2k/portfolio/internal/project"
	"github.com/hasib2k/portfolio/internal/view"
)

// Handler serves the portfolio pages.
type Handler struct {
	baseURL string
}

// NewHandler creates a new Handler. baseURL is used for canonical links
// and may be empty.
func NewHandler(baseURL string) *Handler {
	return &Handler{
		baseURL: baseURL,
	}
}

// Index handles GET / by redirecting to the project listing.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, project.ListPath, http.StatusFound)
}

// ListProjects handles GET /projects.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, view.ProjectsIndex(project.All(), h.baseURL))
}

// ShowProject handles GET /projects/{slug}.
func (h *Handler) ShowProject(w http.ResponseWriter, r *http.Request) {
	p, err := project.Get(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			WriteError(w, r, ErrNotFound)
			return
		}
		WriteError(w, r, ErrInternal)
		return
	}

	h.writePage(w, r, view.ProjectPage(p, h.baseURL))
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, ErrNotFound)
}

// MethodNotAllowed renders the 405 page.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, HEAD")
	WriteError(w, r, ErrMethodNotAllowed)
}

// writePage renders n fully before writing so a render failure can still
// produce a clean 500.
func (h *Handler) writePage(w http.ResponseWriter, r *http.Request, n g.Node) {
	body, err := view.Bytes(n)
	if err != nil {
		log.Error().
			Err(err).
			Str("path", r.URL.Path).
			Str("request_id", RequestID(r.Context())).
			Msg("Failed to render page")
		WriteError(w, r, ErrInternal)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
