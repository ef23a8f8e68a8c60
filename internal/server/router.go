package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter builds the site router with its middleware stack.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.GetHead)

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.Index)
	r.Get("/health", handler.Health)
	r.Get("/projects", handler.ListProjects)
	r.Get("/projects/{slug}", handler.ShowProject)

	return r
}
