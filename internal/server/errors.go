package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/hasib2k/portfolio/internal/view"
)

// PageError is an HTTP error rendered as an HTML page.
type PageError struct {
	Status  int
	Title   string
	Message string
}

func (e *PageError) Error() string {
	return e.Message
}

// Common page errors
var (
	ErrNotFound = &PageError{
		Status:  http.StatusNotFound,
		Title:   view.NotFoundTitle,
		Message: view.NotFoundMessage,
	}

	ErrMethodNotAllowed = &PageError{
		Status:  http.StatusMethodNotAllowed,
		Title:   "Method Not Allowed",
		Message: "The requested method is not allowed for this page.",
	}

	ErrInternal = &PageError{
		Status:  http.StatusInternalServerError,
		Title:   "Internal Server Error",
		Message: "We encountered an internal error. Please try again.",
	}
)

// WriteError writes err as an HTML error page.
func WriteError(w http.ResponseWriter, r *http.Request, err *PageError) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(err.Status)

	if r.Method == http.MethodHead {
		return
	}

	if rerr := view.Render(w, view.ErrorPage(err.Status, err.Title, err.Message)); rerr != nil {
		log.Error().
			Err(rerr).
			Str("request_id", RequestID(r.Context())).
			Msg("Failed to render error page")
	}
}
