package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
)

// urlParam returns a sanitized chi route parameter.
func urlParam(r *http.Request, name string) string {
	return httpio.CleanParam(chi.URLParam(r, name))
}

// queryParam returns a sanitized query string value.
func queryParam(r *http.Request, name string) string {
	return httpio.CleanParam(r.URL.Query().Get(name))
}
