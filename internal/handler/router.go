package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/middleware"
	"github.com/vasapolrittideah/corporate-site-api/internal/model"
)

// Handlers bundles every resource handler for route registration.
type Handlers struct {
	Auth        *AuthHandler
	Account     *AccountHandler
	Career      *CareerHandler
	Application *ApplicationHandler
	Inquiry     *InquiryHandler
	CSRProject  *CSRProjectHandler
	NewsEvent   *NewsEventHandler
	Health      *HealthHandler
}

// NewRouter builds the full route table. Every request passes through the
// request logger and panic recovery; authenticated routes additionally pass
// through Authenticate, and admin routes through RequireRole(admin).
func NewRouter(
	h Handlers,
	authn *middleware.Authenticator,
	responder *httpio.Responder,
) chi.Router {
	r := chi.NewRouter()

	requireAdmin := middleware.RequireRole(responder, model.RoleAdmin)

	r.Get("/healthz", h.Health.Check)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(authn.Authenticate)
				r.Get("/me", h.Auth.Me)
				r.Post("/logout", h.Auth.Logout)

				r.With(requireAdmin).Post("/create-admin", h.Auth.CreateAdmin)
			})
		})

		r.Route("/accounts", func(r chi.Router) {
			r.Use(authn.Authenticate, requireAdmin)
			r.Get("/", h.Account.List)
			r.Patch("/{id}/active", h.Account.SetActive)
		})

		r.Route("/careers", func(r chi.Router) {
			r.Get("/", h.Career.ListOpen)
			r.Get("/{id}", h.Career.Get)
			r.Post("/{id}/apply", h.Application.Submit)

			r.Group(func(r chi.Router) {
				r.Use(authn.Authenticate, requireAdmin)
				r.Get("/all", h.Career.ListAll)
				r.Post("/", h.Career.Create)
				r.Patch("/{id}", h.Career.Update)
				r.Delete("/{id}", h.Career.Delete)
			})
		})

		r.Route("/applications", func(r chi.Router) {
			r.Use(authn.Authenticate, requireAdmin)
			r.Get("/", h.Application.List)
			r.Get("/{id}", h.Application.Get)
			r.Patch("/{id}/status", h.Application.UpdateStatus)
		})

		r.Route("/clients", func(r chi.Router) {
			r.Post("/", h.Inquiry.Submit)

			r.Group(func(r chi.Router) {
				r.Use(authn.Authenticate, requireAdmin)
				r.Get("/", h.Inquiry.List)
				r.Get("/{id}", h.Inquiry.Get)
				r.Patch("/{id}/handled", h.Inquiry.MarkHandled)
			})
		})

		r.Route("/csr", func(r chi.Router) {
			r.Get("/", h.CSRProject.ListPublished)
			r.Get("/{id}", h.CSRProject.Get)

			r.Group(func(r chi.Router) {
				r.Use(authn.Authenticate, requireAdmin)
				r.Get("/all", h.CSRProject.ListAll)
				r.Post("/", h.CSRProject.Create)
				r.Patch("/{id}", h.CSRProject.Update)
				r.Delete("/{id}", h.CSRProject.Delete)
			})
		})

		r.Route("/news", func(r chi.Router) {
			r.Get("/", h.NewsEvent.ListPublished)
			r.Get("/slug/{slug}", h.NewsEvent.GetBySlug)

			r.Group(func(r chi.Router) {
				r.Use(authn.Authenticate, requireAdmin)
				r.Get("/all", h.NewsEvent.ListAll)
				r.Get("/{id}", h.NewsEvent.Get)
				r.Post("/", h.NewsEvent.Create)
				r.Patch("/{id}", h.NewsEvent.Update)
				r.Delete("/{id}", h.NewsEvent.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		responder.Error(w, req, apperror.NotFound("no route for "+req.URL.Path))
	})

	return r
}
