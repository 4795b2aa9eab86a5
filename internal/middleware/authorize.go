package middleware

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
)

// RequireRole rejects requests whose authenticated identity does not hold
// exactly the required role. It must run after Authenticate: a missing
// identity is a route-wiring mistake, not a client error, so it fails
// closed with a 500 rather than a 401.
func RequireRole(responder *httpio.Responder, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			account := httpio.AccountFromContext(r.Context())
			if account == nil {
				responder.Error(w, r, errors.New("authorization ran before authentication"))
				return
			}

			if account.Role != role {
				responder.Error(w, r, apperror.Forbidden(
					"your role ("+account.Role+") is not permitted to perform this action"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
