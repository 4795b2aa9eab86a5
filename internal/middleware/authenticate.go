// Package middleware implements the request pipeline stages that sit
// between the router and the handlers: authentication, role authorization,
// panic recovery, and request logging.
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/token"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Authenticator authenticates requests: it extracts the bearer token,
// verifies it, loads the referenced account, and attaches it to the request
// context. Missing and deactivated accounts are indistinguishable from an
// invalid token on the wire.
type Authenticator struct {
	tokens      *token.Service
	accountRepo repository.AccountRepository
	responder   *httpio.Responder
}

// NewAuthenticator creates an Authenticator.
func NewAuthenticator(
	tokens *token.Service,
	accountRepo repository.AccountRepository,
	responder *httpio.Responder,
) *Authenticator {
	return &Authenticator{
		tokens:      tokens,
		accountRepo: accountRepo,
		responder:   responder,
	}
}

// Authenticate is the middleware stage.
func (a *Authenticator) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, ok := extractBearer(r)
		if !ok {
			a.responder.Error(w, r, apperror.Unauthorized(apperror.CodeNoToken,
				"you are not logged in; please provide a token"))
			return
		}

		claims, err := a.tokens.Verify(tokenString)
		if err != nil {
			a.responder.Error(w, r, mapVerifyError(err))
			return
		}

		account, err := a.accountRepo.GetAccount(r.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				a.responder.Error(w, r, invalidTokenError())
				return
			}

			a.responder.Error(w, r, err)
			return
		}

		if !account.IsActive {
			a.responder.Error(w, r, invalidTokenError())
			return
		}

		next.ServeHTTP(w, r.WithContext(httpio.ContextWithAccount(r.Context(), account)))
	})
}

func extractBearer(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.Fields(header)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	return parts[1], true
}

func mapVerifyError(err error) error {
	switch {
	case errors.Is(err, token.ErrTokenExpired):
		return apperror.Unauthorized(apperror.CodeTokenExpired,
			"your token has expired; please log in again")
	default:
		return invalidTokenError()
	}
}

func invalidTokenError() error {
	return apperror.Unauthorized(apperror.CodeTokenInvalid, "invalid token")
}
