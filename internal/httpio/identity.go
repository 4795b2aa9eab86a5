package httpio

import (
	"context"

	"github.com/vasapolrittideah/corporate-site-api/internal/model"
)

type contextKey int

const accountKey contextKey = iota

// ContextWithAccount returns a new context carrying the authenticated
// account. Attached exactly once per request by the authentication
// middleware.
func ContextWithAccount(ctx context.Context, account *model.Account) context.Context {
	return context.WithValue(ctx, accountKey, account)
}

// AccountFromContext retrieves the authenticated account, or nil for an
// unauthenticated request.
func AccountFromContext(ctx context.Context) *model.Account {
	account, _ := ctx.Value(accountKey).(*model.Account)
	return account
}

// CallerID returns the authenticated account id for logging, or "" if the
// request is anonymous.
func CallerID(ctx context.Context) string {
	if account := AccountFromContext(ctx); account != nil {
		return account.ID.Hex()
	}
	return ""
}
