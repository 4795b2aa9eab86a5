package middleware

import (
	"fmt"
	"net/http"

	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
)

// Recover turns handler panics into a response from the central responder
// instead of crashing the connection. http.ErrAbortHandler is re-raised, as
// the server uses it for intentional aborts.
func Recover(responder *httpio.Responder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if rec == http.ErrAbortHandler {
						panic(rec)
					}

					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", rec)
					}
					responder.Error(w, r, err)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
