// Package httpio implements the request/response pipeline shared by every
// handler: JSON decoding with a body size cap, input sanitization,
// declarative validation, and the single central error responder that
// shapes every failure the API can produce.
package httpio

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
)

// Responder writes every response the API produces. It is the single place
// where failure shaping happens: handlers hand it raw errors and it decides
// status, code, and how much detail the client may see.
type Responder struct {
	logger     *zerolog.Logger
	production bool
}

// NewResponder creates a Responder. In production mode unclassified errors
// are collapsed to a generic body; in development they are returned with
// full detail including the stack.
func NewResponder(logger *zerolog.Logger, production bool) *Responder {
	return &Responder{logger: logger, production: production}
}

type successBody struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

type errorBody struct {
	Status  string                `json:"status"`
	Message string                `json:"message"`
	Code    string                `json:"code"`
	Details []apperror.FieldError `json:"details,omitempty"`
	Stack   string                `json:"stack,omitempty"`
}

// Success writes a success envelope.
func (rsp *Responder) Success(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, successBody{Status: "success", Data: data})
}

// Raw writes data as-is with the given status, without the envelope. Used
// by the auth endpoints whose response shapes predate the envelope.
func (rsp *Responder) Raw(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// Error classifies err and writes the uniform failure shape
// {status, message, code, details?}. Classification order: operational
// errors pass through; known driver and codec failures map to their codes;
// everything else branches on deployment mode.
func (rsp *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	if ww, ok := w.(chimiddleware.WrapResponseWriter); ok && ww.BytesWritten() > 0 {
		// A handler already responded and then failed; never double-respond.
		rsp.logger.Error().Err(err).
			Str("method", r.Method).
			Str("url", r.URL.String()).
			Msg("error after response was written")
		return
	}

	appErr := rsp.classify(err)

	if appErr.Status >= http.StatusInternalServerError {
		rsp.logRequestError(r, err)
	}

	body := errorBody{
		Status:  "error",
		Message: appErr.Message,
		Code:    appErr.Code,
		Details: appErr.Details,
	}

	if !rsp.production && appErr.Code == apperror.CodeInternalError {
		body.Message = err.Error()
		body.Stack = string(debug.Stack())
	}

	writeJSON(w, appErr.Status, body)
}

func (rsp *Responder) classify(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return apperror.New(http.StatusRequestEntityTooLarge, apperror.CodePayloadTooLarge,
			"request body is too large")
	case errors.As(err, &syntaxErr):
		return apperror.BadRequest(apperror.CodeJSONSyntaxError,
			"request body contains malformed JSON")
	case errors.As(err, &typeErr),
		errors.Is(err, errInvalidBody):
		return apperror.BadRequest(apperror.CodeInvalidJSON,
			"request body is not valid JSON")
	case errors.Is(err, bson.ErrInvalidHex):
		return apperror.BadRequest(apperror.CodeInvalidID,
			"the provided id is not a valid identifier")
	case mongo.IsDuplicateKeyError(err):
		return apperror.BadRequest(apperror.CodeDuplicateField,
			"a record with this value already exists")
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperror.Unauthorized(apperror.CodeTokenExpired,
			"token has expired")
	case errors.Is(err, jwt.ErrTokenMalformed), errors.Is(err, jwt.ErrSignatureInvalid):
		return apperror.Unauthorized(apperror.CodeTokenInvalid,
			"token is invalid")
	default:
		return apperror.New(http.StatusInternalServerError, apperror.CodeInternalError,
			"Something went wrong!")
	}
}

func (rsp *Responder) logRequestError(r *http.Request, err error) {
	caller := "anonymous"
	if id := CallerID(r.Context()); id != "" {
		caller = id
	}

	rsp.logger.Error().Err(err).
		Str("method", r.Method).
		Str("url", r.URL.String()).
		Str("ip", r.RemoteAddr).
		Str("user_agent", r.UserAgent()).
		Str("caller", caller).
		Str("stack", string(debug.Stack())).
		Msg("request failed")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
