package httpio

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
)

func testResponder(production bool) *Responder {
	logger := zerolog.Nop()
	return NewResponder(&logger, production)
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestError_ProductionHidesUnclassifiedErrors(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)

	rsp.Error(rec, req, errors.New("database password is hunter2"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Something went wrong!", body["message"])
	assert.Equal(t, apperror.CodeInternalError, body["code"])
	assert.NotContains(t, rec.Body.String(), "hunter2")
}

func TestError_DevelopmentShowsDetail(t *testing.T) {
	t.Parallel()

	rsp := testResponder(false)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)

	rsp.Error(rec, req, errors.New("exact failure detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, "exact failure detail", body["message"])
	assert.NotEmpty(t, body["stack"])
}

func TestError_OperationalErrorPassesThrough(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", nil)

	rsp.Error(rec, req, apperror.BadRequest(apperror.CodeEmailExists, "an account with this email already exists"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeErrorBody(t, rec)
	assert.Equal(t, apperror.CodeEmailExists, body["code"])
	assert.Equal(t, "an account with this email already exists", body["message"])
}

func TestError_InvalidObjectID(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/careers/zzz", nil)

	_, err := bson.ObjectIDFromHex("zzz")
	require.Error(t, err)

	rsp.Error(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperror.CodeInvalidID, decodeErrorBody(t, rec)["code"])
}

func TestError_InvalidObjectID_NonHexWithCorrectLength(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/careers/zzzzzzzzzzzzzzzzzzzzzzzz", nil)

	// Repositories normalize hex decode failures (24 characters, bad
	// bytes) by wrapping ErrInvalidHex; the wrapped form must classify
	// the same as the sentinel itself.
	err := fmt.Errorf("invalid object id %q: %w", "zzzzzzzzzzzzzzzzzzzzzzzz", bson.ErrInvalidHex)

	rsp.Error(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperror.CodeInvalidID, decodeErrorBody(t, rec)["code"])
}

func TestError_OversizedBody(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)

	rsp.Error(rec, req, &http.MaxBytesError{Limit: maxBodyBytes})

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, apperror.CodePayloadTooLarge, decodeErrorBody(t, rec)["code"])
}

func TestError_JSONSyntax(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/clients", nil)

	var dst map[string]any
	err := json.Unmarshal([]byte("{not json"), &dst)
	require.Error(t, err)

	rsp.Error(rec, req, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apperror.CodeJSONSyntaxError, decodeErrorBody(t, rec)["code"])
}

func TestError_NeverDoubleResponds(t *testing.T) {
	t.Parallel()

	rsp := testResponder(true)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	ww := chimiddleware.NewWrapResponseWriter(rec, req.ProtoMajor)
	ww.WriteHeader(http.StatusOK)
	_, _ = ww.Write([]byte(`{"status":"success"}`))

	rsp.Error(ww, req, errors.New("late failure"))

	// The original response must be untouched.
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"success"}`, rec.Body.String())
}
