package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/payload"
	"github.com/vasapolrittideah/corporate-site-api/internal/usecase"
)

// AuthHandler serves the authentication endpoints.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	responder   *httpio.Responder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authUsecase usecase.AuthUsecase, responder *httpio.Responder) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, responder: responder}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	account, tokenStr, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.responder.Error(w, r, mapAuthError(err))
		return
	}

	h.responder.Raw(w, http.StatusCreated, payload.AuthResponse{User: account, Token: tokenStr})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	account, tokenStr, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.responder.Error(w, r, mapAuthError(err))
		return
	}

	h.responder.Raw(w, http.StatusOK, payload.AuthResponse{User: account, Token: tokenStr})
}

func (h *AuthHandler) CreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	admin, err := h.authUsecase.CreateAdmin(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.responder.Error(w, r, mapAuthError(err))
		return
	}

	h.responder.Raw(w, http.StatusCreated, payload.CreateAdminResponse{Admin: admin})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	// The authentication middleware already loaded the account (hash
	// excluded); no second lookup is needed.
	account := httpio.AccountFromContext(r.Context())
	if account == nil {
		h.responder.Error(w, r, errors.New("me handler reached without an identity"))
		return
	}

	h.responder.Raw(w, http.StatusOK, payload.MeResponse{User: account})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	// Tokens are stateless; logout is a client-side discard. The endpoint
	// exists for API symmetry and still requires a valid token.
	h.responder.Success(w, http.StatusOK, nil)
}

func mapAuthError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrEmailExists):
		return apperror.BadRequest(apperror.CodeEmailExists, err.Error())
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return apperror.Unauthorized(apperror.CodeInvalidCredentials, "invalid email or password")
	case errors.Is(err, usecase.ErrAccountNotFound):
		return apperror.Unauthorized(apperror.CodeTokenInvalid, "invalid token")
	default:
		return err
	}
}
