package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/payload"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/usecase"
)

// AccountHandler serves the admin account management endpoints. Accounts are
// never deleted, only deactivated.
type AccountHandler struct {
	authUsecase usecase.AuthUsecase
	responder   *httpio.Responder
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(authUsecase usecase.AuthUsecase, responder *httpio.Responder) *AccountHandler {
	return &AccountHandler{authUsecase: authUsecase, responder: responder}
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	params := repository.FilterAccountsParams{}
	if v := queryParam(r, "role"); v != "" {
		params.Role = &v
	}
	switch queryParam(r, "active") {
	case "true":
		v := true
		params.IsActive = &v
	case "false":
		v := false
		params.IsActive = &v
	}
	params.Limit, params.Offset = pagination(r)

	accounts, err := h.authUsecase.ListAccounts(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, accounts)
}

func (h *AccountHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	var req payload.SetAccountActiveRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	account, err := h.authUsecase.SetAccountActive(r.Context(), urlParam(r, "id"), *req.Active)
	if err != nil {
		h.responder.Error(w, r, mapAccountError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, account)
}

func mapAccountError(err error) error {
	if errors.Is(err, usecase.ErrAccountNotFound) {
		return apperror.NotFound(err.Error())
	}
	return err
}
