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

// ApplicationHandler serves career application endpoints. Submission is
// public; everything else is admin-only.
type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
	responder          *httpio.Responder
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(
	applicationUsecase usecase.ApplicationUsecase,
	responder *httpio.Responder,
) *ApplicationHandler {
	return &ApplicationHandler{applicationUsecase: applicationUsecase, responder: responder}
}

func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req payload.SubmitApplicationRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	application, err := h.applicationUsecase.SubmitApplication(r.Context(), usecase.SubmitApplicationParams{
		CareerID:    urlParam(r, "id"),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		CoverLetter: req.CoverLetter,
		ResumeURL:   req.ResumeURL,
	})
	if err != nil {
		h.responder.Error(w, r, mapApplicationError(err))
		return
	}

	h.responder.Success(w, http.StatusCreated, application)
}

func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	params := repository.FilterApplicationsParams{}
	if v := queryParam(r, "career_id"); v != "" {
		params.CareerID = &v
	}
	if v := queryParam(r, "status"); v != "" {
		params.Status = &v
	}
	params.Limit, params.Offset = pagination(r)

	applications, err := h.applicationUsecase.ListApplications(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, applications)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	application, err := h.applicationUsecase.GetApplication(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapApplicationError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, application)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateApplicationStatusRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	application, err := h.applicationUsecase.UpdateApplicationStatus(r.Context(), urlParam(r, "id"), req.Status)
	if err != nil {
		h.responder.Error(w, r, mapApplicationError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, application)
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrApplicationNotFound), errors.Is(err, usecase.ErrCareerNotFound):
		return apperror.NotFound(err.Error())
	case errors.Is(err, usecase.ErrCareerClosed):
		return apperror.BadRequest(apperror.CodeCareerClosed, err.Error())
	default:
		return err
	}
}
