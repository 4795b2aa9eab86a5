package handler

import (
	"errors"
	"net/http"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/payload"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/usecase"
)

// CSRProjectHandler serves CSR project endpoints.
type CSRProjectHandler struct {
	projectUsecase usecase.CSRProjectUsecase
	responder      *httpio.Responder
}

// NewCSRProjectHandler creates a new CSRProjectHandler.
func NewCSRProjectHandler(
	projectUsecase usecase.CSRProjectUsecase,
	responder *httpio.Responder,
) *CSRProjectHandler {
	return &CSRProjectHandler{projectUsecase: projectUsecase, responder: responder}
}

func (h *CSRProjectHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	projects, err := h.projectUsecase.ListPublishedCSRProjects(r.Context(), limit, offset)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, projects)
}

func (h *CSRProjectHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r)

	projects, err := h.projectUsecase.ListCSRProjects(r.Context(), repository.FilterCSRProjectsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, projects)
}

func (h *CSRProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectUsecase.GetCSRProject(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapCSRProjectError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, project)
}

func (h *CSRProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateCSRProjectRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	project, err := h.projectUsecase.CreateCSRProject(r.Context(), &model.CSRProject{
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		StartedAt:   req.StartedAt,
		IsPublished: isPublished,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, project)
}

func (h *CSRProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateCSRProjectRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	project, err := h.projectUsecase.UpdateCSRProject(r.Context(), urlParam(r, "id"), repository.UpdateCSRProjectParams{
		Title:       req.Title,
		Summary:     req.Summary,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		StartedAt:   req.StartedAt,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.responder.Error(w, r, mapCSRProjectError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, project)
}

func (h *CSRProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	project, err := h.projectUsecase.DeleteCSRProject(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapCSRProjectError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, project)
}

func mapCSRProjectError(err error) error {
	if errors.Is(err, usecase.ErrCSRProjectNotFound) {
		return apperror.NotFound(err.Error())
	}
	return err
}
