package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/vasapolrittideah/corporate-site-api/internal/apperror"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/model"
	"github.com/vasapolrittideah/corporate-site-api/internal/payload"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/usecase"
)

// CareerHandler serves job posting endpoints. Public routes only expose
// open postings; admin routes see everything.
type CareerHandler struct {
	careerUsecase usecase.CareerUsecase
	responder     *httpio.Responder
}

// NewCareerHandler creates a new CareerHandler.
func NewCareerHandler(careerUsecase usecase.CareerUsecase, responder *httpio.Responder) *CareerHandler {
	return &CareerHandler{careerUsecase: careerUsecase, responder: responder}
}

func (h *CareerHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	var department *string
	if d := queryParam(r, "department"); d != "" {
		department = &d
	}
	limit, offset := pagination(r)

	careers, err := h.careerUsecase.ListOpenCareers(r.Context(), department, limit, offset)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, careers)
}

func (h *CareerHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	var department *string
	if d := queryParam(r, "department"); d != "" {
		department = &d
	}
	limit, offset := pagination(r)

	careers, err := h.careerUsecase.ListCareers(r.Context(), repository.FilterCareersParams{
		Department: department,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, careers)
}

func (h *CareerHandler) Get(w http.ResponseWriter, r *http.Request) {
	career, err := h.careerUsecase.GetCareer(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapCareerError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, career)
}

func (h *CareerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateCareerRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	isOpen := true
	if req.IsOpen != nil {
		isOpen = *req.IsOpen
	}

	career, err := h.careerUsecase.CreateCareer(r.Context(), &model.Career{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		IsOpen:       isOpen,
		Deadline:     req.Deadline,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, career)
}

func (h *CareerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateCareerRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	career, err := h.careerUsecase.UpdateCareer(r.Context(), urlParam(r, "id"), repository.UpdateCareerParams{
		Title:        req.Title,
		Department:   req.Department,
		Location:     req.Location,
		Type:         req.Type,
		Description:  req.Description,
		Requirements: req.Requirements,
		SalaryRange:  req.SalaryRange,
		IsOpen:       req.IsOpen,
		Deadline:     req.Deadline,
	})
	if err != nil {
		h.responder.Error(w, r, mapCareerError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, career)
}

func (h *CareerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	career, err := h.careerUsecase.DeleteCareer(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapCareerError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, career)
}

func mapCareerError(err error) error {
	if errors.Is(err, usecase.ErrCareerNotFound) {
		return apperror.NotFound(err.Error())
	}
	return err
}

func pagination(r *http.Request) (limit, offset int64) {
	if v, err := strconv.ParseInt(queryParam(r, "limit"), 10, 64); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	if v, err := strconv.ParseInt(queryParam(r, "offset"), 10, 64); err == nil && v > 0 {
		offset = v
	}
	return limit, offset
}
