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

// InquiryHandler serves client inquiry endpoints.
type InquiryHandler struct {
	inquiryUsecase usecase.InquiryUsecase
	responder      *httpio.Responder
}

// NewInquiryHandler creates a new InquiryHandler.
func NewInquiryHandler(inquiryUsecase usecase.InquiryUsecase, responder *httpio.Responder) *InquiryHandler {
	return &InquiryHandler{inquiryUsecase: inquiryUsecase, responder: responder}
}

func (h *InquiryHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req payload.SubmitInquiryRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	inquiry, err := h.inquiryUsecase.SubmitInquiry(r.Context(), &model.ClientInquiry{
		Company:     req.Company,
		ContactName: req.ContactName,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
	})
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusCreated, inquiry)
}

func (h *InquiryHandler) List(w http.ResponseWriter, r *http.Request) {
	params := repository.FilterInquiriesParams{}
	switch queryParam(r, "handled") {
	case "true":
		v := true
		params.IsHandled = &v
	case "false":
		v := false
		params.IsHandled = &v
	}
	params.Limit, params.Offset = pagination(r)

	inquiries, err := h.inquiryUsecase.ListInquiries(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, inquiries)
}

func (h *InquiryHandler) Get(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.inquiryUsecase.GetInquiry(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapInquiryError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, inquiry)
}

func (h *InquiryHandler) MarkHandled(w http.ResponseWriter, r *http.Request) {
	inquiry, err := h.inquiryUsecase.MarkInquiryHandled(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapInquiryError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, inquiry)
}

func mapInquiryError(err error) error {
	if errors.Is(err, usecase.ErrInquiryNotFound) {
		return apperror.NotFound(err.Error())
	}
	return err
}
