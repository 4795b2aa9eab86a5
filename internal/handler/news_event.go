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

// NewsEventHandler serves news/event endpoints. The public site looks items
// up by slug; admin routes use the document id.
type NewsEventHandler struct {
	newsEventUsecase usecase.NewsEventUsecase
	responder        *httpio.Responder
}

// NewNewsEventHandler creates a new NewsEventHandler.
func NewNewsEventHandler(
	newsEventUsecase usecase.NewsEventUsecase,
	responder *httpio.Responder,
) *NewsEventHandler {
	return &NewsEventHandler{newsEventUsecase: newsEventUsecase, responder: responder}
}

func (h *NewsEventHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	var kind *string
	if k := queryParam(r, "kind"); k != "" {
		kind = &k
	}
	limit, offset := pagination(r)

	items, err := h.newsEventUsecase.ListPublishedNewsEvents(r.Context(), kind, limit, offset)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, items)
}

func (h *NewsEventHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	params := repository.FilterNewsEventsParams{}
	if k := queryParam(r, "kind"); k != "" {
		params.Kind = &k
	}
	params.Limit, params.Offset = pagination(r)

	items, err := h.newsEventUsecase.ListNewsEvents(r.Context(), params)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, items)
}

func (h *NewsEventHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.newsEventUsecase.GetNewsEventBySlug(r.Context(), urlParam(r, "slug"))
	if err != nil {
		h.responder.Error(w, r, mapNewsEventError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, item)
}

func (h *NewsEventHandler) Get(w http.ResponseWriter, r *http.Request) {
	item, err := h.newsEventUsecase.GetNewsEvent(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapNewsEventError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, item)
}

func (h *NewsEventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req payload.CreateNewsEventRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	item, err := h.newsEventUsecase.CreateNewsEvent(r.Context(), &model.NewsEvent{
		Title:       req.Title,
		Slug:        req.Slug,
		Kind:        req.Kind,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		EventDate:   req.EventDate,
		IsPublished: isPublished,
	})
	if err != nil {
		h.responder.Error(w, r, mapNewsEventError(err))
		return
	}

	h.responder.Success(w, http.StatusCreated, item)
}

func (h *NewsEventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req payload.UpdateNewsEventRequest
	if err := httpio.DecodeAndValidate(w, r, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	item, err := h.newsEventUsecase.UpdateNewsEvent(r.Context(), urlParam(r, "id"), repository.UpdateNewsEventParams{
		Title:       req.Title,
		Slug:        req.Slug,
		Kind:        req.Kind,
		Body:        req.Body,
		ImageURL:    req.ImageURL,
		EventDate:   req.EventDate,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		h.responder.Error(w, r, mapNewsEventError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, item)
}

func (h *NewsEventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	item, err := h.newsEventUsecase.DeleteNewsEvent(r.Context(), urlParam(r, "id"))
	if err != nil {
		h.responder.Error(w, r, mapNewsEventError(err))
		return
	}

	h.responder.Success(w, http.StatusOK, item)
}

func mapNewsEventError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNewsEventNotFound):
		return apperror.NotFound(err.Error())
	case errors.Is(err, usecase.ErrSlugExists):
		return apperror.BadRequest(apperror.CodeDuplicateField, err.Error())
	default:
		return err
	}
}
