package handler

import (
	"net/http"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
)

// HealthHandler reports process and database health.
type HealthHandler struct {
	client    *mongo.Client
	responder *httpio.Responder
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(client *mongo.Client, responder *httpio.Responder) *HealthHandler {
	return &HealthHandler{client: client, responder: responder}
}

func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.client.Ping(r.Context(), readpref.Primary()); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Success(w, http.StatusOK, map[string]string{"database": "up"})
}
