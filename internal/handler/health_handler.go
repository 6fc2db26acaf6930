package handler

import (
	"net/http"

	"employee-registry/internal/database"
	"employee-registry/internal/model"
)

type HealthHandler struct {
	db *database.DB
}

func NewHealthHandler(db *database.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, model.StatusResponse{Status: "unhealthy"})
		return
	}

	writeJSON(w, http.StatusOK, model.StatusResponse{Status: "healthy"})
}
