package handlers

import (
	"net/http"

	"blogicum/internal/models"
)

func (h *Handlers) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.LocationRepo.ListPublished(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	if locations == nil {
		locations = []models.Location{}
	}

	WriteSuccess(w, map[string]interface{}{"locations": locations}, http.StatusOK)
}
