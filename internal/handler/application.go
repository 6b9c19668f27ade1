package handler

import (
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/service"
)

type ApplicationHandler struct {
	applications *service.ApplicationService
}

func NewApplicationHandler(applications *service.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applications: applications}
}

func (h *ApplicationHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.applications.ListOwn(r.Context(), viewer(r), pageFrom(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithList(w, r, items, total)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	a, err := h.applications.Get(r.Context(), viewer(r), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, a)
}

func (h *ApplicationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	var input service.StatusInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	a, err := h.applications.UpdateStatus(r.Context(), viewer(r), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, a)
}
