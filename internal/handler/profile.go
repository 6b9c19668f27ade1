package handler

import (
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/go-chi/chi/v5"
)

type ProfileHandler struct {
	profiles *service.ProfileService
}

func NewProfileHandler(profiles *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// GetCandidate returns a candidate by anonymous id, redacted for the caller.
func (h *ProfileHandler) GetCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.profiles.Candidate(r.Context(), chi.URLParam(r, "anonymousID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}

func (h *ProfileHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.profiles.Company(r.Context(), chi.URLParam(r, "anonymousID"))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}

func (h *ProfileHandler) GetOwnCandidate(w http.ResponseWriter, r *http.Request) {
	c, err := h.profiles.OwnCandidate(r.Context(), viewer(r).UserID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}

func (h *ProfileHandler) UpdateOwnCandidate(w http.ResponseWriter, r *http.Request) {
	var input service.CandidateUpdate
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	c, err := h.profiles.UpdateCandidate(r.Context(), viewer(r).UserID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}

func (h *ProfileHandler) GetOwnCompany(w http.ResponseWriter, r *http.Request) {
	c, err := h.profiles.OwnCompany(r.Context(), viewer(r).UserID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}

func (h *ProfileHandler) UpdateOwnCompany(w http.ResponseWriter, r *http.Request) {
	var input service.CompanyUpdate
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	c, err := h.profiles.UpdateCompany(r.Context(), viewer(r).UserID, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, c)
}
