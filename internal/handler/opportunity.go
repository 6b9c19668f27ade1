package handler

import (
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/service"
)

type OpportunityHandler struct {
	opportunities *service.OpportunityService
	applications  *service.ApplicationService
}

func NewOpportunityHandler(opportunities *service.OpportunityService, applications *service.ApplicationService) *OpportunityHandler {
	return &OpportunityHandler{opportunities: opportunities, applications: applications}
}

func (h *OpportunityHandler) Browse(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, total, err := h.opportunities.Browse(r.Context(), viewer(r), service.BrowseInput{
		Type:   model.OpportunityType(q.Get("type")),
		Search: q.Get("q"),
		Page:   pageFrom(r),
	})
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithList(w, r, items, total)
}

func (h *OpportunityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	o, err := h.opportunities.Get(r.Context(), viewer(r), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, o)
}

func (h *OpportunityHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.opportunities.ListOwn(r.Context(), viewer(r), pageFrom(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithList(w, r, items, total)
}

func (h *OpportunityHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	items, total, err := h.opportunities.ListPending(r.Context(), pageFrom(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithList(w, r, items, total)
}

func (h *OpportunityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	var input service.OpportunityUpdate
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	v := viewer(r)
	update := h.opportunities.Update
	if v.Role == model.RoleAdmin {
		update = h.opportunities.SupportEdit
	}
	o, err := update(r.Context(), v, id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, o)
}

func (h *OpportunityHandler) Review(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	var input service.ReviewInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	o, err := h.opportunities.Review(r.Context(), viewer(r), id, input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithView(w, r, http.StatusOK, o)
}

func (h *OpportunityHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if err := h.opportunities.Deactivate(r.Context(), viewer(r), id); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, BaseResponse{Ok: true})
}

// Applications lists what an opportunity received, candidates redacted.
func (h *OpportunityHandler) Applications(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	items, total, err := h.applications.ListForOpportunity(r.Context(), viewer(r), id, pageFrom(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithList(w, r, items, total)
}
