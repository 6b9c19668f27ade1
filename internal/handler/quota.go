package handler

import (
	"net/http"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/google/uuid"
)

type QuotaHandler struct {
	quotas *service.QuotaService
}

func NewQuotaHandler(quotas *service.QuotaService) *QuotaHandler {
	return &QuotaHandler{quotas: quotas}
}

// Status reports the caller's remaining postings this month.
func (h *QuotaHandler) Status(w http.ResponseWriter, r *http.Request) {
	st, err := h.quotas.Status(r.Context(), viewer(r))
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, st)
}

// Reconcile rebuilds counters for ?month=YYYY-MM (default current) and an
// optional ?industry_id.
func (h *QuotaHandler) Reconcile(w http.ResponseWriter, r *http.Request) {
	at := time.Now()
	if month := r.URL.Query().Get("month"); month != "" {
		parsed, err := time.Parse("2006-01", month)
		if err != nil {
			respondWithServiceError(w, r, &domain.ValidationError{Field: "month", Constraint: "datetime", Param: "2006-01"})
			return
		}
		// Mid-month, so the ledger's timezone cannot shift it across a boundary.
		at = parsed.AddDate(0, 0, 14)
	}

	industryID := uuid.Nil
	if raw := r.URL.Query().Get("industry_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondWithServiceError(w, r, &domain.ValidationError{Field: "industry_id", Constraint: "uuid"})
			return
		}
		industryID = id
	}

	res, err := h.quotas.Reconcile(r.Context(), at, industryID)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, res)
}
