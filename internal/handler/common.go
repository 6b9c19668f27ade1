package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/serializer"
	"github.com/go-chi/chi/v5"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// upgradeLink is sent with premium and quota errors.
const upgradeLink = "/premium"

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

type ListResponse struct {
	BaseResponse
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// respondWithView projects a model for the request's viewer before encoding.
func respondWithView(w http.ResponseWriter, r *http.Request, code int, m any) {
	view, err := serializer.Project(r.Context(), m)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, code, view)
}

// respondWithList projects items and wraps them with the total count.
func respondWithList(w http.ResponseWriter, r *http.Request, items any, total int64) {
	view, err := serializer.Project(r.Context(), items)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusOK, ListResponse{BaseResponse: BaseResponse{Ok: true}, Items: view, Total: total})
}

func ptr[T any](v T) *T { return &v }

// respondWithServiceError maps domain errors onto HTTP responses.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	requestID := chmw.GetReqID(ctx)

	var (
		validationErr *domain.ValidationError
		quotaErr      *domain.QuotaExceededError
		workflowErr   *domain.WorkflowStateError
	)
	switch {
	case errors.As(err, &validationErr):
		respondWithJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   validationErr.Error(),
			Details: &[]string{validationErr.Field},
			Code:    ptr("validation_failed"),
		})
	case errors.As(err, &quotaErr):
		slog.InfoContext(ctx, "Quota denied", "category", quotaErr.Category, "limit", quotaErr.Limit, "requestID", requestID)
		respondWithJSON(w, http.StatusPaymentRequired, ErrorResponse{
			Error:   quotaErr.Error(),
			Details: &[]string{quotaErr.Category, strconv.Itoa(quotaErr.Limit)},
			Code:    ptr("quota_exceeded"),
			Link:    ptr(upgradeLink),
		})
	case errors.As(err, &workflowErr):
		missing := make([]string, len(workflowErr.Missing))
		for i, m := range workflowErr.Missing {
			missing[i] = string(m)
		}
		respondWithJSON(w, http.StatusConflict, ErrorResponse{
			Error:   workflowErr.Error(),
			Details: &missing,
			Code:    ptr("workflow_state"),
		})
	case errors.Is(err, domain.ErrDuplicateSubmission):
		respondWithJSON(w, http.StatusAccepted, ErrorResponse{Error: err.Error(), Code: ptr("submission_in_flight")})
	case errors.Is(err, domain.ErrAlreadyApplied), errors.Is(err, domain.ErrEmailAlreadyExists):
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error(), Code: ptr("conflict")})
	case errors.Is(err, domain.ErrInvalidStatusTransition), errors.Is(err, domain.ErrOpportunityClosed):
		respondWithJSON(w, http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrOpportunityLocked):
		respondWithJSON(w, http.StatusLocked, ErrorResponse{Error: err.Error(), Code: ptr("locked")})
	case errors.Is(err, domain.ErrPremiumRequired):
		respondWithJSON(w, http.StatusForbidden, ErrorResponse{Error: err.Error(), Code: ptr("premium_required"), Link: ptr(upgradeLink)})
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusForbidden, "Forbidden")
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrUnauthorized):
		respondWithError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrPasswordTooWeak):
		respondWithError(w, http.StatusBadRequest, "Password does not meet requirements")
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrCandidateNotFound),
		errors.Is(err, domain.ErrCompanyNotFound),
		errors.Is(err, domain.ErrOpportunityNotFound),
		errors.Is(err, domain.ErrApplicationNotFound),
		errors.Is(err, domain.ErrSubmissionNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrInvalidIdentifier):
		slog.ErrorContext(ctx, "Profile without anonymous identifier", "error", err, "requestID", requestID)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	default:
		slog.ErrorContext(ctx, "Request failed", "error", err, "path", r.URL.Path, "requestID", requestID)
		respondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func viewer(r *http.Request) policy.Viewer {
	v, _ := policy.ViewerFromContext(r.Context())
	return v
}

func decodeJSON(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", domain.ErrInvalidInput)
	}
	return nil
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: malformed %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

func pageFrom(r *http.Request) repository.Page {
	var p repository.Page
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		p.Limit = limit
	}
	if offset, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && offset >= 0 {
		p.Offset = offset
	}
	return p
}
