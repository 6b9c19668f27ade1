package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
		link bool
	}{
		{"validation", &domain.ValidationError{Field: "title", Constraint: "required"}, http.StatusBadRequest, "validation_failed", false},
		{"quota", &domain.QuotaExceededError{Category: "INTERNSHIP", Limit: 3}, http.StatusPaymentRequired, "quota_exceeded", true},
		{"workflow", &domain.WorkflowStateError{State: "TERMS_PENDING", Action: "acknowledge", Missing: []domain.Requirement{domain.RequirementScroll}}, http.StatusConflict, "workflow_state", false},
		{"in flight", domain.ErrDuplicateSubmission, http.StatusAccepted, "submission_in_flight", false},
		{"already applied", fmt.Errorf("apply: %w", domain.ErrAlreadyApplied), http.StatusConflict, "conflict", false},
		{"locked", domain.ErrOpportunityLocked, http.StatusLocked, "locked", false},
		{"premium", domain.ErrPremiumRequired, http.StatusForbidden, "premium_required", true},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "", false},
		{"credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "", false},
		{"not found", domain.ErrOpportunityNotFound, http.StatusNotFound, "", false},
		{"bad input", fmt.Errorf("%w: malformed id", domain.ErrInvalidInput), http.StatusBadRequest, "", false},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/submissions/x/submit", nil)

			respondWithServiceError(rec, req, tt.err)

			assert.Equal(t, tt.code, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Ok)
			assert.NotEmpty(t, body.Error)
			if tt.kind != "" {
				require.NotNil(t, body.Code)
				assert.Equal(t, tt.kind, *body.Code)
			}
			if tt.link {
				require.NotNil(t, body.Link)
				assert.Equal(t, upgradeLink, *body.Link)
			}
		})
	}
}

func TestWorkflowErrorListsMissingRequirements(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", nil)

	respondWithServiceError(rec, req, &domain.WorkflowStateError{
		State:   "TERMS_PENDING",
		Action:  "acknowledge",
		Missing: []domain.Requirement{domain.RequirementScroll, domain.RequirementDwellTime},
	})

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Details)
	assert.Equal(t, []string{"scroll", "dwell_time"}, *body.Details)
}

func TestUnknownErrorDoesNotLeakDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	respondWithServiceError(rec, req, errors.New("pq: relation \"users\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
}

func TestRespondWithViewRedactsForViewer(t *testing.T) {
	cand := &model.Candidate{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		AnonymousID: "cand-000123abc",
		FirstName:   "Priya",
		LastName:    "Sharma",
		Email:       "priya@example.com",
		Phone:       "+91 98765 43210",
	}
	now := time.Now()

	free := policy.NewViewer(uuid.New(), model.RoleIndustry, false, nil, now)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(policy.WithViewer(req.Context(), free))
	rec := httptest.NewRecorder()
	respondWithView(rec, req, http.StatusOK, cand)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "priya@example.com")
	assert.NotContains(t, rec.Body.String(), "Sharma")

	self := policy.NewViewer(cand.UserID, model.RoleCandidate, false, nil, now)
	req = req.WithContext(policy.WithViewer(req.Context(), self))
	rec = httptest.NewRecorder()
	respondWithView(rec, req, http.StatusOK, cand)

	assert.Contains(t, rec.Body.String(), "priya@example.com")
}

func TestReconcileRejectsMalformedMonth(t *testing.T) {
	h := NewQuotaHandler(nil)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/quota/reconcile?month=October", nil)
	rec := httptest.NewRecorder()

	h.Reconcile(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
