package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
)

// SubmissionHandler exposes each workflow transition as its own endpoint.
type SubmissionHandler struct {
	submissions *service.SubmissionService
}

func NewSubmissionHandler(submissions *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissions: submissions}
}

func (h *SubmissionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var input service.StartInput
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	st, err := h.submissions.Start(r.Context(), viewer(r), input)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, st)
}

type transition func(ctx context.Context, v policy.Viewer, id uuid.UUID) (*service.SubmissionStatus, error)

// step runs a transition that takes no body.
func (h *SubmissionHandler) step(fn transition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		st, err := fn(r.Context(), viewer(r), id)
		if err != nil {
			respondWithServiceError(w, r, err)
			return
		}
		respondWithJSON(w, http.StatusOK, st)
	}
}

func (h *SubmissionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.step(h.submissions.Get)(w, r)
}

func (h *SubmissionHandler) EnterTerms(w http.ResponseWriter, r *http.Request) {
	h.step(h.submissions.EnterTerms)(w, r)
}

func (h *SubmissionHandler) Back(w http.ResponseWriter, r *http.Request) {
	h.step(h.submissions.Back)(w, r)
}

func (h *SubmissionHandler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	h.step(h.submissions.Acknowledge)(w, r)
}

type draftRequest struct {
	Payload json.RawMessage `json:"payload"`
}

func (h *SubmissionHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	var input draftRequest
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	h.step(func(ctx context.Context, v policy.Viewer, id uuid.UUID) (*service.SubmissionStatus, error) {
		return h.submissions.UpdateDraft(ctx, v, id, input.Payload)
	})(w, r)
}

func (h *SubmissionHandler) RecordScroll(w http.ResponseWriter, r *http.Request) {
	var pos workflow.ScrollPosition
	if err := decodeJSON(r, &pos); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	if err := workflow.ValidateStruct(pos); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	h.step(func(ctx context.Context, v policy.Viewer, id uuid.UUID) (*service.SubmissionStatus, error) {
		return h.submissions.RecordScroll(ctx, v, id, pos)
	})(w, r)
}

type acknowledgmentRequest struct {
	Checked bool `json:"checked"`
}

func (h *SubmissionHandler) SetAcknowledged(w http.ResponseWriter, r *http.Request) {
	var input acknowledgmentRequest
	if err := decodeJSON(r, &input); err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	h.step(func(ctx context.Context, v policy.Viewer, id uuid.UUID) (*service.SubmissionStatus, error) {
		return h.submissions.SetAcknowledged(ctx, v, id, input.Checked)
	})(w, r)
}

// Submit returns 201 for the first completion and 200 when replaying it.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	res, err := h.submissions.Submit(r.Context(), viewer(r), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}
	code := http.StatusCreated
	if res.Replayed {
		code = http.StatusOK
	}
	respondWithJSON(w, code, res)
}
