package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/service"
)

// DecisionLogHandler handles API requests related to policy decision logs
type DecisionLogHandler struct {
	decisionLogs *service.DecisionLogService
}

// NewDecisionLogHandler creates a new decision log handler
func NewDecisionLogHandler(decisionLogs *service.DecisionLogService) *DecisionLogHandler {
	return &DecisionLogHandler{
		decisionLogs: decisionLogs,
	}
}

// GetDecisionLogs handles requests to retrieve decision logs with filtering
func (h *DecisionLogHandler) GetDecisionLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repository.QueryParams{
		ActionType:  query.Get("action_type"),
		SubjectRole: query.Get("subject_role"),
		SubjectID:   query.Get("subject_id"),
		Category:    query.Get("category"),
		TargetID:    query.Get("target_id"),
	}

	if allowedStr := query.Get("allowed"); allowedStr != "" {
		allowed, err := strconv.ParseBool(allowedStr)
		if err == nil {
			params.Allowed = &allowed
		}
	}

	if startTimeStr := query.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err == nil {
			params.StartTime = startTime
		}
	}

	if endTimeStr := query.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err == nil {
			params.EndTime = endTime
		}
	}

	// Pagination
	page := pageFrom(r)
	params.Limit = page.Limit
	params.Offset = page.Offset

	logs, total, err := h.decisionLogs.GetDecisionLogs(r.Context(), params)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse{
		BaseResponse: BaseResponse{Ok: true},
		Items:        logs,
		Total:        total,
	})
}

// GetDecisionLogByID handles requests to retrieve a specific decision log by ID
func (h *DecisionLogHandler) GetDecisionLogByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	log, err := h.decisionLogs.GetDecisionLogByID(r.Context(), id)
	if err != nil {
		respondWithServiceError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, log)
}
