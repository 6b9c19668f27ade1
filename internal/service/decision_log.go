package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/audit"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/google/uuid"
)

// Ensure DecisionLogService implements the audit.Logger interface
var _ audit.Logger = (*DecisionLogService)(nil)

// DecisionLogService persists policy decisions for later audit
type DecisionLogService struct {
	repo repository.DecisionLogRepositoryIface
	now  func() time.Time
}

// NewDecisionLogService creates a new DecisionLogService
func NewDecisionLogService(repo repository.DecisionLogRepositoryIface) *DecisionLogService {
	return &DecisionLogService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *DecisionLogService) record(ctx context.Context, log *model.PolicyDecisionLog) error {
	client := audit.ClientFromContext(ctx)
	log.Timestamp = s.now().UTC()
	log.RequestID = client.RequestID
	log.ClientIP = client.IP
	log.UserAgent = client.UserAgent
	return s.repo.Create(ctx, log)
}

// LogQuotaDecision logs a quota check, consumption or release
func (s *DecisionLogService) LogQuotaDecision(
	ctx context.Context,
	subject audit.Subject,
	action string,
	category string,
	allowed bool,
	contextData map[string]interface{},
) error {
	return s.record(ctx, &model.PolicyDecisionLog{
		ActionType:  action,
		Allowed:     &allowed,
		SubjectRole: subject.Role,
		SubjectID:   subject.ID,
		Category:    category,
		Context:     model.JSONMap(contextData),
	})
}

// LogSubmission logs a submission reaching SUBMITTED
func (s *DecisionLogService) LogSubmission(
	ctx context.Context,
	subject audit.Subject,
	kind model.SubmissionKind,
	submissionID string,
	resultID string,
) error {
	allowed := true
	return s.record(ctx, &model.PolicyDecisionLog{
		ActionType:  model.ActionSubmission,
		Allowed:     &allowed,
		SubjectRole: subject.Role,
		SubjectID:   subject.ID,
		Category:    string(kind),
		TargetID:    resultID,
		Context:     model.JSONMap{"submission_id": submissionID},
	})
}

// LogAdminAction logs an admin review or support edit
func (s *DecisionLogService) LogAdminAction(
	ctx context.Context,
	subject audit.Subject,
	action string,
	targetID string,
	contextData map[string]interface{},
) error {
	allowed := true
	return s.record(ctx, &model.PolicyDecisionLog{
		ActionType:  action,
		Allowed:     &allowed,
		SubjectRole: subject.Role,
		SubjectID:   subject.ID,
		TargetID:    targetID,
		Context:     model.JSONMap(contextData),
	})
}

// GetDecisionLogs retrieves decision logs based on query parameters
func (s *DecisionLogService) GetDecisionLogs(
	ctx context.Context,
	params repository.QueryParams,
) ([]model.PolicyDecisionLog, int64, error) {
	return s.repo.Query(ctx, params)
}

// GetDecisionLogByID retrieves a decision log by ID
func (s *DecisionLogService) GetDecisionLogByID(
	ctx context.Context,
	id uuid.UUID,
) (*model.PolicyDecisionLog, error) {
	log, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get decision log by ID: %w", err)
	}

	return log, nil
}
