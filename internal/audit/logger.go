package audit

import (
	"context"

	"github.com/dangerclosesec/nextintern/internal/model"
)

// Subject identifies who a decision was made for.
type Subject struct {
	ID   string
	Role model.Role
}

// Logger defines the interface for auditing policy decisions
type Logger interface {
	// LogQuotaDecision logs a quota check, consumption or release
	LogQuotaDecision(
		ctx context.Context,
		subject Subject,
		action string,
		category string,
		allowed bool,
		contextData map[string]interface{},
	) error

	// LogSubmission logs a submission reaching SUBMITTED
	LogSubmission(
		ctx context.Context,
		subject Subject,
		kind model.SubmissionKind,
		submissionID string,
		resultID string,
	) error

	// LogAdminAction logs an admin review or support edit
	LogAdminAction(
		ctx context.Context,
		subject Subject,
		action string,
		targetID string,
		contextData map[string]interface{},
	) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// LogQuotaDecision implements Logger.LogQuotaDecision
func (l *NoOpLogger) LogQuotaDecision(
	ctx context.Context,
	subject Subject,
	action string,
	category string,
	allowed bool,
	contextData map[string]interface{},
) error {
	return nil
}

// LogSubmission implements Logger.LogSubmission
func (l *NoOpLogger) LogSubmission(
	ctx context.Context,
	subject Subject,
	kind model.SubmissionKind,
	submissionID string,
	resultID string,
) error {
	return nil
}

// LogAdminAction implements Logger.LogAdminAction
func (l *NoOpLogger) LogAdminAction(
	ctx context.Context,
	subject Subject,
	action string,
	targetID string,
	contextData map[string]interface{},
) error {
	return nil
}
