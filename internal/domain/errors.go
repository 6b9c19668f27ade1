// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")

	// User-related errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPasswordTooWeak    = errors.New("password too weak")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidRole        = errors.New("invalid role")

	// Profile-related errors
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrCompanyNotFound   = errors.New("company not found")
	ErrInvalidIdentifier = errors.New("invalid anonymous identifier")

	// Opportunity-related errors
	ErrOpportunityNotFound = errors.New("opportunity not found")
	ErrOpportunityLocked   = errors.New("opportunity is approved and can no longer be edited")
	ErrOpportunityClosed   = errors.New("opportunity is not accepting applications")
	ErrPremiumRequired     = errors.New("premium subscription required")

	// Application-related errors
	ErrApplicationNotFound     = errors.New("application not found")
	ErrAlreadyApplied          = errors.New("already applied to this opportunity")
	ErrInvalidStatusTransition = errors.New("invalid application status transition")

	// Quota and workflow errors
	ErrQuotaExceeded       = errors.New("quota exceeded")
	ErrWorkflowState       = errors.New("workflow requirement not met")
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrDuplicateSubmission = errors.New("submission already in flight")
)
