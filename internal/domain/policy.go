package domain

import (
	"fmt"
	"strings"
)

// ValidationError reports the first field that failed a draft or profile constraint.
type ValidationError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Param      string `json:"param,omitempty"`
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("validation failed on %s: %s=%s", e.Field, e.Constraint, e.Param)
	}
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Constraint)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// QuotaExceededError is returned when a free-tier monthly limit blocks an action.
type QuotaExceededError struct {
	Category string `json:"category"`
	Limit    int    `json:"limit"`
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded for %s: limit %d per month", e.Category, e.Limit)
}

func (e *QuotaExceededError) Unwrap() error { return ErrQuotaExceeded }

// Requirement names one of the engagement conditions guarding terms acknowledgment.
type Requirement string

const (
	RequirementScroll         Requirement = "scroll"
	RequirementDwellTime      Requirement = "dwell_time"
	RequirementAcknowledgment Requirement = "acknowledgment"
)

// WorkflowStateError is returned when an action is attempted from a state that does not permit it.
// Missing lists outstanding engagement requirements, if any.
type WorkflowStateError struct {
	State   string        `json:"state"`
	Action  string        `json:"action"`
	Missing []Requirement `json:"missing,omitempty"`
}

func (e *WorkflowStateError) Error() string {
	if len(e.Missing) == 0 {
		return fmt.Sprintf("cannot %s from state %s", e.Action, e.State)
	}
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = string(m)
	}
	return fmt.Sprintf("cannot %s from state %s: requirement not yet met (%s)", e.Action, e.State, strings.Join(parts, ", "))
}

func (e *WorkflowStateError) Unwrap() error { return ErrWorkflowState }
