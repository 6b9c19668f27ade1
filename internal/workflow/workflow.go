// Package workflow implements the gated submission state machine:
//
//	DRAFT -> TERMS_PENDING -> TERMS_ACKNOWLEDGED -> SUBMITTED
//
// with a single backward edge, Back, from TERMS_PENDING to DRAFT. The
// functions mutate a *model.Submission in memory; persistence and the
// privileged write belong to the caller.
package workflow

import (
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ActionUpdateDraft = "update_draft"
	ActionEnterTerms  = "enter_terms"
	ActionBack        = "back"
	ActionScroll      = "record_scroll"
	ActionCheck       = "set_acknowledgment"
	ActionAcknowledge = "acknowledge"
	ActionSubmit      = "submit"
)

type Config struct {
	DwellTime       time.Duration
	ScrollThreshold float64
}

func DefaultConfig() Config {
	return Config{DwellTime: 30 * time.Second, ScrollThreshold: 50}
}

// Machine applies transitions using server time.
type Machine struct {
	cfg Config
	now func() time.Time
}

func NewMachine(cfg Config, now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{cfg: cfg, now: now}
}

func (m *Machine) Config() Config { return m.cfg }

// Now is the server clock every transition is stamped with.
func (m *Machine) Now() time.Time { return m.now() }

func stateError(s *model.Submission, action string, missing ...domain.Requirement) error {
	return &domain.WorkflowStateError{State: string(s.State), Action: action, Missing: missing}
}

// New starts a submission in DRAFT carrying payload untouched.
func (m *Machine) New(owner uuid.UUID, kind model.SubmissionKind, payload []byte) *model.Submission {
	now := m.now()
	return &model.Submission{
		ID:        uuid.New(),
		OwnerID:   owner,
		Kind:      kind,
		State:     model.SubmissionDraft,
		Payload:   datatypes.JSON(payload),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UpdateDraft replaces the carry-over payload. Only drafts are editable.
func (m *Machine) UpdateDraft(s *model.Submission, payload []byte) error {
	if s.State != model.SubmissionDraft {
		return stateError(s, ActionUpdateDraft)
	}
	s.Payload = datatypes.JSON(payload)
	s.UpdatedAt = m.now()
	return nil
}

// EnterTerms validates the draft and moves to TERMS_PENDING, starting the
// dwell timer and clearing any earlier engagement.
func (m *Machine) EnterTerms(s *model.Submission) error {
	if s.State != model.SubmissionDraft {
		return stateError(s, ActionEnterTerms)
	}
	if err := ValidateDraft(s.Kind, s.Payload); err != nil {
		return err
	}
	now := m.now()
	s.State = model.SubmissionTermsPending
	s.TermsEnteredAt = &now
	s.ScrolledToEnd = false
	s.Acknowledged = false
	s.UpdatedAt = now
	return nil
}

// Back returns to DRAFT, discarding terms progress and keeping the payload.
func (m *Machine) Back(s *model.Submission) error {
	if s.State != model.SubmissionTermsPending {
		return stateError(s, ActionBack)
	}
	s.State = model.SubmissionDraft
	s.TermsEnteredAt = nil
	s.ScrolledToEnd = false
	s.Acknowledged = false
	s.UpdatedAt = m.now()
	return nil
}

// RecordScroll marks the terms as read once pos reaches the end. Reaching the
// end is sticky; scrolling back up afterwards does not clear it.
func (m *Machine) RecordScroll(s *model.Submission, pos ScrollPosition) error {
	if s.State != model.SubmissionTermsPending {
		return stateError(s, ActionScroll)
	}
	if pos.AtEnd(m.cfg.ScrollThreshold) {
		s.ScrolledToEnd = true
	}
	s.UpdatedAt = m.now()
	return nil
}

// SetAcknowledged records the user's checkbox.
func (m *Machine) SetAcknowledged(s *model.Submission, checked bool) error {
	if s.State != model.SubmissionTermsPending {
		return stateError(s, ActionCheck)
	}
	s.Acknowledged = checked
	s.UpdatedAt = m.now()
	return nil
}

func (m *Machine) gate(s *model.Submission) Gate {
	g := Gate{ScrolledToEnd: s.ScrolledToEnd, Acknowledged: s.Acknowledged}
	if s.TermsEnteredAt != nil {
		g.EnteredAt = *s.TermsEnteredAt
	}
	return g
}

// Missing reports the unmet engagement requirements right now.
func (m *Machine) Missing(s *model.Submission) []domain.Requirement {
	return m.gate(s).Missing(m.now(), m.cfg.DwellTime)
}

// DwellRemaining is how long the reader must still wait, zero once the dwell
// time has passed or outside the terms states.
func (m *Machine) DwellRemaining(s *model.Submission) time.Duration {
	if s.TermsEnteredAt == nil || s.State == model.SubmissionSubmitted {
		return 0
	}
	left := m.cfg.DwellTime - m.now().Sub(*s.TermsEnteredAt)
	if left < 0 {
		return 0
	}
	return left
}

// Acknowledge moves TERMS_PENDING to TERMS_ACKNOWLEDGED when all three
// requirements hold simultaneously.
func (m *Machine) Acknowledge(s *model.Submission) error {
	if s.State != model.SubmissionTermsPending {
		return stateError(s, ActionAcknowledge)
	}
	if missing := m.Missing(s); len(missing) > 0 {
		return stateError(s, ActionAcknowledge, missing...)
	}
	s.State = model.SubmissionTermsAcknowledged
	s.UpdatedAt = m.now()
	return nil
}

// PrepareSubmit re-checks every requirement and leaves s in
// TERMS_ACKNOWLEDGED, ready for the privileged write. A submission still in
// TERMS_PENDING is promoted when everything holds.
func (m *Machine) PrepareSubmit(s *model.Submission) error {
	switch s.State {
	case model.SubmissionTermsPending:
		if missing := m.Missing(s); len(missing) > 0 {
			return stateError(s, ActionSubmit, missing...)
		}
		s.State = model.SubmissionTermsAcknowledged
		s.UpdatedAt = m.now()
		return nil
	case model.SubmissionTermsAcknowledged:
		if missing := m.Missing(s); len(missing) > 0 {
			return stateError(s, ActionSubmit, missing...)
		}
		return nil
	default:
		return stateError(s, ActionSubmit)
	}
}

// Complete records the privileged write's result and moves to SUBMITTED.
func (m *Machine) Complete(s *model.Submission, resultID uuid.UUID) error {
	if s.State != model.SubmissionTermsAcknowledged {
		return stateError(s, ActionSubmit)
	}
	now := m.now()
	s.State = model.SubmissionSubmitted
	s.ResultID = &resultID
	s.SubmittedAt = &now
	s.SubmittingAt = nil
	s.UpdatedAt = now
	return nil
}
