package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/nextintern/internal/audit"
	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// SubmissionEvent is handed to the Notifier once a submission is SUBMITTED.
type SubmissionEvent struct {
	Submitter   policy.Viewer
	Submission  *model.Submission
	Opportunity *model.Opportunity
	Application *model.Application
	Candidate   *model.Candidate
	Quota       quota.Decision
}

// Notifier is told about successful submissions. Its failures are logged and
// never undo the submission.
type Notifier interface {
	SubmissionSucceeded(ctx context.Context, event SubmissionEvent) error
}

// SubmissionStatus is a submission plus what still blocks it.
type SubmissionStatus struct {
	Submission            *model.Submission    `json:"submission"`
	Missing               []domain.Requirement `json:"missing"`
	DwellRemainingSeconds int                  `json:"dwell_remaining_seconds"`
}

// SubmitResult is returned by Submit. Replayed is set when the submission had
// already completed and the earlier result is being returned again.
type SubmitResult struct {
	Submission *model.Submission `json:"submission"`
	ResultID   uuid.UUID         `json:"result_id"`
	Replayed   bool              `json:"replayed"`
	Quota      *quota.Decision   `json:"quota,omitempty"`
}

// SubmissionService drives the gated workflow and performs the privileged
// write on its final transition.
type SubmissionService struct {
	submissions   repository.SubmissionRepositoryIface
	opportunities repository.OpportunityRepositoryIface
	applications  repository.ApplicationRepositoryIface
	candidates    repository.CandidateRepositoryIface
	companies     repository.CompanyRepositoryIface
	ledger        *quota.Ledger
	machine       *workflow.Machine
	notifier      Notifier
	audit         audit.Logger
	claimTimeout  time.Duration
	inflight      singleflight.Group
}

func NewSubmissionService(
	submissions repository.SubmissionRepositoryIface,
	opportunities repository.OpportunityRepositoryIface,
	applications repository.ApplicationRepositoryIface,
	candidates repository.CandidateRepositoryIface,
	companies repository.CompanyRepositoryIface,
	ledger *quota.Ledger,
	machine *workflow.Machine,
	notifier Notifier,
	auditLogger audit.Logger,
	claimTimeout time.Duration,
) *SubmissionService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	if claimTimeout <= 0 {
		claimTimeout = 2 * time.Minute
	}
	return &SubmissionService{
		submissions:   submissions,
		opportunities: opportunities,
		applications:  applications,
		candidates:    candidates,
		companies:     companies,
		ledger:        ledger,
		machine:       machine,
		notifier:      notifier,
		audit:         auditLogger,
		claimTimeout:  claimTimeout,
	}
}

func (s *SubmissionService) status(sub *model.Submission) *SubmissionStatus {
	st := &SubmissionStatus{Submission: sub, Missing: []domain.Requirement{}}
	switch sub.State {
	case model.SubmissionTermsPending, model.SubmissionTermsAcknowledged:
		st.Missing = s.machine.Missing(sub)
		st.DwellRemainingSeconds = int((s.machine.DwellRemaining(sub) + time.Second - 1) / time.Second)
	}
	return st
}

func (s *SubmissionService) load(ctx context.Context, v policy.Viewer, id uuid.UUID) (*model.Submission, error) {
	sub, err := s.submissions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub.OwnerID != v.UserID {
		return nil, domain.ErrSubmissionNotFound
	}
	return sub, nil
}

func kindAllowed(v policy.Viewer, kind model.SubmissionKind) error {
	switch kind {
	case model.SubmissionApplication:
		if v.Role != model.RoleCandidate {
			return domain.ErrForbidden
		}
	case model.SubmissionOpportunity:
		if v.Role != model.RoleIndustry {
			return domain.ErrForbidden
		}
	default:
		return &domain.ValidationError{Field: "kind", Constraint: "oneof", Param: "APPLICATION OPPORTUNITY"}
	}
	return nil
}

type StartInput struct {
	Kind    model.SubmissionKind `json:"kind"`
	Payload json.RawMessage      `json:"payload"`
}

// Start opens a DRAFT. The payload may be incomplete until EnterTerms.
func (s *SubmissionService) Start(ctx context.Context, v policy.Viewer, input StartInput) (*SubmissionStatus, error) {
	if err := kindAllowed(v, input.Kind); err != nil {
		return nil, err
	}
	sub := s.machine.New(v.UserID, input.Kind, input.Payload)
	if err := s.submissions.Create(ctx, sub); err != nil {
		return nil, err
	}
	return s.status(sub), nil
}

func (s *SubmissionService) Get(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmissionStatus, error) {
	sub, err := s.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	return s.status(sub), nil
}

// mutate runs one transition against a fresh read. fn returns the guarded
// change that persists it; a change without columns writes nothing.
func (s *SubmissionService) mutate(ctx context.Context, v policy.Viewer, id uuid.UUID, fn func(*model.Submission) (repository.SubmissionChange, error)) (*SubmissionStatus, error) {
	sub, err := s.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	change, err := fn(sub)
	if err != nil {
		return nil, err
	}
	if err := s.submissions.Apply(ctx, sub, change); err != nil {
		return nil, err
	}
	return s.status(sub), nil
}

func (s *SubmissionService) UpdateDraft(ctx context.Context, v policy.Viewer, id uuid.UUID, payload json.RawMessage) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionUpdateDraft)
		if err := s.machine.UpdateDraft(sub, payload); err != nil {
			return change, err
		}
		return change.Set("payload"), nil
	})
}

// EnterTerms validates the draft, starts the dwell timer and, for
// applications, rejects targets the candidate could never submit to. The
// write requires the draft to be the one that was validated.
func (s *SubmissionService) EnterTerms(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionEnterTerms).Unmodified(sub.UpdatedAt)
		if err := s.machine.EnterTerms(sub); err != nil {
			return change, err
		}
		if sub.Kind == model.SubmissionApplication {
			if err := s.precheckApplication(ctx, v, sub); err != nil {
				return change, err
			}
		}
		return change.Set("state", "terms_entered_at", "scrolled_to_end", "acknowledged"), nil
	})
}

func (s *SubmissionService) Back(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionBack)
		if err := s.machine.Back(sub); err != nil {
			return change, err
		}
		return change.Set("state", "terms_entered_at", "scrolled_to_end", "acknowledged"), nil
	})
}

// RecordScroll only writes when the end is reached for the first time.
func (s *SubmissionService) RecordScroll(ctx context.Context, v policy.Viewer, id uuid.UUID, pos workflow.ScrollPosition) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionScroll)
		reached := sub.ScrolledToEnd
		if err := s.machine.RecordScroll(sub, pos); err != nil {
			return change, err
		}
		if reached || !sub.ScrolledToEnd {
			return change, nil
		}
		return change.Set("scrolled_to_end"), nil
	})
}

func (s *SubmissionService) SetAcknowledged(ctx context.Context, v policy.Viewer, id uuid.UUID, checked bool) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionCheck)
		if err := s.machine.SetAcknowledged(sub, checked); err != nil {
			return change, err
		}
		return change.Set("acknowledged"), nil
	})
}

// Acknowledge promotes only while the flags it checked are still set.
func (s *SubmissionService) Acknowledge(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmissionStatus, error) {
	return s.mutate(ctx, v, id, func(sub *model.Submission) (repository.SubmissionChange, error) {
		change := repository.ChangeFrom(sub, workflow.ActionAcknowledge)
		if err := s.machine.Acknowledge(sub); err != nil {
			return change, err
		}
		return change.Engaged().Set("state"), nil
	})
}

// Submit performs the privileged write. Concurrent calls for the same
// submission in this process share one execution; a call that finds the
// submission already SUBMITTED returns the stored result. Across processes
// the database claim keeps a second writer out.
func (s *SubmissionService) Submit(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmitResult, error) {
	res, err, _ := s.inflight.Do(v.UserID.String()+":"+id.String(), func() (interface{}, error) {
		return s.submit(ctx, v, id)
	})
	if err != nil {
		return nil, err
	}
	return res.(*SubmitResult), nil
}

func replay(sub *model.Submission) *SubmitResult {
	res := &SubmitResult{Submission: sub, Replayed: true}
	if sub.ResultID != nil {
		res.ResultID = *sub.ResultID
	}
	return res
}

// completed re-reads the submission after losing a race and returns the
// winner's result when there is one.
func (s *SubmissionService) completed(ctx context.Context, id uuid.UUID) (*SubmitResult, bool) {
	current, err := s.submissions.FindByID(ctx, id)
	if err != nil || current.State != model.SubmissionSubmitted {
		return nil, false
	}
	return replay(current), true
}

func (s *SubmissionService) submit(ctx context.Context, v policy.Viewer, id uuid.UUID) (*SubmitResult, error) {
	sub, err := s.load(ctx, v, id)
	if err != nil {
		return nil, err
	}
	if sub.State == model.SubmissionSubmitted {
		return replay(sub), nil
	}
	promotion := repository.ChangeFrom(sub, workflow.ActionSubmit).Engaged()
	if err := s.machine.PrepareSubmit(sub); err != nil {
		return nil, err
	}

	claimed, err := s.submissions.Claim(ctx, id, s.machine.Now(), s.claimTimeout)
	if err != nil {
		return nil, err
	}
	if !claimed {
		if res, ok := s.completed(ctx, id); ok {
			return res, nil
		}
		return nil, domain.ErrDuplicateSubmission
	}

	// Persist a promotion from TERMS_PENDING; a quota denial leaves the
	// submission in TERMS_ACKNOWLEDGED.
	if promotion.From != sub.State {
		if err := s.submissions.Apply(ctx, sub, promotion.Set("state")); err != nil {
			s.release(ctx, id)
			return nil, err
		}
	}

	var res *SubmitResult
	switch sub.Kind {
	case model.SubmissionOpportunity:
		res, err = s.submitOpportunity(ctx, v, sub)
	case model.SubmissionApplication:
		res, err = s.submitApplication(ctx, v, sub)
	default:
		err = &domain.ValidationError{Field: "kind", Constraint: "oneof", Param: "APPLICATION OPPORTUNITY"}
	}
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubmission) {
			if res, ok := s.completed(ctx, id); ok {
				return res, nil
			}
		}
		s.release(ctx, id)
		return nil, err
	}
	return res, nil
}

func (s *SubmissionService) release(ctx context.Context, id uuid.UUID) {
	if err := s.submissions.Release(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to release submission claim", "error", err, "submissionID", id)
	}
}

func (s *SubmissionService) logQuota(ctx context.Context, subject audit.Subject, category string, allowed bool, d quota.Decision, submissionID uuid.UUID) {
	err := s.audit.LogQuotaDecision(ctx, subject, model.ActionQuotaConsume, category, allowed, map[string]interface{}{
		"limit":         d.Limit,
		"remaining":     d.Remaining,
		"month":         d.MonthKey,
		"submission_id": submissionID.String(),
	})
	if err != nil {
		slog.WarnContext(ctx, "Failed to log quota decision", "error", err, "submissionID", submissionID)
	}
}

func unlimited(category string, month string) quota.Decision {
	return quota.Decision{Allowed: true, Unlimited: true, Category: category, MonthKey: month}
}

func (s *SubmissionService) submitOpportunity(ctx context.Context, v policy.Viewer, sub *model.Submission) (*SubmitResult, error) {
	draft, err := workflow.DecodeOpportunityDraft(sub.Payload)
	if err != nil {
		return nil, err
	}
	company, err := s.companies.FindByUserID(ctx, v.UserID)
	if err != nil {
		return nil, err
	}

	now := s.machine.Now()
	o := &model.Opportunity{
		ID:             uuid.New(),
		IndustryID:     company.ID,
		Type:           draft.Type,
		Title:          draft.Title,
		Description:    draft.Description,
		Requirements:   draft.Requirements,
		Location:       draft.Location,
		Duration:       draft.Duration,
		Stipend:        draft.Stipend,
		Skills:         draft.Skills,
		IsPremiumOnly:  draft.IsPremiumOnly,
		IsActive:       true,
		ApprovalStatus: model.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	decision := unlimited(string(draft.Type), s.ledger.MonthKey(now))
	if !v.Premium() {
		subject := audit.Subject{ID: company.ID.String(), Role: model.RoleIndustry}
		decision, err = s.ledger.RecordPost(ctx, company.ID, draft.Type)
		s.logQuota(ctx, subject, string(draft.Type), err == nil, decision, sub.ID)
		if err != nil {
			return nil, err
		}
		o.QuotaCounted = true
	}

	if err := s.machine.Complete(sub, o.ID); err != nil {
		s.undoPost(ctx, o)
		return nil, err
	}
	if err := s.submissions.CompleteWithOpportunity(ctx, sub, o); err != nil {
		s.undoPost(ctx, o)
		return nil, err
	}

	o.Company = *company
	s.succeeded(ctx, SubmissionEvent{
		Submitter:   v,
		Submission:  sub,
		Opportunity: o,
		Quota:       decision,
	})
	return &SubmitResult{Submission: sub, ResultID: o.ID, Quota: &decision}, nil
}

func (s *SubmissionService) undoPost(ctx context.Context, o *model.Opportunity) {
	if !o.QuotaCounted {
		return
	}
	if err := s.ledger.ReleasePost(ctx, o.IndustryID, o.Type, o.CreatedAt); err != nil {
		slog.ErrorContext(ctx, "Failed to return posting quota", "error", err, "industryID", o.IndustryID, "category", o.Type)
	}
}

// applicable checks that v may apply to o at all.
func applicable(v policy.Viewer, o *model.Opportunity) error {
	if !o.OpenForApplications() {
		return domain.ErrOpportunityClosed
	}
	if o.IsPremiumOnly && !v.Premium() {
		return domain.ErrPremiumRequired
	}
	return nil
}

func (s *SubmissionService) precheckApplication(ctx context.Context, v policy.Viewer, sub *model.Submission) error {
	draft, err := workflow.DecodeApplicationDraft(sub.Payload)
	if err != nil {
		return err
	}
	candidate, err := s.candidates.FindByUserID(ctx, v.UserID)
	if err != nil {
		return err
	}
	o, err := s.opportunities.FindByID(ctx, draft.OpportunityID)
	if err != nil {
		return err
	}
	if err := applicable(v, o); err != nil {
		return err
	}
	exists, err := s.applications.Exists(ctx, candidate.ID, o.ID)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrAlreadyApplied
	}
	return nil
}

func (s *SubmissionService) submitApplication(ctx context.Context, v policy.Viewer, sub *model.Submission) (*SubmitResult, error) {
	draft, err := workflow.DecodeApplicationDraft(sub.Payload)
	if err != nil {
		return nil, err
	}
	candidate, err := s.candidates.FindByUserID(ctx, v.UserID)
	if err != nil {
		return nil, err
	}
	o, err := s.opportunities.FindByID(ctx, draft.OpportunityID)
	if err != nil {
		return nil, err
	}
	if err := applicable(v, o); err != nil {
		return nil, err
	}

	now := s.machine.Now()
	a := &model.Application{
		ID:            uuid.New(),
		CandidateID:   candidate.ID,
		OpportunityID: o.ID,
		IndustryID:    o.IndustryID,
		Status:        model.ApplicationPending,
		CoverLetter:   draft.CoverLetter,
		WhyInterested: draft.WhyInterested,
		AppliedAt:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	decision := unlimited(string(o.Type), s.ledger.MonthKey(now))
	if !v.Premium() {
		decision, err = s.ledger.RecordApplication(ctx, candidate.ID, o.Type)
		if !decision.Unlimited || err != nil {
			s.logQuota(ctx, audit.Subject{ID: candidate.ID.String(), Role: model.RoleCandidate}, string(o.Type), err == nil, decision, sub.ID)
		}
		if err != nil {
			return nil, err
		}
	}

	undo := func() {
		if decision.Unlimited {
			return
		}
		if err := s.ledger.ReleaseApplication(ctx, candidate.ID, o.Type); err != nil {
			slog.ErrorContext(ctx, "Failed to return application quota", "error", err, "candidateID", candidate.ID)
		}
	}
	if err := s.machine.Complete(sub, a.ID); err != nil {
		undo()
		return nil, err
	}
	if err := s.submissions.CompleteWithApplication(ctx, sub, a); err != nil {
		undo()
		return nil, err
	}

	a.Candidate = *candidate
	a.Opportunity = *o
	s.succeeded(ctx, SubmissionEvent{
		Submitter:   v,
		Submission:  sub,
		Opportunity: o,
		Application: a,
		Candidate:   candidate,
		Quota:       decision,
	})
	return &SubmitResult{Submission: sub, ResultID: a.ID, Quota: &decision}, nil
}

func (s *SubmissionService) succeeded(ctx context.Context, event SubmissionEvent) {
	sub := event.Submission
	resultID := ""
	if sub.ResultID != nil {
		resultID = sub.ResultID.String()
	}
	if err := s.audit.LogSubmission(ctx, subjectOf(event.Submitter), sub.Kind, sub.ID.String(), resultID); err != nil {
		slog.WarnContext(ctx, "Failed to log submission", "error", err, "submissionID", sub.ID)
	}
	slog.InfoContext(ctx, "Submission completed", "submissionID", sub.ID, "kind", sub.Kind, "resultID", resultID)

	if s.notifier == nil {
		return
	}
	if err := s.notifier.SubmissionSucceeded(ctx, event); err != nil {
		slog.WarnContext(ctx, "Failed to send submission notification", "error", fmt.Errorf("notifying: %w", err), "submissionID", sub.ID)
	}
}
