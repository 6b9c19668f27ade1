package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dangerclosesec/nextintern/internal/audit"
	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
)

type OpportunityService struct {
	opportunities repository.OpportunityRepositoryIface
	companies     repository.CompanyRepositoryIface
	ledger        *quota.Ledger
	audit         audit.Logger
}

func NewOpportunityService(
	opportunities repository.OpportunityRepositoryIface,
	companies repository.CompanyRepositoryIface,
	ledger *quota.Ledger,
	auditLogger audit.Logger,
) *OpportunityService {
	if auditLogger == nil {
		auditLogger = &audit.NoOpLogger{}
	}
	return &OpportunityService{
		opportunities: opportunities,
		companies:     companies,
		ledger:        ledger,
		audit:         auditLogger,
	}
}

func subjectOf(v policy.Viewer) audit.Subject {
	return audit.Subject{ID: v.UserID.String(), Role: v.Role}
}

// seesPremiumOnly reports whether premium-only postings are listed for v.
// Only free candidates are kept from them.
func seesPremiumOnly(v policy.Viewer) bool {
	return v.Role != model.RoleCandidate || v.Premium()
}

type BrowseInput struct {
	Type   model.OpportunityType
	Search string
	Page   repository.Page
}

// Browse lists live opportunities: approved and active.
func (s *OpportunityService) Browse(ctx context.Context, v policy.Viewer, input BrowseInput) ([]*model.Opportunity, int64, error) {
	if input.Type != "" && !input.Type.Valid() {
		return nil, 0, &domain.ValidationError{Field: "type", Constraint: "oneof", Param: "INTERNSHIP PROJECT FREELANCING"}
	}
	return s.opportunities.List(ctx, repository.OpportunityFilter{
		Type:               input.Type,
		ApprovalStatus:     model.ApprovalApproved,
		ActiveOnly:         true,
		IncludePremiumOnly: seesPremiumOnly(v),
		Search:             input.Search,
		Page:               input.Page,
	})
}

func (s *OpportunityService) ownedBy(v policy.Viewer, o *model.Opportunity) bool {
	return v.UserID != uuid.Nil && o.Company.UserID == v.UserID
}

// Get returns one opportunity and counts the view. Unapproved or inactive
// postings are visible to their owner and admins only.
func (s *OpportunityService) Get(ctx context.Context, v policy.Viewer, id uuid.UUID) (*model.Opportunity, error) {
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	owner := s.ownedBy(v, o)
	if !owner && v.Role != model.RoleAdmin {
		if !o.OpenForApplications() {
			return nil, domain.ErrOpportunityNotFound
		}
		if o.IsPremiumOnly && !seesPremiumOnly(v) {
			return nil, domain.ErrPremiumRequired
		}
	}

	if !owner {
		if err := s.opportunities.IncrementViewCount(ctx, id); err != nil {
			slog.WarnContext(ctx, "Failed to count opportunity view", "error", err, "opportunityID", id)
		} else {
			o.ViewCount++
		}
	}
	return o, nil
}

// ListOwn lists every posting of the caller's company, whatever its status.
func (s *OpportunityService) ListOwn(ctx context.Context, v policy.Viewer, page repository.Page) ([]*model.Opportunity, int64, error) {
	company, err := s.companies.FindByUserID(ctx, v.UserID)
	if err != nil {
		return nil, 0, err
	}
	return s.opportunities.List(ctx, repository.OpportunityFilter{
		IndustryID:         company.ID,
		IncludePremiumOnly: true,
		Page:               page,
	})
}

// ListPending is the admin review queue.
func (s *OpportunityService) ListPending(ctx context.Context, page repository.Page) ([]*model.Opportunity, int64, error) {
	return s.opportunities.List(ctx, repository.OpportunityFilter{
		ApprovalStatus:     model.ApprovalPending,
		IncludePremiumOnly: true,
		Page:               page,
	})
}

// OpportunityUpdate carries the editable fields of a posting. The category
// is fixed at creation because it decides which quota was consumed.
type OpportunityUpdate struct {
	Title         string   `json:"title" validate:"required,min=5,max=150"`
	Description   string   `json:"description" validate:"required,min=100,max=10000"`
	Requirements  string   `json:"requirements" validate:"required,min=20,max=5000"`
	Location      string   `json:"location" validate:"required"`
	Duration      string   `json:"duration" validate:"required"`
	Stipend       string   `json:"stipend" validate:"omitempty,max=100"`
	Skills        []string `json:"skills" validate:"max=20,dive,required,max=50"`
	IsPremiumOnly bool     `json:"is_premium_only"`
}

func (u OpportunityUpdate) apply(o *model.Opportunity) {
	o.Title = u.Title
	o.Description = u.Description
	o.Requirements = u.Requirements
	o.Location = u.Location
	o.Duration = u.Duration
	o.Stipend = u.Stipend
	o.Skills = u.Skills
	o.IsPremiumOnly = u.IsPremiumOnly
}

// Update applies an owner's edit. Approved postings are locked, and the
// repository re-checks the lock so an approval that lands after the read
// still wins.
func (s *OpportunityService) Update(ctx context.Context, v policy.Viewer, id uuid.UUID, input OpportunityUpdate) (*model.Opportunity, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.ownedBy(v, o) {
		return nil, domain.ErrForbidden
	}
	if o.Locked() {
		return nil, domain.ErrOpportunityLocked
	}

	input.apply(o)
	if err := s.opportunities.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// SupportEdit is the admin path around the edit lock.
func (s *OpportunityService) SupportEdit(ctx context.Context, admin policy.Viewer, id uuid.UUID, input OpportunityUpdate) (*model.Opportunity, error) {
	if admin.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(o)
	if err := s.opportunities.SupportUpdate(ctx, o); err != nil {
		return nil, err
	}

	if err := s.audit.LogAdminAction(ctx, subjectOf(admin), model.ActionSupportEdit, o.ID.String(), map[string]interface{}{
		"approval_status": o.ApprovalStatus,
	}); err != nil {
		slog.WarnContext(ctx, "Failed to log support edit", "error", err, "opportunityID", o.ID)
	}
	return o, nil
}

type ReviewInput struct {
	Status model.ApprovalStatus `json:"status" validate:"required,oneof=APPROVED REJECTED"`
	Note   string               `json:"note" validate:"max=1000"`
}

// Review settles a pending posting. Rejection gives the quota slot back to
// the month the posting was created in.
func (s *OpportunityService) Review(ctx context.Context, admin policy.Viewer, id uuid.UUID, input ReviewInput) (*model.Opportunity, error) {
	if admin.Role != model.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.ApprovalStatus != model.ApprovalPending {
		return nil, fmt.Errorf("%w: opportunity already %s", domain.ErrInvalidInput, o.ApprovalStatus)
	}

	if err := s.opportunities.SetApprovalStatus(ctx, id, model.ApprovalPending, input.Status); err != nil {
		return nil, err
	}
	o.ApprovalStatus = input.Status

	if input.Status == model.ApprovalRejected && o.QuotaCounted {
		if err := s.ledger.ReleasePost(ctx, o.IndustryID, o.Type, o.CreatedAt); err != nil {
			slog.ErrorContext(ctx, "Failed to release quota for rejected opportunity", "error", err, "opportunityID", o.ID)
		} else if err := s.audit.LogQuotaDecision(ctx, audit.Subject{ID: o.IndustryID.String(), Role: model.RoleIndustry},
			model.ActionQuotaRelease, string(o.Type), true, map[string]interface{}{
				"opportunity_id": o.ID.String(),
				"month":          s.ledger.MonthKey(o.CreatedAt),
			}); err != nil {
			slog.WarnContext(ctx, "Failed to log quota release", "error", err, "opportunityID", o.ID)
		}
	}

	if err := s.audit.LogAdminAction(ctx, subjectOf(admin), model.ActionOpportunityReview, o.ID.String(), map[string]interface{}{
		"status": input.Status,
		"note":   input.Note,
	}); err != nil {
		slog.WarnContext(ctx, "Failed to log opportunity review", "error", err, "opportunityID", o.ID)
	}
	return o, nil
}

// Deactivate closes a posting to new applications. Owners and admins only.
func (s *OpportunityService) Deactivate(ctx context.Context, v policy.Viewer, id uuid.UUID) error {
	o, err := s.opportunities.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !s.ownedBy(v, o) && v.Role != model.RoleAdmin {
		return domain.ErrForbidden
	}
	return s.opportunities.Deactivate(ctx, id)
}
