package service

import (
	"context"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/google/uuid"
)

// ApplicationService covers applications after they exist. Creating one
// goes through the gated submission workflow.
type ApplicationService struct {
	applications  repository.ApplicationRepositoryIface
	opportunities repository.OpportunityRepositoryIface
	candidates    repository.CandidateRepositoryIface
	companies     repository.CompanyRepositoryIface
}

func NewApplicationService(
	applications repository.ApplicationRepositoryIface,
	opportunities repository.OpportunityRepositoryIface,
	candidates repository.CandidateRepositoryIface,
	companies repository.CompanyRepositoryIface,
) *ApplicationService {
	return &ApplicationService{
		applications:  applications,
		opportunities: opportunities,
		candidates:    candidates,
		companies:     companies,
	}
}

// canManage reports whether v owns the company behind industryID, or is an admin.
func (s *ApplicationService) canManage(ctx context.Context, v policy.Viewer, industryID uuid.UUID) (bool, error) {
	if v.Role == model.RoleAdmin {
		return true, nil
	}
	if v.Role != model.RoleIndustry {
		return false, nil
	}
	company, err := s.companies.FindByUserID(ctx, v.UserID)
	if err != nil {
		return false, err
	}
	return company.ID == industryID, nil
}

// ListForOpportunity returns the applications a company received. Candidates
// are redacted for the viewer when serialized.
func (s *ApplicationService) ListForOpportunity(ctx context.Context, v policy.Viewer, opportunityID uuid.UUID, page repository.Page) ([]*model.Application, int64, error) {
	o, err := s.opportunities.FindByID(ctx, opportunityID)
	if err != nil {
		return nil, 0, err
	}
	ok, err := s.canManage(ctx, v, o.IndustryID)
	if err != nil {
		return nil, 0, err
	}
	if !ok {
		return nil, 0, domain.ErrForbidden
	}
	return s.applications.ListByOpportunity(ctx, opportunityID, page)
}

// ListOwn returns the caller's own applications.
func (s *ApplicationService) ListOwn(ctx context.Context, v policy.Viewer, page repository.Page) ([]*model.Application, int64, error) {
	candidate, err := s.candidates.FindByUserID(ctx, v.UserID)
	if err != nil {
		return nil, 0, err
	}
	return s.applications.ListByCandidate(ctx, candidate.ID, page)
}

// Get returns an application to its candidate, the receiving company or an admin.
func (s *ApplicationService) Get(ctx context.Context, v policy.Viewer, id uuid.UUID) (*model.Application, error) {
	a, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Candidate.UserID == v.UserID {
		return a, nil
	}
	ok, err := s.canManage(ctx, v, a.IndustryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrApplicationNotFound
	}
	return a, nil
}

type StatusInput struct {
	Status model.ApplicationStatus `json:"status" validate:"required"`
}

// UpdateStatus moves an application forward, or to REJECTED. The stored
// status is compared on write so two reviewers cannot both move it.
func (s *ApplicationService) UpdateStatus(ctx context.Context, v policy.Viewer, id uuid.UUID, input StatusInput) (*model.Application, error) {
	if !input.Status.Valid() {
		return nil, &domain.ValidationError{Field: "status", Constraint: "oneof", Param: "REVIEWED SHORTLISTED INTERVIEW_SCHEDULED SELECTED REJECTED"}
	}
	a, err := s.applications.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.canManage(ctx, v, a.IndustryID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrForbidden
	}
	if !a.Status.CanTransitionTo(input.Status) {
		return nil, domain.ErrInvalidStatusTransition
	}

	if err := s.applications.UpdateStatus(ctx, id, a.Status, input.Status); err != nil {
		return nil, err
	}
	a.Status = input.Status
	return a, nil
}
