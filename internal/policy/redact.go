package policy

import (
	"time"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
)

type SkillView struct {
	Name        string            `json:"name"`
	Proficiency model.Proficiency `json:"proficiency"`
}

// CandidateView is the viewer-facing projection of a candidate profile.
// Gated fields are nil unless disclosed.
type CandidateView struct {
	AnonymousID    string      `json:"anonymous_id"`
	DisplayName    string      `json:"display_name"`
	Disclosed      bool        `json:"disclosed"`
	Bio            string      `json:"bio"`
	Degree         string      `json:"degree"`
	EducationLevel string      `json:"education_level"`
	College        string      `json:"college"`
	GraduationYear int         `json:"graduation_year"`
	Skills         []SkillView `json:"skills"`

	ID           *uuid.UUID `json:"id,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	City         *string    `json:"city,omitempty"`
	State        *string    `json:"state,omitempty"`
	Country      *string    `json:"country,omitempty"`
	ResumeURL    *string    `json:"resume_url,omitempty"`
	PortfolioURL *string    `json:"portfolio_url,omitempty"`
	LinkedinURL  *string    `json:"linkedin_url,omitempty"`
	GithubURL    *string    `json:"github_url,omitempty"`
	CGPA         *float64   `json:"cgpa,omitempty"`
}

// CompanyView is the viewer-facing projection of a company profile.
type CompanyView struct {
	AnonymousID string `json:"anonymous_id"`
	DisplayName string `json:"display_name"`
	Disclosed   bool   `json:"disclosed"`
	IsVerified  bool   `json:"is_verified"`
	Sector      string `json:"sector"`
	Size        string `json:"size"`
	Description string `json:"description"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`

	ID      *uuid.UUID `json:"id,omitempty"`
	Website *string    `json:"website,omitempty"`
	Email   *string    `json:"email,omitempty"`
	Phone   *string    `json:"phone,omitempty"`
}

type ApplicationView struct {
	ID            uuid.UUID               `json:"id"`
	OpportunityID uuid.UUID               `json:"opportunity_id"`
	Status        model.ApplicationStatus `json:"status"`
	CoverLetter   string                  `json:"cover_letter"`
	WhyInterested string                  `json:"why_interested"`
	AppliedAt     time.Time               `json:"applied_at"`
	ReviewedAt    *time.Time              `json:"reviewed_at,omitempty"`
	Candidate     *CandidateView          `json:"candidate"`
}

type OpportunityView struct {
	ID               uuid.UUID             `json:"id"`
	Type             model.OpportunityType `json:"type"`
	Title            string                `json:"title"`
	Description      string                `json:"description"`
	Requirements     string                `json:"requirements"`
	Location         string                `json:"location"`
	Duration         string                `json:"duration"`
	Stipend          string                `json:"stipend"`
	Skills           []string              `json:"skills"`
	IsPremiumOnly    bool                  `json:"is_premium_only"`
	IsActive         bool                  `json:"is_active"`
	ApprovalStatus   model.ApprovalStatus  `json:"approval_status"`
	ViewCount        int64                 `json:"view_count"`
	ApplicationCount int64                 `json:"application_count"`
	CreatedAt        time.Time             `json:"created_at"`
	Company          *CompanyView          `json:"company,omitempty"`
}

// RedactCandidate projects a candidate profile for a viewer of the given tier.
// Name, contact, location, links and CGPA are disclosed only to premium viewers.
func RedactCandidate(p *model.Candidate, viewerIsPremium bool) (*CandidateView, error) {
	name, err := DeriveDisplayName(KindCandidate, p.AnonymousID, p.FullName(), viewerIsPremium)
	if err != nil {
		return nil, err
	}

	view := &CandidateView{
		AnonymousID:    p.AnonymousID,
		DisplayName:    name,
		Disclosed:      viewerIsPremium,
		Bio:            p.Bio,
		Degree:         p.Degree,
		EducationLevel: p.EducationLevel,
		College:        p.College,
		GraduationYear: p.GraduationYear,
		Skills:         make([]SkillView, 0, len(p.Skills)),
	}
	for _, s := range p.Skills {
		view.Skills = append(view.Skills, SkillView{Name: s.Name, Proficiency: s.Proficiency})
	}

	if !viewerIsPremium {
		return view, nil
	}

	id := p.ID
	view.ID = &id
	view.Email = ptr(p.Email)
	view.Phone = ptr(p.Phone)
	view.City = ptr(p.City)
	view.State = ptr(p.State)
	view.Country = ptr(p.Country)
	view.ResumeURL = ptr(p.ResumeURL)
	view.PortfolioURL = ptr(p.PortfolioURL)
	view.LinkedinURL = ptr(p.LinkedinURL)
	view.GithubURL = ptr(p.GithubURL)
	if p.CGPA != nil {
		cgpa := *p.CGPA
		view.CGPA = &cgpa
	}
	return view, nil
}

// RedactCompany projects a company profile. Identity and contact are disclosed
// when the owner published them or the viewer pays for access.
func RedactCompany(p *model.Company, viewerIsPremium bool) (*CompanyView, error) {
	disclose := p.ShowCompanyName || viewerIsPremium
	name, err := DeriveDisplayName(KindCompany, p.AnonymousID, p.CompanyName, disclose)
	if err != nil {
		return nil, err
	}

	view := &CompanyView{
		AnonymousID: p.AnonymousID,
		DisplayName: name,
		Disclosed:   disclose,
		IsVerified:  p.IsVerified,
		Sector:      p.Sector,
		Size:        p.Size,
		Description: p.Description,
		City:        p.City,
		State:       p.State,
		Country:     p.Country,
	}
	if !disclose {
		return view, nil
	}

	id := p.ID
	view.ID = &id
	view.Website = ptr(p.Website)
	view.Email = ptr(p.Email)
	view.Phone = ptr(p.Phone)
	return view, nil
}

// CandidateAccess decides whether v sees the candidate's gated fields.
func CandidateAccess(v Viewer, p *model.Candidate) bool {
	if v.UserID != uuid.Nil && v.UserID == p.UserID {
		return true
	}
	switch v.Role {
	case model.RoleAdmin:
		return true
	case model.RoleIndustry, model.RoleInstitute, model.RoleCandidate:
		return v.Premium()
	default:
		return false
	}
}

// CompanyAccess reports whether v pays for (or owns) the company's gated
// fields. The owner's ShowCompanyName opt-in is applied by RedactCompany.
func CompanyAccess(v Viewer, p *model.Company) bool {
	if v.UserID != uuid.Nil && v.UserID == p.UserID {
		return true
	}
	switch v.Role {
	case model.RoleAdmin:
		return true
	case model.RoleCandidate, model.RoleIndustry, model.RoleInstitute:
		return v.Premium()
	default:
		return false
	}
}

// ProjectCandidate applies the viewer's access to a candidate profile.
func ProjectCandidate(v Viewer, p *model.Candidate) (*CandidateView, error) {
	return RedactCandidate(p, CandidateAccess(v, p))
}

// ProjectCompany applies the viewer's access to a company profile.
func ProjectCompany(v Viewer, p *model.Company) (*CompanyView, error) {
	return RedactCompany(p, CompanyAccess(v, p))
}

// ProjectApplication builds an application view with its candidate redacted
// for v. The candidate must be loaded on a.
func ProjectApplication(v Viewer, a *model.Application) (*ApplicationView, error) {
	cand, err := ProjectCandidate(v, &a.Candidate)
	if err != nil {
		return nil, err
	}
	return &ApplicationView{
		ID:            a.ID,
		OpportunityID: a.OpportunityID,
		Status:        a.Status,
		CoverLetter:   a.CoverLetter,
		WhyInterested: a.WhyInterested,
		AppliedAt:     a.AppliedAt,
		ReviewedAt:    a.ReviewedAt,
		Candidate:     cand,
	}, nil
}

// ProjectOpportunity builds an opportunity view. The owning company is
// redacted for v when it is loaded on o.
func ProjectOpportunity(v Viewer, o *model.Opportunity) (*OpportunityView, error) {
	view := &OpportunityView{
		ID:               o.ID,
		Type:             o.Type,
		Title:            o.Title,
		Description:      o.Description,
		Requirements:     o.Requirements,
		Location:         o.Location,
		Duration:         o.Duration,
		Stipend:          o.Stipend,
		Skills:           []string(o.Skills),
		IsPremiumOnly:    o.IsPremiumOnly,
		IsActive:         o.IsActive,
		ApprovalStatus:   o.ApprovalStatus,
		ViewCount:        o.ViewCount,
		ApplicationCount: o.ApplicationCount,
		CreatedAt:        o.CreatedAt,
	}
	if o.Company.AnonymousID != "" {
		company, err := ProjectCompany(v, &o.Company)
		if err != nil {
			return nil, err
		}
		view.Company = company
	}
	return view, nil
}

func ptr(s string) *string { return &s }
