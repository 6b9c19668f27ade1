package service

import (
	"context"
	"fmt"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
)

// ProfileService serves raw profiles. Redaction happens when the handler
// serializes them for the requesting viewer.
type ProfileService struct {
	candidates repository.CandidateRepositoryIface
	companies  repository.CompanyRepositoryIface
}

func NewProfileService(candidates repository.CandidateRepositoryIface, companies repository.CompanyRepositoryIface) *ProfileService {
	return &ProfileService{candidates: candidates, companies: companies}
}

func (s *ProfileService) Candidate(ctx context.Context, anonymousID string) (*model.Candidate, error) {
	return s.candidates.FindByAnonymousID(ctx, anonymousID)
}

func (s *ProfileService) Company(ctx context.Context, anonymousID string) (*model.Company, error) {
	return s.companies.FindByAnonymousID(ctx, anonymousID)
}

func (s *ProfileService) OwnCandidate(ctx context.Context, userID uuid.UUID) (*model.Candidate, error) {
	return s.candidates.FindByUserID(ctx, userID)
}

func (s *ProfileService) OwnCompany(ctx context.Context, userID uuid.UUID) (*model.Company, error) {
	return s.companies.FindByUserID(ctx, userID)
}

type SkillInput struct {
	Name        string            `json:"name" validate:"required,max=50"`
	Proficiency model.Proficiency `json:"proficiency" validate:"required,oneof=BEGINNER INTERMEDIATE ADVANCED EXPERT"`
}

// CandidateUpdate replaces every owner-editable field of a candidate profile.
//
// ShowFullName and ShowContact are stored preferences only. Candidate identity
// and contact details are disclosed by viewer tier alone, so setting them never
// widens what a free viewer sees.
type CandidateUpdate struct {
	FirstName      string       `json:"first_name" validate:"required,max=100"`
	LastName       string       `json:"last_name" validate:"max=100"`
	Email          string       `json:"email" validate:"omitempty,email"`
	Phone          string       `json:"phone" validate:"omitempty,max=30"`
	City           string       `json:"city" validate:"max=100"`
	State          string       `json:"state" validate:"max=100"`
	Country        string       `json:"country" validate:"max=100"`
	Bio            string       `json:"bio" validate:"max=2000"`
	Degree         string       `json:"degree" validate:"max=100"`
	EducationLevel string       `json:"education_level" validate:"max=100"`
	College        string       `json:"college" validate:"max=200"`
	GraduationYear int          `json:"graduation_year" validate:"omitempty,min=1950,max=2100"`
	CGPA           *float64     `json:"cgpa" validate:"omitempty,min=0,max=10"`
	ResumeURL      string       `json:"resume_url" validate:"omitempty,url"`
	PortfolioURL   string       `json:"portfolio_url" validate:"omitempty,url"`
	LinkedinURL    string       `json:"linkedin_url" validate:"omitempty,url"`
	GithubURL      string       `json:"github_url" validate:"omitempty,url"`
	Interests      []string     `json:"interests" validate:"max=20,dive,max=50"`
	ShowFullName   bool         `json:"show_full_name"`
	ShowContact    bool         `json:"show_contact"`
	Skills         []SkillInput `json:"skills" validate:"max=30,dive"`
}

// UpdateCandidate applies the owner's edits. The anonymous id is never touched.
func (s *ProfileService) UpdateCandidate(ctx context.Context, userID uuid.UUID, input CandidateUpdate) (*model.Candidate, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	c, err := s.candidates.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.FirstName = input.FirstName
	c.LastName = input.LastName
	c.Email = input.Email
	c.Phone = input.Phone
	c.City = input.City
	c.State = input.State
	c.Country = input.Country
	c.Bio = input.Bio
	c.Degree = input.Degree
	c.EducationLevel = input.EducationLevel
	c.College = input.College
	c.GraduationYear = input.GraduationYear
	c.CGPA = input.CGPA
	c.ResumeURL = input.ResumeURL
	c.PortfolioURL = input.PortfolioURL
	c.LinkedinURL = input.LinkedinURL
	c.GithubURL = input.GithubURL
	c.Interests = input.Interests
	c.ShowFullName = input.ShowFullName
	c.ShowContact = input.ShowContact
	c.Skills = make([]model.CandidateSkill, 0, len(input.Skills))
	for _, sk := range input.Skills {
		c.Skills = append(c.Skills, model.CandidateSkill{Name: sk.Name, Proficiency: sk.Proficiency})
	}

	if err := s.candidates.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating candidate profile: %w", err)
	}
	return c, nil
}

// CompanyUpdate replaces every owner-editable field of a company profile.
// Verification is granted by admins and is not editable here.
type CompanyUpdate struct {
	CompanyName     string `json:"company_name" validate:"required,max=200"`
	ShowCompanyName bool   `json:"show_company_name"`
	Sector          string `json:"sector" validate:"max=100"`
	Size            string `json:"size" validate:"max=50"`
	Description     string `json:"description" validate:"max=5000"`
	City            string `json:"city" validate:"max=100"`
	State           string `json:"state" validate:"max=100"`
	Country         string `json:"country" validate:"max=100"`
	Website         string `json:"website" validate:"omitempty,url"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone" validate:"omitempty,max=30"`
}

func (s *ProfileService) UpdateCompany(ctx context.Context, userID uuid.UUID, input CompanyUpdate) (*model.Company, error) {
	if err := workflow.ValidateStruct(input); err != nil {
		return nil, err
	}
	c, err := s.companies.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	c.CompanyName = input.CompanyName
	c.ShowCompanyName = input.ShowCompanyName
	c.Sector = input.Sector
	c.Size = input.Size
	c.Description = input.Description
	c.City = input.City
	c.State = input.State
	c.Country = input.Country
	c.Website = input.Website
	c.Email = input.Email
	c.Phone = input.Phone

	if err := s.companies.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("updating company profile: %w", err)
	}
	return c, nil
}
