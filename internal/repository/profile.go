// internal/repository/profile.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CandidateRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Candidate, error)
	FindByAnonymousID(ctx context.Context, anonymousID string) (*model.Candidate, error)
	// Update writes the owner-editable columns and replaces the skill list.
	Update(ctx context.Context, candidate *model.Candidate) error
}

type CompanyRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Company, error)
	FindByAnonymousID(ctx context.Context, anonymousID string) (*model.Company, error)
	// Update writes the owner-editable columns. Verification is left alone.
	Update(ctx context.Context, company *model.Company) error
}

var candidateProfileColumns = []string{
	"first_name", "last_name", "email", "phone", "city", "state", "country",
	"bio", "degree", "education_level", "college", "graduation_year", "cgpa",
	"resume_url", "portfolio_url", "linkedin_url", "github_url", "interests",
	"show_full_name", "show_contact", "updated_at",
}

var companyProfileColumns = []string{
	"company_name", "show_company_name", "sector", "size", "description",
	"city", "state", "country", "website", "email", "phone", "updated_at",
}

func updateCandidateProfile(tx *gorm.DB, candidate *model.Candidate) *gorm.DB {
	return tx.Model(candidate).Select(candidateProfileColumns).Updates(candidate)
}

func updateCompanyProfile(tx *gorm.DB, company *model.Company) *gorm.DB {
	return tx.Model(company).Select(companyProfileColumns).Updates(company)
}

type CandidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) *CandidateRepository {
	return &CandidateRepository{db: db}
}

func (r *CandidateRepository) findOne(ctx context.Context, query string, arg any) (*model.Candidate, error) {
	var c model.Candidate
	result := r.db.WithContext(ctx).Preload("Skills").Where(query, arg).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("failed to find candidate: %w", result.Error)
	}
	return &c, nil
}

func (r *CandidateRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Candidate, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CandidateRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Candidate, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *CandidateRepository) FindByAnonymousID(ctx context.Context, anonymousID string) (*model.Candidate, error) {
	return r.findOne(ctx, "anonymous_id = ?", anonymousID)
}

func (r *CandidateRepository) Update(ctx context.Context, candidate *model.Candidate) error {
	err := inTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		result := updateCandidateProfile(tx, candidate)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrCandidateNotFound
		}
		if err := tx.Where("candidate_id = ?", candidate.ID).Delete(&model.CandidateSkill{}).Error; err != nil {
			return err
		}
		for i := range candidate.Skills {
			candidate.Skills[i].ID = uuid.Nil
			candidate.Skills[i].CandidateID = candidate.ID
		}
		if len(candidate.Skills) > 0 {
			return tx.Create(&candidate.Skills).Error
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update candidate: %w", err)
	}
	return nil
}

type CompanyRepository struct {
	db *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) findOne(ctx context.Context, query string, arg any) (*model.Company, error) {
	var c model.Company
	result := r.db.WithContext(ctx).Where(query, arg).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("failed to find company: %w", result.Error)
	}
	return &c, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Company, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *CompanyRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Company, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *CompanyRepository) FindByAnonymousID(ctx context.Context, anonymousID string) (*model.Company, error) {
	return r.findOne(ctx, "anonymous_id = ?", anonymousID)
}

func (r *CompanyRepository) Update(ctx context.Context, company *model.Company) error {
	result := updateCompanyProfile(r.db.WithContext(ctx), company)
	if result.Error != nil {
		return fmt.Errorf("failed to update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
