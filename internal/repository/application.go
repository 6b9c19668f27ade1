// internal/repository/application.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApplicationRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error)
	Exists(ctx context.Context, candidateID, opportunityID uuid.UUID) (bool, error)
	ListByOpportunity(ctx context.Context, opportunityID uuid.UUID, page Page) ([]*model.Application, int64, error)
	ListByCandidate(ctx context.Context, candidateID uuid.UUID, page Page) ([]*model.Application, int64, error)
	// UpdateStatus moves an application from one status to another; it fails
	// with ErrInvalidStatusTransition when the row is no longer in from.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicationStatus) error
}

type ApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// createApplication inserts a and bumps the opportunity's application count.
// tx must already be a transaction.
func createApplication(tx *gorm.DB, a *model.Application) error {
	if err := tx.Omit(clause.Associations).Create(a).Error; err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrAlreadyApplied
		case isForeignKeyViolation(err):
			return domain.ErrOpportunityNotFound
		}
		return fmt.Errorf("failed to create application: %w", err)
	}
	result := tx.Model(&model.Opportunity{}).
		Where("id = ?", a.OpportunityID).
		UpdateColumn("application_count", gorm.Expr("application_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment application count: %w", result.Error)
	}
	return nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Application, error) {
	var a model.Application
	result := r.db.WithContext(ctx).
		Preload("Candidate.Skills").
		Preload("Opportunity").
		First(&a, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", result.Error)
	}
	return &a, nil
}

func (r *ApplicationRepository) Exists(ctx context.Context, candidateID, opportunityID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("candidate_id = ? AND opportunity_id = ?", candidateID, opportunityID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("failed to check application: %w", result.Error)
	}
	return count > 0, nil
}

func (r *ApplicationRepository) list(ctx context.Context, column string, id uuid.UUID, page Page) ([]*model.Application, int64, error) {
	var (
		apps  []*model.Application
		count int64
	)
	query := r.db.WithContext(ctx).Model(&model.Application{}).Where(column+" = ?", id)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}
	result := page.apply(query).
		Preload("Candidate.Skills").
		Preload("Opportunity").
		Order("applied_at DESC").
		Find(&apps)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", result.Error)
	}
	return apps, count, nil
}

func (r *ApplicationRepository) ListByOpportunity(ctx context.Context, opportunityID uuid.UUID, page Page) ([]*model.Application, int64, error) {
	return r.list(ctx, "opportunity_id", opportunityID, page)
}

func (r *ApplicationRepository) ListByCandidate(ctx context.Context, candidateID uuid.UUID, page Page) ([]*model.Application, int64, error) {
	return r.list(ctx, "candidate_id", candidateID, page)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicationStatus) error {
	now := time.Now()
	updates := map[string]any{"status": to, "updated_at": now}
	if from == model.ApplicationPending {
		updates["reviewed_at"] = now
	}
	result := r.db.WithContext(ctx).Model(&model.Application{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to update application status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidStatusTransition
	}
	return nil
}
