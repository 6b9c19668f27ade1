// internal/repository/opportunity.go
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

// OpportunityFilter narrows a browse query. Zero values mean "any".
type OpportunityFilter struct {
	Type           model.OpportunityType
	IndustryID     uuid.UUID
	ApprovalStatus model.ApprovalStatus
	ActiveOnly     bool
	// IncludePremiumOnly is false for free candidates.
	IncludePremiumOnly bool
	Search             string
	Page
}

// MonthlyUsage is the observed number of counted postings per industry and
// category inside one month.
type MonthlyUsage struct {
	IndustryID uuid.UUID
	Type       model.OpportunityType
	Count      int
}

type OpportunityRepositoryIface interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.Opportunity, error)
	List(ctx context.Context, filter OpportunityFilter) ([]*model.Opportunity, int64, error)
	// Update writes the owner-editable columns and fails with
	// ErrOpportunityLocked once the posting is approved.
	Update(ctx context.Context, o *model.Opportunity) error
	// SupportUpdate writes the same columns without the approval lock.
	SupportUpdate(ctx context.Context, o *model.Opportunity) error
	IncrementViewCount(ctx context.Context, id uuid.UUID) error
	// SetApprovalStatus changes status only when the row is still in from.
	SetApprovalStatus(ctx context.Context, id uuid.UUID, from, to model.ApprovalStatus) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	// UsageBetween counts non-rejected opportunities created in [start, end).
	UsageBetween(ctx context.Context, start, end time.Time, industryID uuid.UUID) ([]MonthlyUsage, error)
}

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

func createOpportunity(tx *gorm.DB, o *model.Opportunity) error {
	if err := tx.Omit(clause.Associations).Create(o).Error; err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrCompanyNotFound
		}
		return fmt.Errorf("failed to create opportunity: %w", err)
	}
	return nil
}

func (r *OpportunityRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Opportunity, error) {
	var o model.Opportunity
	result := r.db.WithContext(ctx).Preload("Company").First(&o, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOpportunityNotFound
		}
		return nil, fmt.Errorf("failed to find opportunity: %w", result.Error)
	}
	return &o, nil
}

func (r *OpportunityRepository) List(ctx context.Context, filter OpportunityFilter) ([]*model.Opportunity, int64, error) {
	var (
		opps  []*model.Opportunity
		count int64
	)

	query := r.db.WithContext(ctx).Model(&model.Opportunity{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.IndustryID != uuid.Nil {
		query = query.Where("industry_id = ?", filter.IndustryID)
	}
	if filter.ApprovalStatus != "" {
		query = query.Where("approval_status = ?", filter.ApprovalStatus)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if !filter.IncludePremiumOnly {
		query = query.Where("is_premium_only = ?", false)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", like, like)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count opportunities: %w", err)
	}

	result := filter.Page.apply(query).Preload("Company").Order("created_at DESC").Find(&opps)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to list opportunities: %w", result.Error)
	}
	return opps, count, nil
}

// opportunityContentColumns are the only columns an edit may write. Review
// status, counters and is_active have their own guarded statements.
var opportunityContentColumns = []string{
	"title", "description", "requirements", "location",
	"duration", "stipend", "skills", "is_premium_only", "updated_at",
}

func updateOpportunityContent(tx *gorm.DB, o *model.Opportunity, lockApproved bool) *gorm.DB {
	query := tx.Model(o).Clauses(clause.Returning{})
	if lockApproved {
		query = query.Where("approval_status <> ?", model.ApprovalApproved)
	}
	return query.Select(opportunityContentColumns).Updates(o)
}

func (r *OpportunityRepository) Update(ctx context.Context, o *model.Opportunity) error {
	result := updateOpportunityContent(r.db.WithContext(ctx), o, true)
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOpportunityLocked
	}
	return nil
}

func (r *OpportunityRepository) SupportUpdate(ctx context.Context, o *model.Opportunity) error {
	result := updateOpportunityContent(r.db.WithContext(ctx), o, false)
	if result.Error != nil {
		return fmt.Errorf("failed to update opportunity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Opportunity{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to increment view count: %w", result.Error)
	}
	return nil
}

func (r *OpportunityRepository) SetApprovalStatus(ctx context.Context, id uuid.UUID, from, to model.ApprovalStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Opportunity{}).
		Where("id = ? AND approval_status = ?", id, from).
		Updates(map[string]any{"approval_status": to, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to update approval status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Opportunity{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": false, "updated_at": time.Now()})
	if result.Error != nil {
		return fmt.Errorf("failed to deactivate opportunity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrOpportunityNotFound
	}
	return nil
}

func (r *OpportunityRepository) UsageBetween(ctx context.Context, start, end time.Time, industryID uuid.UUID) ([]MonthlyUsage, error) {
	var usage []MonthlyUsage
	query := r.db.WithContext(ctx).Model(&model.Opportunity{}).
		Select("industry_id, type, COUNT(*) AS count").
		Where("created_at >= ? AND created_at < ?", start, end).
		Where("approval_status <> ? AND quota_counted = ?", model.ApprovalRejected, true)
	if industryID != uuid.Nil {
		query = query.Where("industry_id = ?", industryID)
	}
	if err := query.Group("industry_id, type").Scan(&usage).Error; err != nil {
		return nil, fmt.Errorf("failed to count opportunity usage: %w", err)
	}
	return usage, nil
}
