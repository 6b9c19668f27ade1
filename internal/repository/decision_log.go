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
)

type DecisionLogRepositoryIface interface {
	Create(ctx context.Context, log *model.PolicyDecisionLog) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.PolicyDecisionLog, error)
	Query(ctx context.Context, params QueryParams) ([]model.PolicyDecisionLog, int64, error)
}

// DecisionLogRepository handles database operations for policy decision logs
type DecisionLogRepository struct {
	db *gorm.DB
}

// NewDecisionLogRepository creates a new DecisionLogRepository
func NewDecisionLogRepository(db *gorm.DB) *DecisionLogRepository {
	return &DecisionLogRepository{
		db: db,
	}
}

// Create inserts a new decision log entry
func (r *DecisionLogRepository) Create(ctx context.Context, log *model.PolicyDecisionLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}

	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}

	result := r.db.WithContext(ctx).Create(log)
	if result.Error != nil {
		return fmt.Errorf("failed to create policy decision log: %w", result.Error)
	}

	return nil
}

// FindByID retrieves a decision log entry by its ID
func (r *DecisionLogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.PolicyDecisionLog, error) {
	var log model.PolicyDecisionLog
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&log)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find policy decision log: %w", result.Error)
	}

	return &log, nil
}

// QueryParams holds parameters for querying decision logs
type QueryParams struct {
	ActionType  string
	SubjectRole string
	SubjectID   string
	Category    string
	TargetID    string
	Allowed     *bool
	StartTime   time.Time
	EndTime     time.Time
	Limit       int
	Offset      int
}

// Query retrieves decision logs based on the provided query parameters
func (r *DecisionLogRepository) Query(ctx context.Context, params QueryParams) ([]model.PolicyDecisionLog, int64, error) {
	var logs []model.PolicyDecisionLog
	var count int64

	query := r.db.WithContext(ctx).Model(&model.PolicyDecisionLog{})

	if params.ActionType != "" {
		query = query.Where("action_type = ?", params.ActionType)
	}
	if params.SubjectRole != "" {
		query = query.Where("subject_role = ?", params.SubjectRole)
	}
	if params.SubjectID != "" {
		query = query.Where("subject_id = ?", params.SubjectID)
	}
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}
	if params.TargetID != "" {
		query = query.Where("target_id = ?", params.TargetID)
	}
	if params.Allowed != nil {
		query = query.Where("allowed = ?", *params.Allowed)
	}
	if !params.StartTime.IsZero() {
		query = query.Where("timestamp >= ?", params.StartTime)
	}
	if !params.EndTime.IsZero() {
		query = query.Where("timestamp <= ?", params.EndTime)
	}

	// Get total count for pagination
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count policy decision logs: %w", err)
	}

	result := Page{Limit: params.Limit, Offset: params.Offset}.apply(query).
		Order("timestamp DESC").
		Find(&logs)
	if result.Error != nil {
		return nil, 0, fmt.Errorf("failed to query policy decision logs: %w", result.Error)
	}

	return logs, count, nil
}
