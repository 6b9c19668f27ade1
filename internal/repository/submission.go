// internal/repository/submission.go
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

// SubmissionChange is a workflow transition written as a compare-and-set. It
// lands only while the row is in From and, inside the terms states, still
// belongs to the terms session that started at EnteredAt.
type SubmissionChange struct {
	From      model.SubmissionState
	EnteredAt *time.Time
	// UnmodifiedSince requires updated_at to be unchanged since the read.
	UnmodifiedSince *time.Time
	// RequireEngaged requires both engagement flags to be set in the row.
	RequireEngaged bool
	Action         string
	Columns        []string
}

// ChangeFrom guards a write on the state and terms session s was read in.
func ChangeFrom(s *model.Submission, action string) SubmissionChange {
	c := SubmissionChange{From: s.State, Action: action}
	if s.TermsEnteredAt != nil {
		at := *s.TermsEnteredAt
		c.EnteredAt = &at
	}
	return c
}

// Unmodified also requires the row to be untouched since it was read.
func (c SubmissionChange) Unmodified(updatedAt time.Time) SubmissionChange {
	c.UnmodifiedSince = &updatedAt
	return c
}

// Engaged also requires the scroll and checkbox flags to still be set.
func (c SubmissionChange) Engaged() SubmissionChange {
	c.RequireEngaged = true
	return c
}

// Set names the columns the transition owns. updated_at is always written.
func (c SubmissionChange) Set(columns ...string) SubmissionChange {
	c.Columns = columns
	return c
}

type SubmissionRepositoryIface interface {
	Create(ctx context.Context, s *model.Submission) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error)
	// Apply writes the columns of one transition when the row still matches
	// the guard in change, and refreshes s from the row.
	Apply(ctx context.Context, s *model.Submission, change SubmissionChange) error
	// Claim marks the submission as being submitted. It returns false when the
	// submission is already SUBMITTED or another claim younger than staleAfter
	// holds it.
	Claim(ctx context.Context, id uuid.UUID, now time.Time, staleAfter time.Duration) (bool, error)
	// Release drops a claim after a failed submit.
	Release(ctx context.Context, id uuid.UUID) error
	// CompleteWithOpportunity creates o and records s, already moved to
	// SUBMITTED in memory, in one transaction.
	CompleteWithOpportunity(ctx context.Context, s *model.Submission, o *model.Opportunity) error
	// CompleteWithApplication creates a and records s as SUBMITTED atomically.
	CompleteWithApplication(ctx context.Context, s *model.Submission, a *model.Application) error
}

type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

func (r *SubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("failed to create submission: %w", err)
	}
	return nil
}

func (r *SubmissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Submission, error) {
	var s model.Submission
	result := r.db.WithContext(ctx).First(&s, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("failed to find submission: %w", result.Error)
	}
	return &s, nil
}

func applySubmissionChange(tx *gorm.DB, s *model.Submission, c SubmissionChange) *gorm.DB {
	query := tx.Model(s).Clauses(clause.Returning{}).Where("state = ?", c.From)
	if c.EnteredAt != nil {
		query = query.Where("terms_entered_at = ?", *c.EnteredAt)
	}
	if c.UnmodifiedSince != nil {
		query = query.Where("updated_at = ?", *c.UnmodifiedSince)
	}
	if c.RequireEngaged {
		query = query.Where("scrolled_to_end AND acknowledged")
	}
	columns := make([]string, 0, len(c.Columns)+1)
	columns = append(columns, c.Columns...)
	columns = append(columns, "updated_at")
	return query.Select(columns).Updates(s)
}

func (r *SubmissionRepository) Apply(ctx context.Context, s *model.Submission, change SubmissionChange) error {
	if len(change.Columns) == 0 {
		return nil
	}
	result := applySubmissionChange(r.db.WithContext(ctx), s, change)
	if result.Error != nil {
		return fmt.Errorf("failed to save submission: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		current, err := r.FindByID(ctx, s.ID)
		if err != nil {
			return err
		}
		return &domain.WorkflowStateError{State: string(current.State), Action: change.Action}
	}
	return nil
}

func (r *SubmissionRepository) Claim(ctx context.Context, id uuid.UUID, now time.Time, staleAfter time.Duration) (bool, error) {
	result := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ? AND state <> ?", id, model.SubmissionSubmitted).
		Where("submitting_at IS NULL OR submitting_at < ?", now.Add(-staleAfter)).
		Update("submitting_at", now)
	if result.Error != nil {
		return false, fmt.Errorf("failed to claim submission: %w", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *SubmissionRepository) Release(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&model.Submission{}).
		Where("id = ? AND state <> ?", id, model.SubmissionSubmitted).
		Update("submitting_at", nil)
	if result.Error != nil {
		return fmt.Errorf("failed to release submission: %w", result.Error)
	}
	return nil
}

func markSubmitted(tx *gorm.DB, s *model.Submission) error {
	result := tx.Model(&model.Submission{}).
		Where("id = ? AND state <> ?", s.ID, model.SubmissionSubmitted).
		Updates(map[string]any{
			"state":         s.State,
			"result_id":     s.ResultID,
			"submitted_at":  s.SubmittedAt,
			"submitting_at": nil,
			"updated_at":    s.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to mark submission submitted: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrDuplicateSubmission
	}
	return nil
}

func (r *SubmissionRepository) CompleteWithOpportunity(ctx context.Context, s *model.Submission, o *model.Opportunity) error {
	return inTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := createOpportunity(tx, o); err != nil {
			return err
		}
		return markSubmitted(tx, s)
	})
}

func (r *SubmissionRepository) CompleteWithApplication(ctx context.Context, s *model.Submission, a *model.Application) error {
	return inTx(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		if err := createApplication(tx, a); err != nil {
			return err
		}
		return markSubmitted(tx, s)
	})
}
