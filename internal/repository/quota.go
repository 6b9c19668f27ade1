// internal/repository/quota.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuotaStore keeps quota counters in the posting_quotas table. Increment is a
// single conditional upsert so concurrent callers serialize on the row lock.
type QuotaStore struct {
	db *gorm.DB
}

var _ quota.Store = (*QuotaStore)(nil)

func NewQuotaStore(db *gorm.DB) *QuotaStore {
	return &QuotaStore{db: db}
}

const incrementQuotaSQL = `
INSERT INTO posting_quotas (subject_id, role, category, month_key, count, updated_at)
VALUES (?, ?, ?, ?, 1, NOW())
ON CONFLICT (subject_id, role, category, month_key)
DO UPDATE SET count = posting_quotas.count + 1, updated_at = NOW()
WHERE posting_quotas.count < ?
RETURNING count`

const setQuotaSQL = `
INSERT INTO posting_quotas (subject_id, role, category, month_key, count, updated_at)
VALUES (?, ?, ?, ?, ?, NOW())
ON CONFLICT (subject_id, role, category, month_key)
DO UPDATE SET count = EXCLUDED.count, updated_at = NOW()`

func keyWhere(db *gorm.DB, key quota.Key) *gorm.DB {
	return db.Where("subject_id = ? AND role = ? AND category = ? AND month_key = ?",
		key.SubjectID, key.Role, key.Category, key.MonthKey)
}

func (s *QuotaStore) Count(ctx context.Context, key quota.Key) (int, error) {
	var row model.PostingQuota
	result := keyWhere(s.db.WithContext(ctx), key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read quota counter: %w", result.Error)
	}
	return row.Count, nil
}

func (s *QuotaStore) Increment(ctx context.Context, key quota.Key, limit int) (int, bool, error) {
	if limit <= 0 {
		return 0, false, nil
	}
	var count int
	result := s.db.WithContext(ctx).
		Raw(incrementQuotaSQL, key.SubjectID, key.Role, key.Category, key.MonthKey, limit).
		Scan(&count)
	if result.Error != nil {
		return 0, false, fmt.Errorf("failed to increment quota counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return limit, false, nil
	}
	return count, true, nil
}

func (s *QuotaStore) Decrement(ctx context.Context, key quota.Key) error {
	result := keyWhere(s.db.WithContext(ctx).Model(&model.PostingQuota{}), key).
		Where("count > 0").
		Updates(map[string]any{"count": gorm.Expr("count - 1"), "updated_at": gorm.Expr("NOW()")})
	if result.Error != nil {
		return fmt.Errorf("failed to decrement quota counter: %w", result.Error)
	}
	return nil
}

func (s *QuotaStore) Set(ctx context.Context, key quota.Key, count int) error {
	result := s.db.WithContext(ctx).
		Exec(setQuotaSQL, key.SubjectID, key.Role, key.Category, key.MonthKey, count)
	if result.Error != nil {
		return fmt.Errorf("failed to set quota counter: %w", result.Error)
	}
	return nil
}

// ListForSubject returns every counter the subject has for month.
func (s *QuotaStore) ListForSubject(ctx context.Context, subjectID uuid.UUID, month string) ([]model.PostingQuota, error) {
	var rows []model.PostingQuota
	result := s.db.WithContext(ctx).
		Where("subject_id = ? AND month_key = ?", subjectID, month).
		Order("role, category").
		Find(&rows)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list quota counters: %w", result.Error)
	}
	return rows, nil
}
