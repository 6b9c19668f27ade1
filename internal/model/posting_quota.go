package model

import (
	"time"

	"github.com/google/uuid"
)

// PostingQuota is the per-month counter behind the quota ledger. Rows for past
// months are never reset; a new MonthKey starts a fresh counter.
type PostingQuota struct {
	SubjectID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      Role      `gorm:"type:text;primaryKey"`
	Category  string    `gorm:"type:text;primaryKey"`
	MonthKey  string    `gorm:"type:char(7);primaryKey"`
	Count     int       `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

func (PostingQuota) TableName() string {
	return "posting_quotas"
}
