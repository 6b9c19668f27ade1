package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OpportunityType doubles as the quota category.
type OpportunityType string

const (
	OpportunityInternship  OpportunityType = "INTERNSHIP"
	OpportunityProject     OpportunityType = "PROJECT"
	OpportunityFreelancing OpportunityType = "FREELANCING"
)

// OpportunityTypes lists every category in display order.
var OpportunityTypes = []OpportunityType{OpportunityInternship, OpportunityProject, OpportunityFreelancing}

func (t OpportunityType) Valid() bool {
	switch t {
	case OpportunityInternship, OpportunityProject, OpportunityFreelancing:
		return true
	}
	return false
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
	ApprovalRejected ApprovalStatus = "REJECTED"
)

type Opportunity struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	IndustryID       uuid.UUID       `gorm:"type:uuid;not null;index:idx_opportunity_owner_month,priority:1;<-:create" json:"industry_id"`
	Type             OpportunityType `gorm:"type:text;not null;index:idx_opportunity_owner_month,priority:2" json:"type"`
	Title            string          `gorm:"type:text;not null" json:"title"`
	Description      string          `gorm:"type:text;not null" json:"description"`
	Requirements     string          `gorm:"type:text" json:"requirements"`
	Location         string          `gorm:"type:text" json:"location"`
	Duration         string          `gorm:"type:text" json:"duration"`
	Stipend          string          `gorm:"type:text" json:"stipend"`
	Skills           pq.StringArray  `gorm:"type:text[]" json:"skills"`
	IsPremiumOnly    bool            `gorm:"not null;default:false" json:"is_premium_only"`
	IsActive         bool            `gorm:"not null;default:true" json:"is_active"`
	ApprovalStatus   ApprovalStatus  `gorm:"type:text;not null;default:'PENDING'" json:"approval_status"`
	ViewCount        int64           `gorm:"not null;default:0" json:"view_count"`
	ApplicationCount int64           `gorm:"not null;default:0" json:"application_count"`
	// QuotaCounted is set when creating the opportunity consumed a free-tier slot.
	QuotaCounted bool      `gorm:"not null;default:false;<-:create" json:"-"`
	CreatedAt    time.Time `gorm:"index:idx_opportunity_owner_month,priority:3" json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Company Company `gorm:"foreignKey:IndustryID" json:"-"`
}

// Locked reports the edit-lock invariant: approved opportunities are immutable
// outside the admin support path.
func (o *Opportunity) Locked() bool {
	return o.ApprovalStatus == ApprovalApproved
}

// OpenForApplications reports whether candidates may apply.
func (o *Opportunity) OpenForApplications() bool {
	return o.IsActive && o.ApprovalStatus == ApprovalApproved
}
