package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type SubmissionKind string

const (
	SubmissionApplication SubmissionKind = "APPLICATION"
	SubmissionOpportunity SubmissionKind = "OPPORTUNITY"
)

type SubmissionState string

const (
	SubmissionDraft             SubmissionState = "DRAFT"
	SubmissionTermsPending      SubmissionState = "TERMS_PENDING"
	SubmissionTermsAcknowledged SubmissionState = "TERMS_ACKNOWLEDGED"
	SubmissionSubmitted         SubmissionState = "SUBMITTED"
)

// Submission persists one gated submission workflow. TermsEnteredAt is stamped
// with server time on entry into TERMS_PENDING; clients never supply it.
type Submission struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"owner_id"`
	Kind           SubmissionKind  `gorm:"type:text;not null" json:"kind"`
	State          SubmissionState `gorm:"type:text;not null;default:'DRAFT'" json:"state"`
	Payload        datatypes.JSON  `gorm:"type:jsonb" json:"payload"`
	TermsEnteredAt *time.Time      `json:"terms_entered_at,omitempty"`
	ScrolledToEnd  bool            `gorm:"not null;default:false" json:"scrolled_to_end"`
	Acknowledged   bool            `gorm:"not null;default:false" json:"acknowledged"`
	SubmittingAt   *time.Time      `json:"-"`
	SubmittedAt    *time.Time      `json:"submitted_at,omitempty"`
	ResultID       *uuid.UUID      `gorm:"type:uuid" json:"result_id,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
