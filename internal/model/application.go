package model

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationPending            ApplicationStatus = "PENDING"
	ApplicationReviewed           ApplicationStatus = "REVIEWED"
	ApplicationShortlisted        ApplicationStatus = "SHORTLISTED"
	ApplicationInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationSelected           ApplicationStatus = "SELECTED"
	ApplicationRejected           ApplicationStatus = "REJECTED"
)

// applicationRank orders the forward progression. REJECTED sits outside it.
var applicationRank = map[ApplicationStatus]int{
	ApplicationPending:            0,
	ApplicationReviewed:           1,
	ApplicationShortlisted:        2,
	ApplicationInterviewScheduled: 3,
	ApplicationSelected:           4,
}

func (s ApplicationStatus) Valid() bool {
	if s == ApplicationRejected {
		return true
	}
	_, ok := applicationRank[s]
	return ok
}

// CanTransitionTo reports whether an application may move from s to next.
// Progress is strictly forward; REJECTED is reachable from any non-SELECTED
// state and is terminal.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s == ApplicationRejected || s == ApplicationSelected {
		return false
	}
	if next == ApplicationRejected {
		return true
	}
	from, ok := applicationRank[s]
	if !ok {
		return false
	}
	to, ok := applicationRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Application is unique per (CandidateID, OpportunityID).
type Application struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID   uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uk_application_candidate_opportunity,priority:1" json:"candidate_id"`
	OpportunityID uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:uk_application_candidate_opportunity,priority:2;index" json:"opportunity_id"`
	IndustryID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"industry_id"`
	Status        ApplicationStatus `gorm:"type:text;not null;default:'PENDING'" json:"status"`
	CoverLetter   string            `gorm:"type:text;not null" json:"cover_letter"`
	WhyInterested string            `gorm:"type:text" json:"why_interested"`
	AppliedAt     time.Time         `gorm:"not null" json:"applied_at"`
	ReviewedAt    *time.Time        `json:"reviewed_at,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`

	Candidate   Candidate   `gorm:"foreignKey:CandidateID" json:"-"`
	Opportunity Opportunity `gorm:"foreignKey:OpportunityID" json:"-"`
}
