package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is the industry-side profile. ShowCompanyName is the owner's opt-in to
// publish its real identity to every viewer.
type Company struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	AnonymousID     string    `gorm:"type:text;not null;uniqueIndex;<-:create" json:"anonymous_id"`
	CompanyName     string    `gorm:"type:text;not null" json:"company_name"`
	IsVerified      bool      `gorm:"not null;default:false" json:"is_verified"`
	ShowCompanyName bool      `gorm:"not null;default:false" json:"show_company_name"`
	Sector          string    `gorm:"type:text" json:"sector"`
	Size            string    `gorm:"type:text" json:"size"`
	Description     string    `gorm:"type:text" json:"description"`
	City            string    `gorm:"type:text" json:"city"`
	State           string    `gorm:"type:text" json:"state"`
	Country         string    `gorm:"type:text" json:"country"`
	Website         string    `gorm:"type:text" json:"website"`
	Email           string    `gorm:"type:text" json:"email"`
	Phone           string    `gorm:"type:text" json:"phone"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
