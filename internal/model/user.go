// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	StatusPending   UserStatus = "pending"
	StatusActive    UserStatus = "active"
	StatusSuspended UserStatus = "suspended"
)

// Role is the marketplace side an account acts for.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleIndustry  Role = "INDUSTRY"
	RoleInstitute Role = "INSTITUTE"
	RoleAdmin     Role = "ADMIN"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCandidate, RoleIndustry, RoleInstitute, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Email            string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FirstName        string     `gorm:"type:text;not null" json:"first_name"`
	LastName         string     `gorm:"type:text" json:"last_name"`
	Role             Role       `gorm:"type:text;not null;index" json:"role"`
	Status           UserStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	PasswordHash     string     `gorm:"type:text;not null" json:"-"`
	IsPremium        bool       `gorm:"not null;default:false" json:"is_premium"`
	PremiumExpiresAt *time.Time `json:"premium_expires_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// PremiumActive reports whether the subscription is in force at now.
func (u *User) PremiumActive(now time.Time) bool {
	if !u.IsPremium {
		return false
	}
	return u.PremiumExpiresAt == nil || now.Before(*u.PremiumExpiresAt)
}
