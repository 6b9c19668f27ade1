package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Candidate is the profile owned by a CANDIDATE account. AnonymousID is assigned
// at creation and never changes.
type Candidate struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	AnonymousID    string         `gorm:"type:text;not null;uniqueIndex;<-:create" json:"anonymous_id"`
	FirstName      string         `gorm:"type:text;not null" json:"first_name"`
	LastName       string         `gorm:"type:text" json:"last_name"`
	Email          string         `gorm:"type:text" json:"email"`
	Phone          string         `gorm:"type:text" json:"phone"`
	City           string         `gorm:"type:text" json:"city"`
	State          string         `gorm:"type:text" json:"state"`
	Country        string         `gorm:"type:text" json:"country"`
	Bio            string         `gorm:"type:text" json:"bio"`
	Degree         string         `gorm:"type:text" json:"degree"`
	EducationLevel string         `gorm:"type:text" json:"education_level"`
	College        string         `gorm:"type:text" json:"college"`
	GraduationYear int            `json:"graduation_year"`
	CGPA           *float64       `json:"cgpa,omitempty"`
	ResumeURL      string         `gorm:"type:text" json:"resume_url"`
	PortfolioURL   string         `gorm:"type:text" json:"portfolio_url"`
	LinkedinURL    string         `gorm:"type:text" json:"linkedin_url"`
	GithubURL      string         `gorm:"type:text" json:"github_url"`
	Interests      pq.StringArray `gorm:"type:text[]" json:"interests"`
	// ShowFullName and ShowContact are kept for the profile editor. Redaction
	// does not read them.
	ShowFullName   bool           `gorm:"not null;default:false" json:"show_full_name"`
	ShowContact    bool           `gorm:"not null;default:false" json:"show_contact"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`

	Skills []CandidateSkill `gorm:"foreignKey:CandidateID" json:"skills"`
}

type Proficiency string

const (
	ProficiencyBeginner     Proficiency = "BEGINNER"
	ProficiencyIntermediate Proficiency = "INTERMEDIATE"
	ProficiencyAdvanced     Proficiency = "ADVANCED"
	ProficiencyExpert       Proficiency = "EXPERT"
)

type CandidateSkill struct {
	ID          uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CandidateID uuid.UUID   `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Name        string      `gorm:"type:text;not null" json:"name"`
	Proficiency Proficiency `gorm:"type:text;not null" json:"proficiency"`
}

// FullName joins first and last name.
func (c *Candidate) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
