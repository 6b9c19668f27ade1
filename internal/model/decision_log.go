package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// PolicyDecisionLog records quota and submission decisions for later audit.
type PolicyDecisionLog struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Timestamp   time.Time `json:"timestamp" gorm:"default:CURRENT_TIMESTAMP;index"`
	ActionType  string    `json:"action_type" gorm:"index"`
	Allowed     *bool     `json:"allowed"`
	SubjectRole Role      `json:"subject_role"`
	SubjectID   string    `json:"subject_id" gorm:"index"`
	Category    string    `json:"category"`
	TargetID    string    `json:"target_id"`
	Context     JSONMap   `json:"context" gorm:"type:jsonb"`
	RequestID   string    `json:"request_id"`
	ClientIP    string    `json:"client_ip"`
	UserAgent   string    `json:"user_agent"`
	CreatedAt   time.Time `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

func (PolicyDecisionLog) TableName() string {
	return "policy_decision_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

const (
	ActionQuotaCheck        = "quota_check"
	ActionQuotaConsume      = "quota_consume"
	ActionQuotaRelease      = "quota_release"
	ActionSubmission        = "submission"
	ActionOpportunityReview = "opportunity_review"
	ActionSupportEdit       = "support_edit"
)
