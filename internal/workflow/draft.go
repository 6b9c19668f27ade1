package workflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationDraft is the carry-over payload for an application submission.
type ApplicationDraft struct {
	OpportunityID uuid.UUID `json:"opportunity_id" validate:"required"`
	CoverLetter   string    `json:"cover_letter" validate:"required,min=100,max=5000"`
	WhyInterested string    `json:"why_interested" validate:"required,min=50,max=2000"`
	PortfolioURL  string    `json:"portfolio_url" validate:"omitempty,url"`
	GithubURL     string    `json:"github_url" validate:"omitempty,url"`
}

// OpportunityDraft is the carry-over payload for an opportunity posting.
type OpportunityDraft struct {
	Type          model.OpportunityType `json:"type" validate:"required,oneof=INTERNSHIP PROJECT FREELANCING"`
	Title         string                `json:"title" validate:"required,min=5,max=150"`
	Description   string                `json:"description" validate:"required,min=100,max=10000"`
	Requirements  string                `json:"requirements" validate:"required,min=20,max=5000"`
	Location      string                `json:"location" validate:"required"`
	Duration      string                `json:"duration" validate:"required"`
	Stipend       string                `json:"stipend" validate:"omitempty,max=100"`
	Skills        []string              `json:"skills" validate:"max=20,dive,required,max=50"`
	IsPremiumOnly bool                  `json:"is_premium_only"`
	ApplyURL      string                `json:"apply_url" validate:"omitempty,url"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidationFailure converts validator output into the first failing field.
// Any other error is returned unchanged.
func ValidationFailure(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &domain.ValidationError{Field: fe.Field(), Constraint: fe.Tag(), Param: fe.Param()}
	}
	return err
}

// ValidateStruct runs the shared validator and maps its failure.
func ValidateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return ValidationFailure(err)
	}
	return nil
}

// DecodeApplicationDraft parses and validates an application payload.
func DecodeApplicationDraft(payload []byte) (*ApplicationDraft, error) {
	var d ApplicationDraft
	if err := decode(payload, &d); err != nil {
		return nil, err
	}
	if err := ValidateStruct(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// DecodeOpportunityDraft parses and validates an opportunity payload.
func DecodeOpportunityDraft(payload []byte) (*OpportunityDraft, error) {
	var d OpportunityDraft
	if err := decode(payload, &d); err != nil {
		return nil, err
	}
	if err := ValidateStruct(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// ValidateDraft checks that payload is a complete draft of the given kind.
func ValidateDraft(kind model.SubmissionKind, payload []byte) error {
	switch kind {
	case model.SubmissionApplication:
		_, err := DecodeApplicationDraft(payload)
		return err
	case model.SubmissionOpportunity:
		_, err := DecodeOpportunityDraft(payload)
		return err
	default:
		return &domain.ValidationError{Field: "kind", Constraint: "oneof", Param: "APPLICATION OPPORTUNITY"}
	}
}

func decode(payload []byte, dst any) error {
	if len(payload) == 0 {
		return &domain.ValidationError{Field: "payload", Constraint: "required"}
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("malformed draft payload: %w", domain.ErrInvalidInput)
	}
	return nil
}
