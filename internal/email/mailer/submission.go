// internal/email/mailer/submission.go
package mailer

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/email"
)

// SubmissionTemplateData contains data for the submission confirmation template
type SubmissionTemplateData struct {
	FirstName     string
	Title         string
	Category      string
	IsApplication bool
	SubmittedAt   time.Time
	Unlimited     bool
	Remaining     int
	Link          string
}

// SendSubmissionConfirmation tells the submitter their application or posting went through.
func SendSubmissionConfirmation(s Sender, to string, data SubmissionTemplateData) error {
	subject := fmt.Sprintf("Your %s posting was submitted", data.Category)
	if data.IsApplication {
		subject = fmt.Sprintf("Application submitted: %s", data.Title)
	}
	return s.SendEmail(email.EmailData{
		To:           to,
		Subject:      subject,
		TemplateName: "submission_confirmation",
		TemplateData: data,
	})
}

// ApplicationReceivedTemplateData contains data for the company notification.
// CandidateName is already projected for the company's tier.
type ApplicationReceivedTemplateData struct {
	Title         string
	CandidateName string
	AppliedAt     time.Time
	Premium       bool
	Link          string
}

// SendApplicationReceived notifies a company about a new application.
func SendApplicationReceived(s Sender, to string, data ApplicationReceivedTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		Subject:      fmt.Sprintf("New application for %s", data.Title),
		TemplateName: "application_received",
		TemplateData: data,
	})
}
