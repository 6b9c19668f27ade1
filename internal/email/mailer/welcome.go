// internal/email/mailer/welcome.go
package mailer

import "github.com/dangerclosesec/nextintern/internal/email"

// Sender is satisfied by *email.Service.
type Sender interface {
	SendEmail(data email.EmailData) error
}

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	FirstName    string
	RoleLabel    string
	DisplayName  string
	DashboardURL string
}

// SendWelcomeEmail greets a new account and shows the pseudonym other members see.
func SendWelcomeEmail(s Sender, to string, data WelcomeTemplateData) error {
	return s.SendEmail(email.EmailData{
		To:           to,
		Subject:      "Welcome to NextIntern",
		TemplateName: "welcome",
		TemplateData: data,
	})
}
