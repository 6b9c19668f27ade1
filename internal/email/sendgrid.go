package email

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// sendgridMessage builds the v3 payload. The sender falls back to the
// configured NextIntern name and Sendgrid address.
func (s *Service) sendgridMessage(data EmailData, htmlContent, textContent string) *mail.SGMailV3 {
	fromName := data.FromName
	if fromName == "" {
		fromName = s.config.Email.FromName
	}
	fromAddress := data.From
	if fromAddress == "" {
		fromAddress = s.config.Sendgrid.From
	}

	message := mail.NewSingleEmail(
		mail.NewEmail(fromName, fromAddress),
		data.Subject,
		mail.NewEmail("", data.To),
		textContent,
		htmlContent,
	)
	if data.TemplateName != "" {
		message.AddCategories(data.TemplateName)
	}
	return message
}

func (s *Service) sendWithSendgrid(data EmailData, htmlContent, textContent string) error {
	response, err := s.sendgridClient.Send(s.sendgridMessage(data, htmlContent, textContent))
	if err != nil {
		return fmt.Errorf("failed to send %s email via Sendgrid: %w", data.TemplateName, err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("unexpected Sendgrid status code: %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
