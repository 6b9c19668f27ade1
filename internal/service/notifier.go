package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/nextintern/internal/email/mailer"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/repository"
)

// EmailNotifier mails the submitter a confirmation and, for applications,
// tells the receiving company. The candidate's name in that mail is projected
// for the company's own tier.
type EmailNotifier struct {
	sender  mailer.Sender
	users   repository.UserRepositoryIface
	baseURL string
	now     func() time.Time
}

func NewEmailNotifier(sender mailer.Sender, users repository.UserRepositoryIface, baseURL string) *EmailNotifier {
	return &EmailNotifier{
		sender:  sender,
		users:   users,
		baseURL: baseURL,
		now:     time.Now,
	}
}

func (n *EmailNotifier) SubmissionSucceeded(ctx context.Context, event SubmissionEvent) error {
	submitter, err := n.users.FindByID(ctx, event.Submitter.UserID)
	if err != nil {
		return fmt.Errorf("loading submitter: %w", err)
	}

	sub := event.Submission
	data := mailer.SubmissionTemplateData{
		FirstName:     submitter.FirstName,
		IsApplication: sub.Kind == model.SubmissionApplication,
		Unlimited:     event.Quota.Unlimited,
		Remaining:     event.Quota.Remaining,
	}
	if sub.SubmittedAt != nil {
		data.SubmittedAt = *sub.SubmittedAt
	}
	if o := event.Opportunity; o != nil {
		data.Title = o.Title
		data.Category = string(o.Type)
	}
	if data.IsApplication && event.Application != nil {
		data.Link = n.baseURL + "/applications/" + event.Application.ID.String()
	} else if event.Opportunity != nil {
		data.Link = n.baseURL + "/opportunities/" + event.Opportunity.ID.String()
	}

	errs := []error{}
	if err := mailer.SendSubmissionConfirmation(n.sender, submitter.Email, data); err != nil {
		errs = append(errs, fmt.Errorf("confirmation: %w", err))
	}
	if data.IsApplication {
		if err := n.notifyCompany(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("company notification: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (n *EmailNotifier) notifyCompany(ctx context.Context, event SubmissionEvent) error {
	if event.Opportunity == nil || event.Candidate == nil || event.Application == nil {
		return nil
	}
	company := event.Opportunity.Company
	owner, err := n.users.FindByID(ctx, company.UserID)
	if err != nil {
		return fmt.Errorf("loading company owner: %w", err)
	}
	to := company.Email
	if to == "" {
		to = owner.Email
	}

	companyViewer := policy.ViewerFromUser(owner, n.now())
	view, err := policy.ProjectCandidate(companyViewer, event.Candidate)
	if err != nil {
		return err
	}

	return mailer.SendApplicationReceived(n.sender, to, mailer.ApplicationReceivedTemplateData{
		Title:         event.Opportunity.Title,
		CandidateName: view.DisplayName,
		AppliedAt:     event.Application.AppliedAt,
		Premium:       companyViewer.Premium(),
		Link:          n.baseURL + "/applications/" + event.Application.ID.String(),
	})
}
