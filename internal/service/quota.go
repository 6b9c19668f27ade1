package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/google/uuid"
)

type QuotaService struct {
	ledger        *quota.Ledger
	companies     repository.CompanyRepositoryIface
	opportunities repository.OpportunityRepositoryIface
}

func NewQuotaService(ledger *quota.Ledger, companies repository.CompanyRepositoryIface, opportunities repository.OpportunityRepositoryIface) *QuotaService {
	return &QuotaService{
		ledger:        ledger,
		companies:     companies,
		opportunities: opportunities,
	}
}

// QuotaStatus is the posting allowance of one company for the current month.
type QuotaStatus struct {
	IndustryID uuid.UUID        `json:"industry_id"`
	MonthKey   string           `json:"month_key"`
	Premium    bool             `json:"premium"`
	Categories []quota.Decision `json:"categories"`
}

// Status reports the caller's remaining postings per category.
func (s *QuotaService) Status(ctx context.Context, v policy.Viewer) (*QuotaStatus, error) {
	if v.Role != model.RoleIndustry {
		return nil, domain.ErrForbidden
	}
	company, err := s.companies.FindByUserID(ctx, v.UserID)
	if err != nil {
		return nil, err
	}
	return s.StatusFor(ctx, company.ID, v.Premium())
}

// StatusFor reports any company's allowance. Admin tooling only.
func (s *QuotaService) StatusFor(ctx context.Context, industryID uuid.UUID, premium bool) (*QuotaStatus, error) {
	decisions, err := s.ledger.PostingStatus(ctx, industryID, premium)
	if err != nil {
		return nil, err
	}
	return &QuotaStatus{
		IndustryID: industryID,
		MonthKey:   s.ledger.CurrentMonth(),
		Premium:    premium,
		Categories: decisions,
	}, nil
}

// ReconcileResult lists the counters written by Reconcile.
type ReconcileResult struct {
	MonthKey string                   `json:"month_key"`
	Counters []repository.MonthlyUsage `json:"counters"`
}

// Reconcile recomputes posting counters for the month containing at from the
// opportunities themselves and overwrites what the store holds. With a
// non-nil industryID, categories without postings are reset to zero; without
// one, only counters with observed usage are written.
func (s *QuotaService) Reconcile(ctx context.Context, at time.Time, industryID uuid.UUID) (*ReconcileResult, error) {
	start, end := s.ledger.MonthBounds(at)
	month := s.ledger.MonthKey(start)

	usage, err := s.opportunities.UsageBetween(ctx, start, end, industryID)
	if err != nil {
		return nil, err
	}

	if industryID != uuid.Nil {
		seen := make(map[model.OpportunityType]bool, len(usage))
		for _, u := range usage {
			seen[u.Type] = true
		}
		for _, category := range model.OpportunityTypes {
			if !seen[category] {
				usage = append(usage, repository.MonthlyUsage{IndustryID: industryID, Type: category})
			}
		}
	}

	for _, u := range usage {
		if err := s.ledger.Reconcile(ctx, u.IndustryID, u.Type, month, u.Count); err != nil {
			return nil, fmt.Errorf("reconciling %s/%s: %w", u.IndustryID, u.Type, err)
		}
	}
	slog.InfoContext(ctx, "Quota counters reconciled", "month", month, "counters", len(usage))
	return &ReconcileResult{MonthKey: month, Counters: usage}, nil
}
