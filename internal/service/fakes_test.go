package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func newClock() *clock {
	return &clock{t: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)}
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// memQuota is a quota.Store serialized by one mutex.
type memQuota struct {
	mu     sync.Mutex
	counts map[quota.Key]int
}

func newMemQuota() *memQuota {
	return &memQuota{counts: make(map[quota.Key]int)}
}

func (m *memQuota) Count(_ context.Context, key quota.Key) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key], nil
}

func (m *memQuota) Increment(_ context.Context, key quota.Key, limit int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[key] >= limit {
		return m.counts[key], false, nil
	}
	m.counts[key]++
	return m.counts[key], true, nil
}

func (m *memQuota) Decrement(_ context.Context, key quota.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[key] > 0 {
		m.counts[key]--
	}
	return nil
}

func (m *memQuota) Set(_ context.Context, key quota.Key, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key] = count
	return nil
}

func (m *memQuota) get(key quota.Key) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key]
}

func postingKey(industryID uuid.UUID, category model.OpportunityType, month string) quota.Key {
	return quota.Key{SubjectID: industryID, Role: model.RoleIndustry, Category: string(category), MonthKey: month}
}

// memSubmissions mirrors the conditional updates of the gorm repository.
type memSubmissions struct {
	mu            sync.Mutex
	rows          map[uuid.UUID]model.Submission
	opportunities []*model.Opportunity
	applications  []*model.Application
	// completeDelay widens the window between claim and completion.
	completeDelay time.Duration
	beforeApply   func()
}

func newMemSubmissions() *memSubmissions {
	return &memSubmissions{rows: make(map[uuid.UUID]model.Submission)}
}

func (r *memSubmissions) Create(_ context.Context, s *model.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[s.ID] = *s
	return nil
}

func (r *memSubmissions) FindByID(_ context.Context, id uuid.UUID) (*model.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	return &row, nil
}

func (r *memSubmissions) Apply(_ context.Context, s *model.Submission, c repository.SubmissionChange) error {
	if len(c.Columns) == 0 {
		return nil
	}
	if hook := r.takeBeforeApply(); hook != nil {
		hook()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[s.ID]
	if !ok {
		return domain.ErrSubmissionNotFound
	}
	matches := row.State == c.From &&
		(c.EnteredAt == nil || (row.TermsEnteredAt != nil && row.TermsEnteredAt.Equal(*c.EnteredAt))) &&
		(c.UnmodifiedSince == nil || row.UpdatedAt.Equal(*c.UnmodifiedSince)) &&
		(!c.RequireEngaged || (row.ScrolledToEnd && row.Acknowledged))
	if !matches {
		return &domain.WorkflowStateError{State: string(row.State), Action: c.Action}
	}

	for _, column := range c.Columns {
		switch column {
		case "state":
			row.State = s.State
		case "payload":
			row.Payload = s.Payload
		case "terms_entered_at":
			row.TermsEnteredAt = s.TermsEnteredAt
		case "scrolled_to_end":
			row.ScrolledToEnd = s.ScrolledToEnd
		case "acknowledged":
			row.Acknowledged = s.Acknowledged
		default:
			return fmt.Errorf("unexpected column %q", column)
		}
	}
	row.UpdatedAt = s.UpdatedAt
	r.rows[s.ID] = row
	*s = row
	return nil
}

// interleave runs fn once, between the next transition's read and its write.
func (r *memSubmissions) interleave(fn func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.beforeApply = fn
}

func (r *memSubmissions) takeBeforeApply() func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn := r.beforeApply
	r.beforeApply = nil
	return fn
}

func (r *memSubmissions) Claim(_ context.Context, id uuid.UUID, now time.Time, staleAfter time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok || row.State == model.SubmissionSubmitted {
		return false, nil
	}
	if row.SubmittingAt != nil && !row.SubmittingAt.Before(now.Add(-staleAfter)) {
		return false, nil
	}
	row.SubmittingAt = &now
	r.rows[id] = row
	return true, nil
}

func (r *memSubmissions) Release(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if ok && row.State != model.SubmissionSubmitted {
		row.SubmittingAt = nil
		r.rows[id] = row
	}
	return nil
}

func (r *memSubmissions) markSubmitted(s *model.Submission) error {
	row, ok := r.rows[s.ID]
	if !ok || row.State == model.SubmissionSubmitted {
		return domain.ErrDuplicateSubmission
	}
	row.State = s.State
	row.ResultID = s.ResultID
	row.SubmittedAt = s.SubmittedAt
	row.SubmittingAt = nil
	row.UpdatedAt = s.UpdatedAt
	r.rows[s.ID] = row
	return nil
}

func (r *memSubmissions) CompleteWithOpportunity(_ context.Context, s *model.Submission, o *model.Opportunity) error {
	time.Sleep(r.completeDelay)
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.markSubmitted(s); err != nil {
		return err
	}
	r.opportunities = append(r.opportunities, o)
	return nil
}

func (r *memSubmissions) CompleteWithApplication(_ context.Context, s *model.Submission, a *model.Application) error {
	time.Sleep(r.completeDelay)
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.applications {
		if existing.CandidateID == a.CandidateID && existing.OpportunityID == a.OpportunityID {
			return domain.ErrAlreadyApplied
		}
	}
	if err := r.markSubmitted(s); err != nil {
		return err
	}
	r.applications = append(r.applications, a)
	return nil
}

func (r *memSubmissions) created() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.opportunities), len(r.applications)
}

func opportunityPayload(t *testing.T, category model.OpportunityType) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(workflow.OpportunityDraft{
		Type:         category,
		Title:        "Backend Engineering Intern",
		Description:  strings.Repeat("Work with the platform team on APIs. ", 4),
		Requirements: "Go, SQL and curiosity about distributed systems.",
		Location:     "Remote",
		Duration:     "3 months",
		Skills:       []string{"Go", "PostgreSQL"},
	})
	require.NoError(t, err)
	return b
}

func applicationPayload(t *testing.T, opportunityID uuid.UUID) json.RawMessage {
	t.Helper()
	b, err := json.Marshal(workflow.ApplicationDraft{
		OpportunityID: opportunityID,
		CoverLetter:   strings.Repeat("I have built production Go services. ", 4),
		WhyInterested: strings.Repeat("Your team ships tools I use. ", 2),
	})
	require.NoError(t, err)
	return b
}
