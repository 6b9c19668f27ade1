package workflow_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/workflow"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *clock {
	return &clock{t: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)}
}

func newMachine(c *clock) *workflow.Machine {
	return workflow.NewMachine(workflow.DefaultConfig(), c.Now)
}

func validApplicationPayload(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(workflow.ApplicationDraft{
		OpportunityID: uuid.New(),
		CoverLetter:   strings.Repeat("I have built production Go services. ", 4),
		WhyInterested: strings.Repeat("Your team ships tools I use. ", 2),
		PortfolioURL:  "https://portfolio.example/me",
	})
	require.NoError(t, err)
	return b
}

func validOpportunityPayload(t *testing.T) []byte {
	t.Helper()
	b, err := json.Marshal(workflow.OpportunityDraft{
		Type:         model.OpportunityInternship,
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

func pendingSubmission(t *testing.T, m *workflow.Machine) *model.Submission {
	t.Helper()
	s := m.New(uuid.New(), model.SubmissionApplication, validApplicationPayload(t))
	require.NoError(t, m.EnterTerms(s))
	require.Equal(t, model.SubmissionTermsPending, s.State)
	return s
}

func TestEnterTermsRequiresValidDraft(t *testing.T) {
	m := newMachine(newClock())

	s := m.New(uuid.New(), model.SubmissionApplication, []byte(`{"cover_letter":"too short"}`))
	err := m.EnterTerms(s)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, model.SubmissionDraft, s.State)
	assert.Nil(t, s.TermsEnteredAt)
}

func TestDraftValidationReportsField(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(d *workflow.ApplicationDraft)
		field      string
		constraint string
	}{
		{"short cover letter", func(d *workflow.ApplicationDraft) { d.CoverLetter = "hello" }, "cover_letter", "min"},
		{"bad portfolio url", func(d *workflow.ApplicationDraft) { d.PortfolioURL = "not a url" }, "portfolio_url", "url"},
		{"missing opportunity", func(d *workflow.ApplicationDraft) { d.OpportunityID = uuid.Nil }, "opportunity_id", "required"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var d workflow.ApplicationDraft
			require.NoError(t, json.Unmarshal(validApplicationPayload(t), &d))
			tc.mutate(&d)
			payload, err := json.Marshal(d)
			require.NoError(t, err)

			err = workflow.ValidateDraft(model.SubmissionApplication, payload)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.constraint, verr.Constraint)
		})
	}
}

func TestOpportunityDraftValidation(t *testing.T) {
	require.NoError(t, workflow.ValidateDraft(model.SubmissionOpportunity, validOpportunityPayload(t)))

	var d workflow.OpportunityDraft
	require.NoError(t, json.Unmarshal(validOpportunityPayload(t), &d))
	d.Type = "CONSULTING"
	payload, _ := json.Marshal(d)

	err := workflow.ValidateDraft(model.SubmissionOpportunity, payload)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "type", verr.Field)

	assert.ErrorIs(t, workflow.ValidateDraft(model.SubmissionOpportunity, []byte("{")), domain.ErrInvalidInput)
	assert.ErrorIs(t, workflow.ValidateDraft(model.SubmissionOpportunity, nil), domain.ErrInvalidInput)
}

func TestAcknowledgeRequiresAllThree(t *testing.T) {
	atEnd := workflow.ScrollPosition{ScrollTop: 1550, ViewportHeight: 400, ScrollHeight: 2000}

	tests := []struct {
		name    string
		scroll  bool
		dwell   bool
		ack     bool
		missing []domain.Requirement
	}{
		{"nothing", false, false, false, []domain.Requirement{domain.RequirementScroll, domain.RequirementDwellTime, domain.RequirementAcknowledgment}},
		{"scroll only", true, false, false, []domain.Requirement{domain.RequirementDwellTime, domain.RequirementAcknowledgment}},
		{"dwell only", false, true, false, []domain.Requirement{domain.RequirementScroll, domain.RequirementAcknowledgment}},
		{"ack only", false, false, true, []domain.Requirement{domain.RequirementScroll, domain.RequirementDwellTime}},
		{"scroll and dwell", true, true, false, []domain.Requirement{domain.RequirementAcknowledgment}},
		{"scroll and ack", true, false, true, []domain.Requirement{domain.RequirementDwellTime}},
		{"dwell and ack", false, true, true, []domain.Requirement{domain.RequirementScroll}},
		{"all three", true, true, true, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newClock()
			m := newMachine(c)
			s := pendingSubmission(t, m)

			if tc.ack {
				require.NoError(t, m.SetAcknowledged(s, true))
			}
			if tc.scroll {
				require.NoError(t, m.RecordScroll(s, atEnd))
			}
			if tc.dwell {
				c.Advance(30 * time.Second)
			} else {
				c.Advance(29 * time.Second)
			}

			err := m.Acknowledge(s)
			if tc.missing == nil {
				require.NoError(t, err)
				assert.Equal(t, model.SubmissionTermsAcknowledged, s.State)
				return
			}

			var wse *domain.WorkflowStateError
			require.ErrorAs(t, err, &wse)
			assert.Equal(t, tc.missing, wse.Missing)
			assert.Equal(t, model.SubmissionTermsPending, s.State)

			err = m.PrepareSubmit(s)
			require.ErrorAs(t, err, &wse)
			assert.Equal(t, tc.missing, wse.Missing)
			assert.Equal(t, model.SubmissionTermsPending, s.State)
		})
	}
}

func TestRequirementsSatisfiedOutOfOrder(t *testing.T) {
	c := newClock()
	m := newMachine(c)
	s := pendingSubmission(t, m)

	c.Advance(45 * time.Second)
	require.NoError(t, m.SetAcknowledged(s, true))
	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 600, ViewportHeight: 400, ScrollHeight: 1000}))

	require.NoError(t, m.PrepareSubmit(s))
	assert.Equal(t, model.SubmissionTermsAcknowledged, s.State)
}

func TestScrollThreshold(t *testing.T) {
	tests := []struct {
		pos  workflow.ScrollPosition
		want bool
	}{
		{workflow.ScrollPosition{ScrollTop: 1550, ViewportHeight: 400, ScrollHeight: 2000}, true},
		{workflow.ScrollPosition{ScrollTop: 1549, ViewportHeight: 400, ScrollHeight: 2000}, false},
		{workflow.ScrollPosition{ScrollTop: 0, ViewportHeight: 400, ScrollHeight: 300}, true},
		{workflow.ScrollPosition{ScrollTop: 0, ViewportHeight: 400, ScrollHeight: 2000}, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.pos.AtEnd(50), "%+v", tc.pos)
	}
}

func TestScrollIsSticky(t *testing.T) {
	m := newMachine(newClock())
	s := pendingSubmission(t, m)

	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 960, ViewportHeight: 40, ScrollHeight: 1000}))
	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 0, ViewportHeight: 40, ScrollHeight: 1000}))
	assert.True(t, s.ScrolledToEnd)
}

func TestDwellMeasuredFromEntry(t *testing.T) {
	c := newClock()
	m := newMachine(c)
	s := m.New(uuid.New(), model.SubmissionApplication, validApplicationPayload(t))

	c.Advance(10 * time.Minute)
	require.NoError(t, m.EnterTerms(s))
	require.NoError(t, m.SetAcknowledged(s, true))
	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 1000, ViewportHeight: 10, ScrollHeight: 1000}))

	assert.Equal(t, []domain.Requirement{domain.RequirementDwellTime}, m.Missing(s))
	c.Advance(30 * time.Second)
	assert.Empty(t, m.Missing(s))
}

func TestBackPreservesPayloadAndResetsProgress(t *testing.T) {
	c := newClock()
	m := newMachine(c)
	s := pendingSubmission(t, m)
	payload := append([]byte(nil), s.Payload...)

	require.NoError(t, m.SetAcknowledged(s, true))
	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 1000, ViewportHeight: 10, ScrollHeight: 1000}))
	c.Advance(time.Minute)

	require.NoError(t, m.Back(s))
	assert.Equal(t, model.SubmissionDraft, s.State)
	assert.JSONEq(t, string(payload), string(s.Payload))
	assert.False(t, s.Acknowledged)
	assert.False(t, s.ScrolledToEnd)
	assert.Nil(t, s.TermsEnteredAt)

	require.NoError(t, m.EnterTerms(s))
	assert.Len(t, m.Missing(s), 3, "dwell restarts after going back")
}

func TestIllegalTransitions(t *testing.T) {
	c := newClock()
	m := newMachine(c)

	draft := m.New(uuid.New(), model.SubmissionApplication, validApplicationPayload(t))
	assert.ErrorIs(t, m.Back(draft), domain.ErrWorkflowState)
	assert.ErrorIs(t, m.Acknowledge(draft), domain.ErrWorkflowState)
	assert.ErrorIs(t, m.PrepareSubmit(draft), domain.ErrWorkflowState)
	assert.ErrorIs(t, m.RecordScroll(draft, workflow.ScrollPosition{}), domain.ErrWorkflowState)

	s := pendingSubmission(t, m)
	assert.ErrorIs(t, m.UpdateDraft(s, []byte(`{}`)), domain.ErrWorkflowState)
	assert.ErrorIs(t, m.EnterTerms(s), domain.ErrWorkflowState)
	assert.ErrorIs(t, m.Complete(s, uuid.New()), domain.ErrWorkflowState)

	require.NoError(t, m.SetAcknowledged(s, true))
	require.NoError(t, m.RecordScroll(s, workflow.ScrollPosition{ScrollTop: 1000, ViewportHeight: 10, ScrollHeight: 1000}))
	c.Advance(time.Minute)
	require.NoError(t, m.Acknowledge(s))
	assert.ErrorIs(t, m.Back(s), domain.ErrWorkflowState, "acknowledged submissions cannot go back")

	result := uuid.New()
	require.NoError(t, m.Complete(s, result))
	assert.Equal(t, model.SubmissionSubmitted, s.State)
	assert.Equal(t, result, *s.ResultID)
	require.NotNil(t, s.SubmittedAt)

	for _, err := range []error{m.Back(s), m.PrepareSubmit(s), m.Acknowledge(s), m.Complete(s, uuid.New())} {
		assert.ErrorIs(t, err, domain.ErrWorkflowState)
	}
}

func TestUpdateDraftRoundTripsPayload(t *testing.T) {
	m := newMachine(newClock())
	s := m.New(uuid.New(), model.SubmissionOpportunity, []byte(`{"title":"x"}`))
	payload := validOpportunityPayload(t)
	require.NoError(t, m.UpdateDraft(s, payload))
	assert.Equal(t, string(payload), string(s.Payload))
}
