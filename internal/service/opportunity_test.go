package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/mocks"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/policy"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/dangerclosesec/nextintern/internal/repository"
	"github.com/dangerclosesec/nextintern/internal/service"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type opportunityFixture struct {
	opportunities *mocks.MockOpportunityRepositoryIface
	companies     *mocks.MockCompanyRepositoryIface
	logs          *mocks.MockDecisionLogRepositoryIface
	store         *memQuota
	ledger        *quota.Ledger
	svc           *service.OpportunityService
}

func newOpportunityFixture(t *testing.T) *opportunityFixture {
	ctrl := gomock.NewController(t)
	c := newClock()
	f := &opportunityFixture{
		opportunities: mocks.NewMockOpportunityRepositoryIface(ctrl),
		companies:     mocks.NewMockCompanyRepositoryIface(ctrl),
		logs:          mocks.NewMockDecisionLogRepositoryIface(ctrl),
		store:         newMemQuota(),
	}
	f.ledger = quota.NewLedger(f.store, quota.DefaultLimits(), quota.WithClock(c.Now))
	f.svc = service.NewOpportunityService(f.opportunities, f.companies, f.ledger, service.NewDecisionLogService(f.logs))
	return f
}

func ownedOpportunity(status model.ApprovalStatus) (*model.Opportunity, policy.Viewer) {
	owner := policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry}
	industryID := uuid.New()
	return &model.Opportunity{
		ID:             uuid.New(),
		IndustryID:     industryID,
		Type:           model.OpportunityInternship,
		Title:          "Data Intern",
		IsActive:       true,
		ApprovalStatus: status,
		QuotaCounted:   true,
		CreatedAt:      time.Date(2026, 9, 28, 12, 0, 0, 0, time.UTC),
		Company:        model.Company{ID: industryID, UserID: owner.UserID},
	}, owner
}

func validUpdate() service.OpportunityUpdate {
	return service.OpportunityUpdate{
		Title:        "Data Engineering Intern",
		Description:  strings.Repeat("Build pipelines with the analytics team. ", 4),
		Requirements: "SQL, Python and a willingness to learn.",
		Location:     "Bengaluru",
		Duration:     "6 months",
		Skills:       []string{"SQL"},
	}
}

func admin() policy.Viewer {
	return policy.Viewer{UserID: uuid.New(), Role: model.RoleAdmin}
}

func TestUpdateLockedOnceApproved(t *testing.T) {
	f := newOpportunityFixture(t)
	o, owner := ownedOpportunity(model.ApprovalApproved)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)

	_, err := f.svc.Update(context.Background(), owner, o.ID, validUpdate())
	assert.ErrorIs(t, err, domain.ErrOpportunityLocked)
}

func TestUpdatePendingByOwner(t *testing.T) {
	f := newOpportunityFixture(t)
	o, owner := ownedOpportunity(model.ApprovalPending)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	f.opportunities.EXPECT().Update(gomock.Any(), o).Return(nil)

	updated, err := f.svc.Update(context.Background(), owner, o.ID, validUpdate())
	require.NoError(t, err)
	assert.Equal(t, "Data Engineering Intern", updated.Title)
	assert.Equal(t, model.OpportunityInternship, updated.Type)
}

func TestUpdateLosesToConcurrentApproval(t *testing.T) {
	f := newOpportunityFixture(t)
	o, owner := ownedOpportunity(model.ApprovalPending)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	f.opportunities.EXPECT().Update(gomock.Any(), o).Return(domain.ErrOpportunityLocked)

	_, err := f.svc.Update(context.Background(), owner, o.ID, validUpdate())
	assert.ErrorIs(t, err, domain.ErrOpportunityLocked)
}

func TestUpdateByStranger(t *testing.T) {
	f := newOpportunityFixture(t)
	o, _ := ownedOpportunity(model.ApprovalPending)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)

	_, err := f.svc.Update(context.Background(), policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry}, o.ID, validUpdate())
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSupportEditBypassesLock(t *testing.T) {
	f := newOpportunityFixture(t)
	o, _ := ownedOpportunity(model.ApprovalApproved)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	f.opportunities.EXPECT().SupportUpdate(gomock.Any(), o).Return(nil)
	f.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *model.PolicyDecisionLog) error {
		assert.Equal(t, model.ActionSupportEdit, log.ActionType)
		assert.Equal(t, o.ID.String(), log.TargetID)
		return nil
	})

	_, err := f.svc.SupportEdit(context.Background(), admin(), o.ID, validUpdate())
	require.NoError(t, err)
}

func TestReviewRejectReleasesCreationMonth(t *testing.T) {
	f := newOpportunityFixture(t)
	o, _ := ownedOpportunity(model.ApprovalPending)
	september := postingKey(o.IndustryID, model.OpportunityInternship, "2026-09")
	require.NoError(t, f.store.Set(context.Background(), september, 3))

	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	f.opportunities.EXPECT().SetApprovalStatus(gomock.Any(), o.ID, model.ApprovalPending, model.ApprovalRejected).Return(nil)
	var actions []string
	f.logs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, log *model.PolicyDecisionLog) error {
		actions = append(actions, log.ActionType)
		return nil
	}).Times(2)

	reviewed, err := f.svc.Review(context.Background(), admin(), o.ID, service.ReviewInput{Status: model.ApprovalRejected, Note: "duplicate"})
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalRejected, reviewed.ApprovalStatus)
	assert.Equal(t, 2, f.store.get(september))
	assert.Equal(t, []string{model.ActionQuotaRelease, model.ActionOpportunityReview}, actions)
}

func TestReviewRejectUncountedKeepsQuota(t *testing.T) {
	f := newOpportunityFixture(t)
	o, _ := ownedOpportunity(model.ApprovalPending)
	o.QuotaCounted = false
	september := postingKey(o.IndustryID, model.OpportunityInternship, "2026-09")
	require.NoError(t, f.store.Set(context.Background(), september, 1))

	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	f.opportunities.EXPECT().SetApprovalStatus(gomock.Any(), o.ID, model.ApprovalPending, model.ApprovalRejected).Return(nil)
	f.logs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.svc.Review(context.Background(), admin(), o.ID, service.ReviewInput{Status: model.ApprovalRejected})
	require.NoError(t, err)
	assert.Equal(t, 1, f.store.get(september))
}

func TestReviewRequiresPendingAndAdmin(t *testing.T) {
	f := newOpportunityFixture(t)
	o, owner := ownedOpportunity(model.ApprovalApproved)

	_, err := f.svc.Review(context.Background(), owner, o.ID, service.ReviewInput{Status: model.ApprovalApproved})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = f.svc.Review(context.Background(), admin(), o.ID, service.ReviewInput{Status: model.ApprovalPending})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil)
	_, err = f.svc.Review(context.Background(), admin(), o.ID, service.ReviewInput{Status: model.ApprovalRejected})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetHidesPremiumOnlyFromFreeCandidates(t *testing.T) {
	f := newOpportunityFixture(t)
	o, _ := ownedOpportunity(model.ApprovalApproved)
	o.IsPremiumOnly = true
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil).Times(2)
	f.opportunities.EXPECT().IncrementViewCount(gomock.Any(), o.ID).Return(nil)

	free := policy.Viewer{UserID: uuid.New(), Role: model.RoleCandidate}
	_, err := f.svc.Get(context.Background(), free, o.ID)
	assert.ErrorIs(t, err, domain.ErrPremiumRequired)

	premium := policy.Viewer{UserID: uuid.New(), Role: model.RoleCandidate, Tier: policy.TierPremium}
	got, err := f.svc.Get(context.Background(), premium, o.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)
}

func TestGetPendingVisibleToOwnerOnly(t *testing.T) {
	f := newOpportunityFixture(t)
	o, owner := ownedOpportunity(model.ApprovalPending)
	f.opportunities.EXPECT().FindByID(gomock.Any(), o.ID).Return(o, nil).Times(2)

	_, err := f.svc.Get(context.Background(), policy.Viewer{UserID: uuid.New(), Role: model.RoleCandidate}, o.ID)
	assert.ErrorIs(t, err, domain.ErrOpportunityNotFound)

	got, err := f.svc.Get(context.Background(), owner, o.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ViewCount)
}

func TestBrowseFiltersForViewer(t *testing.T) {
	f := newOpportunityFixture(t)
	f.opportunities.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter repository.OpportunityFilter) ([]*model.Opportunity, int64, error) {
		assert.Equal(t, model.ApprovalApproved, filter.ApprovalStatus)
		assert.True(t, filter.ActiveOnly)
		assert.False(t, filter.IncludePremiumOnly)
		return nil, 0, nil
	})

	_, _, err := f.svc.Browse(context.Background(), policy.Viewer{Role: model.RoleCandidate}, service.BrowseInput{})
	require.NoError(t, err)

	_, _, err = f.svc.Browse(context.Background(), policy.Viewer{Role: model.RoleCandidate}, service.BrowseInput{Type: "GIG"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
