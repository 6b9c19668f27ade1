package service_test

import (
	"context"
	"testing"

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

func TestQuotaStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := mocks.NewMockCompanyRepositoryIface(ctrl)
	store := newMemQuota()
	c := newClock()
	svc := service.NewQuotaService(quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(c.Now)), companies, mocks.NewMockOpportunityRepositoryIface(ctrl))

	v := policy.Viewer{UserID: uuid.New(), Role: model.RoleIndustry}
	company := &model.Company{ID: uuid.New(), UserID: v.UserID}
	require.NoError(t, store.Set(context.Background(), postingKey(company.ID, model.OpportunityInternship, "2026-10"), 1))
	companies.EXPECT().FindByUserID(gomock.Any(), v.UserID).Return(company, nil)

	st, err := svc.Status(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, "2026-10", st.MonthKey)
	require.Len(t, st.Categories, 3)
	assert.Equal(t, 2, st.Categories[0].Remaining)
	assert.Equal(t, 2, st.Categories[1].Remaining)
	assert.False(t, st.Categories[2].Allowed)
	assert.True(t, st.Categories[2].HardBlocked())

	_, err = svc.Status(context.Background(), policy.Viewer{UserID: uuid.New(), Role: model.RoleCandidate})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestQuotaReconcileOverwritesDrift(t *testing.T) {
	ctrl := gomock.NewController(t)
	opportunities := mocks.NewMockOpportunityRepositoryIface(ctrl)
	store := newMemQuota()
	c := newClock()
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(c.Now))
	svc := service.NewQuotaService(ledger, mocks.NewMockCompanyRepositoryIface(ctrl), opportunities)

	industryID := uuid.New()
	internship := postingKey(industryID, model.OpportunityInternship, "2026-10")
	project := postingKey(industryID, model.OpportunityProject, "2026-10")
	require.NoError(t, store.Set(context.Background(), internship, 3))
	require.NoError(t, store.Set(context.Background(), project, 2))

	start, end := ledger.MonthBounds(c.Now())
	opportunities.EXPECT().UsageBetween(gomock.Any(), start, end, industryID).Return([]repository.MonthlyUsage{
		{IndustryID: industryID, Type: model.OpportunityInternship, Count: 1},
	}, nil)

	res, err := svc.Reconcile(context.Background(), c.Now(), industryID)
	require.NoError(t, err)
	assert.Equal(t, "2026-10", res.MonthKey)
	assert.Len(t, res.Counters, 3)
	assert.Equal(t, 1, store.get(internship))
	assert.Equal(t, 0, store.get(project))
}
