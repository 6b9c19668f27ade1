package quota_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/dangerclosesec/nextintern/internal/quota"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore serializes every operation behind one mutex, standing in for the
// database's conditional update.
type memStore struct {
	mu     sync.Mutex
	counts map[quota.Key]int
}

func newMemStore() *memStore {
	return &memStore{counts: make(map[quota.Key]int)}
}

func (m *memStore) Count(_ context.Context, key quota.Key) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[key], nil
}

func (m *memStore) Increment(_ context.Context, key quota.Key, limit int) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[key] >= limit {
		return m.counts[key], false, nil
	}
	m.counts[key]++
	return m.counts[key], true, nil
}

func (m *memStore) Decrement(_ context.Context, key quota.Key) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.counts[key] > 0 {
		m.counts[key]--
	}
	return nil
}

func (m *memStore) Set(_ context.Context, key quota.Key, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key] = count
	return nil
}

type failingStore struct{ memStore }

func (f *failingStore) Count(context.Context, quota.Key) (int, error) {
	return 0, errors.New("connection refused")
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var october = time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

func TestCanPostPremiumIsUnlimited(t *testing.T) {
	store := newMemStore()
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	for _, category := range model.OpportunityTypes {
		d, err := ledger.CanPost(context.Background(), industry, category, true)
		require.NoError(t, err)
		assert.True(t, d.Allowed)
		assert.True(t, d.Unlimited)
		assert.False(t, d.HardBlocked())
	}
	assert.Empty(t, store.counts, "premium checks never touch the counter")
}

func TestRecordPostMonotonic(t *testing.T) {
	ctx := context.Background()
	ledger := quota.NewLedger(newMemStore(), quota.DefaultLimits(), quota.WithClock(fixedClock(october)))

	for _, category := range []model.OpportunityType{model.OpportunityInternship, model.OpportunityProject} {
		industry := uuid.New()
		limit := quota.DefaultLimits().Posting[category]

		for n := 0; n < limit; n++ {
			d, err := ledger.CanPost(ctx, industry, category, false)
			require.NoError(t, err)
			assert.True(t, d.Allowed)
			assert.Equal(t, limit-n, d.Remaining)

			_, err = ledger.RecordPost(ctx, industry, category)
			require.NoError(t, err)

			d, err = ledger.CanPost(ctx, industry, category, false)
			require.NoError(t, err)
			assert.Equal(t, limit-(n+1), d.Remaining)
		}

		d, err := ledger.CanPost(ctx, industry, category, false)
		require.NoError(t, err)
		assert.False(t, d.Allowed)
		assert.Equal(t, 0, d.Remaining)
	}
}

func TestFourthInternshipRefused(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := ledger.RecordPost(ctx, industry, model.OpportunityInternship)
		require.NoError(t, err)
	}

	d, err := ledger.CanPost(ctx, industry, model.OpportunityInternship, false)
	require.NoError(t, err)
	assert.Equal(t, quota.Decision{Allowed: false, Remaining: 0, Limit: 3, Category: "INTERNSHIP", MonthKey: "2026-10"}, d)

	_, err = ledger.RecordPost(ctx, industry, model.OpportunityInternship)
	var qe *domain.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, "INTERNSHIP", qe.Category)
	assert.Equal(t, 3, qe.Limit)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.NotErrorIs(t, err, domain.ErrInvalidInput)
}

func TestFreelancingHardBlock(t *testing.T) {
	ctx := context.Background()
	ledger := quota.NewLedger(newMemStore(), quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	d, err := ledger.CanPost(ctx, industry, model.OpportunityFreelancing, false)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.True(t, d.HardBlocked())

	internship, err := ledger.CanPost(ctx, industry, model.OpportunityInternship, false)
	require.NoError(t, err)
	assert.False(t, internship.HardBlocked())

	_, err = ledger.RecordPost(ctx, industry, model.OpportunityFreelancing)
	var qe *domain.QuotaExceededError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, 0, qe.Limit)
}

func TestFreelancingBlockedWhateverTheLimits(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	limits := quota.DefaultLimits()
	limits.Posting[model.OpportunityFreelancing] = 5
	ledger := quota.NewLedger(store, limits, quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	d, err := ledger.CanPost(ctx, industry, model.OpportunityFreelancing, false)
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 0, d.Remaining)
	assert.True(t, d.HardBlocked())

	_, err = ledger.RecordPost(ctx, industry, model.OpportunityFreelancing)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Empty(t, store.counts)

	premium, err := ledger.CanPost(ctx, industry, model.OpportunityFreelancing, true)
	require.NoError(t, err)
	assert.True(t, premium.Allowed)
}

func TestCountersResetEachMonth(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	industry := uuid.New()

	now := october
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(func() time.Time { return now }))
	for i := 0; i < 2; i++ {
		_, err := ledger.RecordPost(ctx, industry, model.OpportunityProject)
		require.NoError(t, err)
	}
	d, err := ledger.CanPost(ctx, industry, model.OpportunityProject, false)
	require.NoError(t, err)
	require.False(t, d.Allowed)

	now = time.Date(2026, 11, 1, 0, 0, 1, 0, time.UTC)
	d, err = ledger.CanPost(ctx, industry, model.OpportunityProject, false)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 2, d.Remaining)
	assert.Equal(t, "2026-11", d.MonthKey)
}

func TestMonthKeyUsesConfiguredLocation(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*3600+1800)
	instant := time.Date(2026, 10, 31, 20, 0, 0, 0, time.UTC)

	utc := quota.NewLedger(newMemStore(), quota.DefaultLimits())
	ist := quota.NewLedger(newMemStore(), quota.DefaultLimits(), quota.WithLocation(kolkata))

	assert.Equal(t, "2026-10", utc.MonthKey(instant))
	assert.Equal(t, "2026-11", ist.MonthKey(instant))

	start, end := ist.MonthBounds(instant)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, kolkata), start)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, kolkata), end)
}

func TestConcurrentRecordPostNeverOvershoots(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	_, err := ledger.RecordPost(ctx, industry, model.OpportunityInternship)
	require.NoError(t, err)
	_, err = ledger.RecordPost(ctx, industry, model.OpportunityInternship)
	require.NoError(t, err)

	const workers = 32
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		refused  int
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := ledger.RecordPost(ctx, industry, model.OpportunityInternship)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domain.ErrQuotaExceeded):
				refused++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, 1, accepted)
	assert.Equal(t, workers-1, refused)

	count, err := store.Count(ctx, quota.Key{SubjectID: industry, Role: model.RoleIndustry, Category: "INTERNSHIP", MonthKey: "2026-10"})
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestReleasePostUsesCreationMonth(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	now := time.Date(2026, 9, 30, 23, 0, 0, 0, time.UTC)
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(func() time.Time { return now }))
	industry := uuid.New()

	_, err := ledger.RecordPost(ctx, industry, model.OpportunityInternship)
	require.NoError(t, err)
	createdAt := now

	now = october
	_, err = ledger.RecordPost(ctx, industry, model.OpportunityInternship)
	require.NoError(t, err)

	require.NoError(t, ledger.ReleasePost(ctx, industry, model.OpportunityInternship, createdAt))

	september := quota.Key{SubjectID: industry, Role: model.RoleIndustry, Category: "INTERNSHIP", MonthKey: "2026-09"}
	current := quota.Key{SubjectID: industry, Role: model.RoleIndustry, Category: "INTERNSHIP", MonthKey: "2026-10"}
	assert.Equal(t, 0, store.counts[september])
	assert.Equal(t, 1, store.counts[current])
}

func TestUnknownCategory(t *testing.T) {
	ledger := quota.NewLedger(newMemStore(), quota.DefaultLimits())
	_, err := ledger.CanPost(context.Background(), uuid.New(), "CONSULTING", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = ledger.RecordPost(context.Background(), uuid.New(), "CONSULTING")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApplicationQuota(t *testing.T) {
	ctx := context.Background()
	candidate := uuid.New()

	unlimited := quota.NewLedger(newMemStore(), quota.DefaultLimits())
	d, err := unlimited.CanApply(ctx, candidate, model.OpportunityInternship, false)
	require.NoError(t, err)
	assert.True(t, d.Unlimited)

	limits := quota.DefaultLimits()
	limits.ApplicationsPerMonth = 1
	limited := quota.NewLedger(newMemStore(), limits, quota.WithClock(fixedClock(october)))

	_, err = limited.RecordApplication(ctx, candidate, model.OpportunityInternship)
	require.NoError(t, err)
	_, err = limited.RecordApplication(ctx, candidate, model.OpportunityInternship)
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)

	other, err := limited.CanApply(ctx, candidate, model.OpportunityProject, false)
	require.NoError(t, err)
	assert.True(t, other.Allowed)

	premium, err := limited.CanApply(ctx, candidate, model.OpportunityInternship, true)
	require.NoError(t, err)
	assert.True(t, premium.Allowed)

	require.NoError(t, limited.ReleaseApplication(ctx, candidate, model.OpportunityInternship))
	d, err = limited.CanApply(ctx, candidate, model.OpportunityInternship, false)
	require.NoError(t, err)
	assert.True(t, d.Allowed)
}

func TestPostingStatus(t *testing.T) {
	ctx := context.Background()
	ledger := quota.NewLedger(newMemStore(), quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()
	_, err := ledger.RecordPost(ctx, industry, model.OpportunityProject)
	require.NoError(t, err)

	status, err := ledger.PostingStatus(ctx, industry, false)
	require.NoError(t, err)
	require.Len(t, status, 3)
	assert.Equal(t, 3, status[0].Remaining)
	assert.Equal(t, 1, status[1].Remaining)
	assert.True(t, status[2].HardBlocked())
}

func TestReconcileOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	ledger := quota.NewLedger(store, quota.DefaultLimits(), quota.WithClock(fixedClock(october)))
	industry := uuid.New()

	require.NoError(t, ledger.Reconcile(ctx, industry, model.OpportunityInternship, "2026-10", 2))
	d, err := ledger.CanPost(ctx, industry, model.OpportunityInternship, false)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Remaining)
}

func TestStoreFailureIsWrapped(t *testing.T) {
	ledger := quota.NewLedger(&failingStore{}, quota.DefaultLimits())
	_, err := ledger.CanPost(context.Background(), uuid.New(), model.OpportunityInternship, false)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrQuotaExceeded)
	assert.Contains(t, err.Error(), "connection refused")
}
