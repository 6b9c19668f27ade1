// Package quota enforces the free-tier monthly limits on postings and
// applications. Counters live in an external Store; the Ledger only holds
// limits and the calendar.
package quota

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
)

const monthKeyLayout = "2006-01"

// Key identifies one monthly counter.
type Key struct {
	SubjectID uuid.UUID
	Role      model.Role
	Category  string
	MonthKey  string
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", k.Role, k.SubjectID, k.Category, k.MonthKey)
}

// Store is the atomic counter collaborator. Implementations must make
// Increment a single check-and-increment: two callers racing at limit-1 may
// not both succeed.
type Store interface {
	Count(ctx context.Context, key Key) (int, error)
	// Increment adds one when the counter is below limit and returns the new
	// count. ok is false, and nothing changes, when the limit is already reached.
	Increment(ctx context.Context, key Key, limit int) (count int, ok bool, err error)
	// Decrement gives back one slot, never going below zero.
	Decrement(ctx context.Context, key Key) error
	// Set overwrites a counter. Only reconciliation uses it.
	Set(ctx context.Context, key Key, count int) error
}

// Limits holds the free-tier ceilings. An ApplicationsPerMonth of zero means
// candidates are not limited. FREELANCING is closed to the free tier whatever
// Posting says.
type Limits struct {
	Posting              map[model.OpportunityType]int
	ApplicationsPerMonth int
}

func DefaultLimits() Limits {
	return Limits{
		Posting: map[model.OpportunityType]int{
			model.OpportunityInternship: 3,
			model.OpportunityProject:    2,
		},
	}
}

// Decision is the answer to a quota query. Remaining is meaningless when
// Unlimited is set.
type Decision struct {
	Allowed   bool   `json:"allowed"`
	Unlimited bool   `json:"unlimited"`
	Remaining int    `json:"remaining"`
	Limit     int    `json:"limit"`
	Category  string `json:"category"`
	MonthKey  string `json:"month_key"`
}

// HardBlocked reports a category closed to the free tier outright, as opposed
// to one whose allowance has been used up.
func (d Decision) HardBlocked() bool {
	return !d.Unlimited && d.Limit == 0
}

type Ledger struct {
	store  Store
	limits Limits
	loc    *time.Location
	now    func() time.Time
}

type Option func(*Ledger)

// WithClock replaces time.Now, mostly for tests crossing month boundaries.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithLocation sets the timezone whose calendar month bounds the counters.
func WithLocation(loc *time.Location) Option {
	return func(l *Ledger) {
		if loc != nil {
			l.loc = loc
		}
	}
}

func NewLedger(store Store, limits Limits, opts ...Option) *Ledger {
	l := &Ledger{
		store:  store,
		limits: limits,
		loc:    time.UTC,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// MonthKey formats t as the counter month in the ledger's timezone.
func (l *Ledger) MonthKey(t time.Time) string {
	return t.In(l.loc).Format(monthKeyLayout)
}

// CurrentMonth returns the counter month for now.
func (l *Ledger) CurrentMonth() string {
	return l.MonthKey(l.now())
}

// MonthBounds returns the [start, end) interval of the month containing t.
func (l *Ledger) MonthBounds(t time.Time) (time.Time, time.Time) {
	t = t.In(l.loc)
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, l.loc)
	return start, start.AddDate(0, 1, 0)
}

func (l *Ledger) Limits() Limits {
	return l.limits
}

func (l *Ledger) postingLimit(category model.OpportunityType) (int, error) {
	if !category.Valid() {
		return 0, fmt.Errorf("unknown opportunity category %q: %w", category, domain.ErrInvalidInput)
	}
	if category == model.OpportunityFreelancing {
		return 0, nil
	}
	return l.limits.Posting[category], nil
}

func postingKey(industryID uuid.UUID, category model.OpportunityType, month string) Key {
	return Key{SubjectID: industryID, Role: model.RoleIndustry, Category: string(category), MonthKey: month}
}

func applicationKey(candidateID uuid.UUID, category model.OpportunityType, month string) Key {
	return Key{SubjectID: candidateID, Role: model.RoleCandidate, Category: string(category), MonthKey: month}
}

// CanPost answers whether the industry may create another opportunity of
// category this month. It does not consume anything.
func (l *Ledger) CanPost(ctx context.Context, industryID uuid.UUID, category model.OpportunityType, isPremium bool) (Decision, error) {
	month := l.CurrentMonth()
	if isPremium {
		return Decision{Allowed: true, Unlimited: true, Category: string(category), MonthKey: month}, nil
	}

	limit, err := l.postingLimit(category)
	if err != nil {
		return Decision{}, err
	}
	return l.check(ctx, postingKey(industryID, category, month), limit)
}

// RecordPost consumes one posting slot. It is the atomic check-and-increment:
// when the limit is already reached it returns a *domain.QuotaExceededError
// and leaves the counter untouched. The returned Decision describes the
// counter after consumption.
func (l *Ledger) RecordPost(ctx context.Context, industryID uuid.UUID, category model.OpportunityType) (Decision, error) {
	limit, err := l.postingLimit(category)
	if err != nil {
		return Decision{}, err
	}
	return l.consume(ctx, postingKey(industryID, category, l.CurrentMonth()), limit)
}

// ReleasePost returns the slot taken by an opportunity created at createdAt,
// used when an admin rejects it.
func (l *Ledger) ReleasePost(ctx context.Context, industryID uuid.UUID, category model.OpportunityType, createdAt time.Time) error {
	key := postingKey(industryID, category, l.MonthKey(createdAt))
	if err := l.store.Decrement(ctx, key); err != nil {
		return fmt.Errorf("failed to release quota %s: %w", key, err)
	}
	return nil
}

// PostingStatus reports every category for the industry's current month.
func (l *Ledger) PostingStatus(ctx context.Context, industryID uuid.UUID, isPremium bool) ([]Decision, error) {
	out := make([]Decision, 0, len(model.OpportunityTypes))
	for _, category := range model.OpportunityTypes {
		d, err := l.CanPost(ctx, industryID, category, isPremium)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// CanApply is the candidate-side counterpart of CanPost.
func (l *Ledger) CanApply(ctx context.Context, candidateID uuid.UUID, category model.OpportunityType, isPremium bool) (Decision, error) {
	month := l.CurrentMonth()
	if isPremium || l.limits.ApplicationsPerMonth <= 0 {
		return Decision{Allowed: true, Unlimited: true, Category: string(category), MonthKey: month}, nil
	}
	return l.check(ctx, applicationKey(candidateID, category, month), l.limits.ApplicationsPerMonth)
}

// RecordApplication consumes one application slot when candidates are limited.
func (l *Ledger) RecordApplication(ctx context.Context, candidateID uuid.UUID, category model.OpportunityType) (Decision, error) {
	month := l.CurrentMonth()
	if l.limits.ApplicationsPerMonth <= 0 {
		return Decision{Allowed: true, Unlimited: true, Category: string(category), MonthKey: month}, nil
	}
	return l.consume(ctx, applicationKey(candidateID, category, month), l.limits.ApplicationsPerMonth)
}

// ReleaseApplication undoes RecordApplication after a failed write.
func (l *Ledger) ReleaseApplication(ctx context.Context, candidateID uuid.UUID, category model.OpportunityType) error {
	if l.limits.ApplicationsPerMonth <= 0 {
		return nil
	}
	key := applicationKey(candidateID, category, l.CurrentMonth())
	if err := l.store.Decrement(ctx, key); err != nil {
		return fmt.Errorf("failed to release quota %s: %w", key, err)
	}
	return nil
}

// Reconcile overwrites the industry's counter for month with the observed
// number of non-rejected opportunities.
func (l *Ledger) Reconcile(ctx context.Context, industryID uuid.UUID, category model.OpportunityType, month string, observed int) error {
	key := postingKey(industryID, category, month)
	if err := l.store.Set(ctx, key, observed); err != nil {
		return fmt.Errorf("failed to reconcile quota %s: %w", key, err)
	}
	return nil
}

func (l *Ledger) check(ctx context.Context, key Key, limit int) (Decision, error) {
	count, err := l.store.Count(ctx, key)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to read quota %s: %w", key, err)
	}
	return decide(key, limit, count), nil
}

func (l *Ledger) consume(ctx context.Context, key Key, limit int) (Decision, error) {
	count, ok, err := l.store.Increment(ctx, key, limit)
	if err != nil {
		return Decision{}, fmt.Errorf("failed to consume quota %s: %w", key, err)
	}
	if !ok {
		slog.WarnContext(ctx, "quota exceeded", "key", key.String(), "limit", limit)
		return decide(key, limit, limit), &domain.QuotaExceededError{Category: key.Category, Limit: limit}
	}
	return decide(key, limit, count), nil
}

func decide(key Key, limit, count int) Decision {
	remaining := limit - count
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   count < limit,
		Remaining: remaining,
		Limit:     limit,
		Category:  key.Category,
		MonthKey:  key.MonthKey,
	}
}
