package policy

import (
	"context"
	"time"

	"github.com/dangerclosesec/nextintern/internal/model"
	"github.com/google/uuid"
)

// Tier is the subscription level of whoever is looking at a record.
type Tier int

const (
	TierFree Tier = iota
	TierPremium
)

func (t Tier) String() string {
	if t == TierPremium {
		return "premium"
	}
	return "free"
}

// Viewer is derived per request from the authenticated session and never stored.
type Viewer struct {
	UserID uuid.UUID
	Role   model.Role
	Tier   Tier
}

// NewViewer resolves the tier once, at now, so later projections are
// deterministic for the life of the request.
func NewViewer(userID uuid.UUID, role model.Role, isPremium bool, premiumExpiresAt *time.Time, now time.Time) Viewer {
	tier := TierFree
	if isPremium && (premiumExpiresAt == nil || now.Before(*premiumExpiresAt)) {
		tier = TierPremium
	}
	return Viewer{UserID: userID, Role: role, Tier: tier}
}

// ViewerFromUser builds a Viewer for a loaded account.
func ViewerFromUser(u *model.User, now time.Time) Viewer {
	return NewViewer(u.ID, u.Role, u.IsPremium, u.PremiumExpiresAt, now)
}

func (v Viewer) Premium() bool { return v.Tier == TierPremium }

type viewerKey struct{}

// WithViewer stores v in ctx.
func WithViewer(ctx context.Context, v Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFromContext returns the request's viewer. An anonymous free viewer with
// no role is returned when none is set, which discloses nothing gated.
func ViewerFromContext(ctx context.Context) (Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(Viewer)
	return v, ok
}
