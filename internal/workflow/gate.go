package workflow

import (
	"time"

	"github.com/dangerclosesec/nextintern/internal/domain"
)

// ScrollPosition is what the client reports about the terms container, in
// layout units.
type ScrollPosition struct {
	ScrollTop      float64 `json:"scroll_top" validate:"gte=0"`
	ViewportHeight float64 `json:"viewport_height" validate:"gt=0"`
	ScrollHeight   float64 `json:"scroll_height" validate:"gt=0"`
}

// AtEnd reports whether the viewport bottom is within threshold of the content end.
func (p ScrollPosition) AtEnd(threshold float64) bool {
	return p.ScrollTop+p.ViewportHeight >= p.ScrollHeight-threshold
}

// Gate holds the three engagement signals checked before acknowledgment.
type Gate struct {
	EnteredAt     time.Time
	ScrolledToEnd bool
	Acknowledged  bool
}

// Missing lists every unmet requirement at now, in a fixed order.
func (g Gate) Missing(now time.Time, dwell time.Duration) []domain.Requirement {
	var missing []domain.Requirement
	if !g.ScrolledToEnd {
		missing = append(missing, domain.RequirementScroll)
	}
	if g.EnteredAt.IsZero() || now.Sub(g.EnteredAt) < dwell {
		missing = append(missing, domain.RequirementDwellTime)
	}
	if !g.Acknowledged {
		missing = append(missing, domain.RequirementAcknowledgment)
	}
	return missing
}

// Open is true when nothing is missing.
func (g Gate) Open(now time.Time, dwell time.Duration) bool {
	return len(g.Missing(now, dwell)) == 0
}
