// Package policy decides what one marketplace party may see of another.
// Every function here is pure: callers pass already-fetched records and get
// back a projection built for a single viewer.
package policy

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/nextintern/internal/domain"
	"github.com/google/uuid"
)

// EntityKind selects the pseudonym prefix.
type EntityKind int

const (
	KindCandidate EntityKind = iota
	KindCompany
)

func (k EntityKind) label() string {
	switch k {
	case KindCandidate:
		return "Candidate"
	case KindCompany:
		return "Company"
	}
	return "Unknown"
}

func (k EntityKind) idPrefix() string {
	switch k {
	case KindCandidate:
		return "cand-"
	case KindCompany:
		return "comp-"
	}
	return "anon-"
}

const pseudonymSuffixLen = 3

// DeriveDisplayName returns realName when disclose is set and a stable
// pseudonym such as "Candidate #abc" otherwise.
func DeriveDisplayName(kind EntityKind, anonymousID, realName string, disclose bool) (string, error) {
	if anonymousID == "" {
		return "", domain.ErrInvalidIdentifier
	}
	if disclose {
		return realName, nil
	}
	return fmt.Sprintf("%s #%s", kind.label(), lastN(anonymousID, pseudonymSuffixLen)), nil
}

// lastN keeps the final n runes, or the whole string when it is shorter.
func lastN(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[len(r)-n:])
}

// NewAnonymousID mints an opaque identifier for a new profile.
func NewAnonymousID(kind EntityKind) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return kind.idPrefix() + raw[:12]
}
