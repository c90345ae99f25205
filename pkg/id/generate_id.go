package id

import (
	"strings"

	"github.com/google/uuid"
)

// New returns prefix + 20 hex characters taken from a fresh UUID, e.g.
// "LOAN3f2a9c…". Uniqueness comes from the UUID, not from timestamps.
func New(prefix string) string {
	u := uuid.New()
	hexed := strings.ReplaceAll(u.String(), "-", "")
	return prefix + hexed[:20]
}

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	u := uuid.New()
	return strings.ReplaceAll(u.String(), "-", "")
}
