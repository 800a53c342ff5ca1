package application

import (
	"github.com/pterm/pterm"

	"resprune/internal/ports"
)

// UsageResolver decides whether candidates are referenced in the index
type UsageResolver struct {
	index  ports.ReferenceIndex
	logger *pterm.Logger
}

// NewUsageResolver creates a resolver over index
func NewUsageResolver(index ports.ReferenceIndex, logger *pterm.Logger) *UsageResolver {
	return &UsageResolver{index: index, logger: logger}
}

// Logger returns the logger used for query diagnostics
func (u *UsageResolver) Logger() *pterm.Logger {
	return u.logger
}

// Unused reports whether no spelling is referenced by a document outside
// owners. Every spelling must be absent. A failing query counts as a
// reference so the candidate is kept.
func (u *UsageResolver) Unused(spellings []string, owners ...string) bool {
	for _, term := range spellings {
		found, err := u.index.Contains(term, owners...)
		if err != nil {
			u.logger.Error("query failed, keeping candidate",
				u.logger.Args("term", term, "error", err))
			return false
		}
		if found {
			return false
		}
	}
	return true
}

// ReferencedOnlyBy reports whether every document referencing term
// satisfies allowed, returning those documents. A failing query yields false.
func (u *UsageResolver) ReferencedOnlyBy(term string, allowed func(path string) bool) ([]string, bool) {
	sources, err := u.index.Sources(term)
	if err != nil {
		u.logger.Error("query failed, keeping candidate",
			u.logger.Args("term", term, "error", err))
		return nil, false
	}
	for _, path := range sources {
		if !allowed(path) {
			return nil, false
		}
	}
	return sources, true
}
