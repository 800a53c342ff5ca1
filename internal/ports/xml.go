package ports

import "resprune/internal/domain"

// XMLDocuments reads and rewrites XML resource documents
type XMLDocuments interface {
	// Scan calls fn for every start element of the document in order
	Scan(path string, fn func(domain.Element) error) error

	// Rewrite writes a copy of the document without the tag elements drop
	// selects. The original is left untouched.
	Rewrite(path, tag string, drop func(domain.Element) bool, dryRun bool) (*domain.RewriteResult, error)

	// Remainder returns the document text without the selected elements
	Remainder(path, tag string, drop func(domain.Element) bool) (string, error)
}
