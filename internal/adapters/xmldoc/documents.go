package xmldoc

import (
	"bytes"
	"os"

	"resprune/internal/domain"
	"resprune/internal/ports"
)

// Documents implements ports.XMLDocuments on the local filesystem
type Documents struct{}

var _ ports.XMLDocuments = (*Documents)(nil)

// NewDocuments creates an XML document service
func NewDocuments() *Documents {
	return &Documents{}
}

// Scan streams the start elements of the document at path
func (Documents) Scan(path string, fn func(domain.Element) error) error {
	return Scan(path, fn)
}

// Rewrite removes the selected tag elements from the document at path
func (Documents) Rewrite(path, tag string, drop func(domain.Element) bool, dryRun bool) (*domain.RewriteResult, error) {
	return Rewrite(path, tag, drop, dryRun)
}

// Remainder returns the document at path as it would read with the
// selected tag elements removed
func (Documents) Remainder(path, tag string, drop func(domain.Element) bool) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf bytes.Buffer
	if _, err := Filter(f, &buf, tag, drop); err != nil {
		return "", &ParseError{Path: path, Err: err}
	}
	return buf.String(), nil
}
