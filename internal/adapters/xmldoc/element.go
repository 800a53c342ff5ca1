package xmldoc

import (
	"encoding/xml"
	"fmt"

	"resprune/internal/domain"
)

// ParseError reports a document that could not be parsed
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func qualifiedName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}

func newElement(start xml.StartElement) domain.Element {
	el := domain.Element{
		Name:  qualifiedName(start.Name),
		Attrs: make([]domain.Attr, len(start.Attr)),
	}
	for i, a := range start.Attr {
		el.Attrs[i] = domain.Attr{Name: qualifiedName(a.Name), Value: a.Value}
	}
	return el
}
