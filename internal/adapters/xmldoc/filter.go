package xmldoc

import (
	"encoding/xml"
	"io"

	"resprune/internal/domain"
)

// filterState is the state of the suppression machine
type filterState int

const (
	passthrough filterState = iota
	suppressing
)

// suppressor drops the subtree of every target element the visitor selects.
// Nested elements with the same tag are tracked by depth, so suppression ends
// on the end element that closes the element that triggered it.
type suppressor struct {
	tag   string
	drop  func(domain.Element) bool
	state filterState
	depth int

	removed int
}

// emit advances the machine by one token and reports whether it is kept
func (s *suppressor) emit(tok xml.Token) bool {
	switch s.state {
	case passthrough:
		start, ok := tok.(xml.StartElement)
		if !ok || qualifiedName(start.Name) != s.tag {
			return true
		}
		if !s.drop(newElement(start)) {
			return true
		}
		s.state = suppressing
		s.depth = 1
		s.removed++
		return false

	case suppressing:
		switch tok.(type) {
		case xml.StartElement:
			s.depth++
		case xml.EndElement:
			s.depth--
			if s.depth == 0 {
				s.state = passthrough
			}
		}
		return false
	}
	return true
}

// Filter copies the document in r to w without the tag elements for which
// drop returns true, together with everything they contain. The output is
// re-indented. It returns the number of elements removed.
func Filter(r io.Reader, w io.Writer, tag string, drop func(domain.Element) bool) (int, error) {
	s := &suppressor{tag: tag, drop: drop}
	out := newWriter(w)

	err := walk(r, func(tok xml.Token) error {
		if s.emit(tok) {
			out.token(tok)
		}
		return nil
	})
	if err != nil {
		return s.removed, err
	}
	return s.removed, out.flush()
}
