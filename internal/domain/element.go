package domain

// Element is an XML start element as written in the document. Names keep
// their namespace prefix, e.g. "android:id".
type Element struct {
	Name  string
	Attrs []Attr
}

// Attr is one attribute of an Element
type Attr struct {
	Name  string
	Value string
}

// Attr returns the value of the attribute with the given qualified name
func (e Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// RewriteResult describes one document passed through declaration removal
type RewriteResult struct {
	Path     string
	TempPath string // Rewritten copy awaiting commit; empty when discarded
	Removed  int    // Elements dropped
	Delta    int64  // Original size minus rewritten size
}
