package xmldoc

import (
	"bufio"
	"encoding/xml"
	"io"
	"strings"
)

const indentUnit = "    "

// writer re-serializes raw tokens with one element per line and four-space
// indentation. Whitespace-only text is dropped and regenerated. Prefixes and
// attribute order are written exactly as read.
type writer struct {
	w        *bufio.Writer
	depth    int
	open     bool // a start tag is waiting for '>' or '/>'
	afterTxt bool // last output was character data
	started  bool
}

func newWriter(w io.Writer) *writer {
	return &writer{w: bufio.NewWriter(w)}
}

func (w *writer) token(tok xml.Token) {
	switch t := tok.(type) {
	case xml.StartElement:
		w.closeTag()
		w.newline()
		w.w.WriteByte('<')
		w.w.WriteString(qualifiedName(t.Name))
		for _, a := range t.Attr {
			w.w.WriteByte(' ')
			w.w.WriteString(qualifiedName(a.Name))
			w.w.WriteString(`="`)
			w.w.WriteString(escapeAttr(a.Value))
			w.w.WriteByte('"')
		}
		w.open = true
		w.depth++
		w.afterTxt = false

	case xml.EndElement:
		w.depth--
		if w.open {
			w.w.WriteString("/>")
			w.open = false
		} else {
			if !w.afterTxt {
				w.newline()
			}
			w.w.WriteString("</")
			w.w.WriteString(qualifiedName(t.Name))
			w.w.WriteByte('>')
		}
		w.afterTxt = false

	case xml.CharData:
		if len(strings.TrimSpace(string(t))) == 0 {
			return
		}
		w.closeTag()
		w.w.WriteString(escapeText(string(t)))
		w.afterTxt = true

	case xml.Comment:
		w.closeTag()
		w.newline()
		w.w.WriteString("<!--")
		w.w.Write(t)
		w.w.WriteString("-->")
		w.afterTxt = false

	case xml.ProcInst:
		w.closeTag()
		w.newline()
		w.w.WriteString("<?")
		w.w.WriteString(t.Target)
		if len(t.Inst) > 0 {
			w.w.WriteByte(' ')
			w.w.Write(t.Inst)
		}
		w.w.WriteString("?>")
		w.afterTxt = false

	case xml.Directive:
		w.closeTag()
		w.newline()
		w.w.WriteString("<!")
		w.w.Write(t)
		w.w.WriteByte('>')
		w.afterTxt = false
	}
	w.started = true
}

// closeTag terminates a pending start tag that turned out to have content
func (w *writer) closeTag() {
	if w.open {
		w.w.WriteByte('>')
		w.open = false
	}
}

// newline starts a new indented line unless inside mixed content
func (w *writer) newline() {
	if !w.started || w.afterTxt {
		return
	}
	w.w.WriteByte('\n')
	for i := 0; i < w.depth; i++ {
		w.w.WriteString(indentUnit)
	}
}

func (w *writer) flush() error {
	if w.started {
		w.w.WriteByte('\n')
	}
	return w.w.Flush()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		`"`, "&quot;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeAttr(s string) string { return attrEscaper.Replace(s) }
