package xmldoc

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"resprune/internal/domain"
)

// Scan streams path and calls fn for every start element in document order.
// An error from fn stops the scan and is returned as is.
func Scan(path string, fn func(domain.Element) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	var stopped error
	err = walk(f, func(tok xml.Token) error {
		if start, ok := tok.(xml.StartElement); ok {
			if err := fn(newElement(start)); err != nil {
				stopped = err
				return err
			}
		}
		return nil
	})
	if stopped != nil {
		return stopped
	}
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// walk feeds raw tokens of r to fn, checking that elements are balanced.
// Raw tokens keep namespace prefixes as written.
func walk(r io.Reader, fn func(xml.Token) error) error {
	d := xml.NewDecoder(r)
	var open []string
	root := false

	for {
		tok, err := d.RawToken()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if root && len(open) == 0 {
				return &xml.SyntaxError{Msg: "multiple root elements", Line: line(d)}
			}
			root = true
			open = append(open, qualifiedName(t.Name))
		case xml.EndElement:
			name := qualifiedName(t.Name)
			if len(open) == 0 || open[len(open)-1] != name {
				return &xml.SyntaxError{Msg: "unexpected end element </" + name + ">", Line: line(d)}
			}
			open = open[:len(open)-1]
		}

		if err := fn(xml.CopyToken(tok)); err != nil {
			return err
		}
	}

	if !root {
		return &xml.SyntaxError{Msg: "no root element", Line: line(d)}
	}
	if len(open) > 0 {
		return &xml.SyntaxError{Msg: "unexpected EOF, unclosed <" + open[len(open)-1] + ">", Line: line(d)}
	}
	return nil
}

func line(d *xml.Decoder) int {
	l, _ := d.InputPos()
	return l
}
