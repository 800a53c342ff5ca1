package detector

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"resprune/internal/application"
	"resprune/internal/domain"
)

// Full lists the resource detectors run by a full pass, in run order
var Full = []string{"navigation", "layout", "drawable", "raw", "color", "dimen"}

// Default is the detector run without a full pass
var Default = []string{"report"}

// DefaultDrawableExtensions are the image types the drawable detector considers
var DefaultDrawableExtensions = []string{".png"}

// Options tune the built-in detectors
type Options struct {
	DrawableExtensions []string
}

// Builtin creates the named detectors in the given order
func Builtin(src Sources, opts Options, names ...string) ([]Detector, error) {
	detectors := make([]Detector, 0, len(names))
	for _, name := range names {
		d, err := newBuiltin(src, opts, name)
		if err != nil {
			return nil, err
		}
		detectors = append(detectors, d)
	}
	return detectors, nil
}

func newBuiltin(src Sources, opts Options, name string) (Detector, error) {
	switch name {
	case "drawable":
		exts := opts.DrawableExtensions
		if len(exts) == 0 {
			exts = DefaultDrawableExtensions
		}
		return NewFlatAsset(name, src, "drawable", hasExtension(exts), accessorSpellings("drawable")), nil
	case "raw":
		return NewFlatAsset(name, src, "raw", anyFile, accessorSpellings("raw")), nil
	case "layout":
		return NewLayout(src), nil
	case "navigation":
		return NewNavigation(src), nil
	case "color":
		return NewValues(src, "color"), nil
	case "dimen":
		return NewValues(src, "dimen"), nil
	case "report":
		return NewReportDerived(src), nil
	default:
		return nil, fmt.Errorf("%w: %q", application.ErrUnknownDetector, name)
	}
}

// Names lists every built-in detector
func Names() []string {
	return append(slices.Clone(Full), Default...)
}

// NewLayout detects layout files. Each file is a candidate named after
// itself; unused ones are deleted.
func NewLayout(src Sources) *XMLDeclared {
	extract := func(path string, _ domain.Element) (string, bool) {
		return domain.BaseName(path), false
	}
	return NewXMLDeclared("layout", src, "layout", extract, deleteFiles(layoutSpellings))
}

// NewValues detects <kind name="..."> declarations in values documents.
// Only colors.xml / dimens.xml files and res directories named after kind qualify.
func NewValues(src Sources, kind string) *XMLDeclared {
	decl := application.Declaration{
		Tag: kind,
		Name: func(el domain.Element) string {
			if el.Name != kind {
				return ""
			}
			name, _ := el.Attr("name")
			return name
		},
	}
	extract := func(path string, el domain.Element) (string, bool) {
		if !declaresValues(path, kind) {
			return "", false
		}
		return decl.Name(el), true
	}
	spellings := func(name string) []string {
		return []string{name, "R." + kind + "." + name, "@" + kind + "/" + name}
	}
	return NewXMLDeclared(kind, src, "", extract, removeDeclarations(src, decl, spellings))
}

func declaresValues(path, kind string) bool {
	return filepath.Base(path) == kind+"s.xml" ||
		strings.HasPrefix(filepath.Base(filepath.Dir(path)), kind)
}

func accessorSpellings(kind string) application.SpellingFunc {
	return func(name string) []string {
		return []string{name, "R." + kind + "." + name}
	}
}

func layoutSpellings(name string) []string {
	binding := domain.PascalCase(name) + "Binding"
	return []string{
		name,
		"R.layout." + name,
		binding,
		binding + ".bind",
		binding + ".inflate",
		binding + domain.EscapeQuery("::bind"),
		binding + domain.EscapeQuery("::inflate"),
	}
}

func hasExtension(exts []string) func(string) bool {
	return func(file string) bool {
		ext := filepath.Ext(file)
		for _, e := range exts {
			if strings.EqualFold(ext, e) {
				return true
			}
		}
		return false
	}
}

func anyFile(string) bool { return true }

func isXML(file string) bool { return strings.EqualFold(filepath.Ext(file), ".xml") }
