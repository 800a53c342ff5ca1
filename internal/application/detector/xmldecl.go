package detector

import (
	"context"
	"errors"

	"resprune/internal/application"
	"resprune/internal/domain"
)

// errEnough stops a document scan once the extractor has what it needs
var errEnough = errors.New("enough")

// Extractor yields the candidate name declared by el in the document at path,
// or "". more=false ends the scan of that document.
type Extractor func(path string, el domain.Element) (name string, more bool)

// Action prunes the unused candidates of an XML detector
type Action func(ctx context.Context, env Env, res domain.Resources) (domain.Count, error)

// XMLDeclared collects candidates from elements of XML documents in the
// prefixed res directories. Documents that fail to parse are logged and skipped.
type XMLDeclared struct {
	name   string
	action Action
	detect func() (domain.Resources, error)
}

var _ Detector = (*XMLDeclared)(nil)

// NewXMLDeclared creates an XML-element detector. The action is chosen by
// the caller: whole-file deletion or declaration surgery.
func NewXMLDeclared(name string, src Sources, prefix string, extract Extractor, action Action) *XMLDeclared {
	return &XMLDeclared{
		name:   name,
		action: action,
		detect: enumerateOnce(func() (domain.Resources, error) {
			files, err := src.Layout.ResourceFiles(prefix, isXML)
			if err != nil {
				return nil, err
			}

			res := domain.Resources{}
			for _, path := range files {
				var keys []string
				err := src.Documents.Scan(path, func(el domain.Element) error {
					key, more := extract(path, el)
					if key != "" {
						keys = append(keys, key)
					}
					if !more {
						return errEnough
					}
					return nil
				})
				if err != nil && !errors.Is(err, errEnough) {
					src.Logger.Error("skipping unparseable document",
						src.Logger.Args("detector", name, "path", path, "error", err))
					continue
				}
				for _, key := range keys {
					res.Add(key, path)
				}
			}
			return res, nil
		}),
	}
}

func (d *XMLDeclared) Name() string { return d.name }

func (d *XMLDeclared) Detect() (domain.Resources, error) { return d.detect() }

func (d *XMLDeclared) Run(ctx context.Context, env Env) (*Report, error) {
	res, err := detected(ctx, d)
	if err != nil {
		return nil, err
	}
	env.Logger.Debug("candidates detected", env.Logger.Args("detector", d.name, "names", len(res), "files", res.FileCount()))
	count, err := d.action(ctx, env, res)
	if err != nil {
		return nil, &application.DetectorError{Detector: d.name, Err: err}
	}
	return &Report{Detector: d.name, Total: len(res), Count: count}, nil
}

// deleteFiles removes the whole documents of unused candidates
func deleteFiles(spellings application.SpellingFunc) Action {
	return func(_ context.Context, env Env, res domain.Resources) (domain.Count, error) {
		return application.DeleteUnused(env.Resolver, res, env.DryRun, spellings, env.Plan), nil
	}
}

// removeDeclarations cuts the declarations of unused candidates out of their documents
func removeDeclarations(src Sources, decl application.Declaration, spellings application.SpellingFunc) Action {
	return func(_ context.Context, env Env, res domain.Resources) (domain.Count, error) {
		unused := application.ByDeclarationSpellings(env.Resolver, src.Documents, decl, spellings)
		return application.DeleteUnusedDeclarations(src.Documents, res, env.DryRun, unused, decl, env.Plan, env.Logger)
	}
}
