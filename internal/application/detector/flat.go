package detector

import (
	"context"

	"resprune/internal/application"
	"resprune/internal/domain"
)

// FlatAsset treats every matching file in the prefixed res directories as a
// candidate named by its base name. Unused groups are deleted whole.
type FlatAsset struct {
	name      string
	spellings application.SpellingFunc
	detect    func() (domain.Resources, error)
}

var _ Detector = (*FlatAsset)(nil)

// NewFlatAsset creates a flat-file detector over res/<prefix>*/
func NewFlatAsset(name string, src Sources, prefix string, match func(file string) bool, spellings application.SpellingFunc) *FlatAsset {
	return &FlatAsset{
		name:      name,
		spellings: spellings,
		detect: enumerateOnce(func() (domain.Resources, error) {
			files, err := src.Layout.ResourceFiles(prefix, match)
			if err != nil {
				return nil, err
			}
			res := domain.Resources{}
			for _, path := range files {
				res.Add(domain.BaseName(path), path)
			}
			return res, nil
		}),
	}
}

func (d *FlatAsset) Name() string { return d.name }

func (d *FlatAsset) Detect() (domain.Resources, error) { return d.detect() }

func (d *FlatAsset) Run(ctx context.Context, env Env) (*Report, error) {
	res, err := detected(ctx, d)
	if err != nil {
		return nil, err
	}
	env.Logger.Debug("candidates detected", env.Logger.Args("detector", d.name, "names", len(res), "files", res.FileCount()))
	count := application.DeleteUnused(env.Resolver, res, env.DryRun, d.spellings, env.Plan)
	return &Report{Detector: d.name, Total: len(res), Count: count}, nil
}
