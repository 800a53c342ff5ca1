package detector

import (
	"context"

	"resprune/internal/application"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

const unusedResourcesIssue = "UnusedResources"

// ReportDerived reads candidates flagged as unused by the static-analysis
// report. It only lists them.
type ReportDerived struct {
	layout ports.ModuleLayout
	detect func() (domain.Resources, error)
}

var _ Detector = (*ReportDerived)(nil)

// NewReportDerived creates the report detector. A missing report yields no candidates.
func NewReportDerived(src Sources) *ReportDerived {
	return &ReportDerived{
		layout: src.Layout,
		detect: enumerateOnce(func() (domain.Resources, error) {
			report, err := src.Layout.ReportFile()
			if err != nil {
				return nil, err
			}
			res := domain.Resources{}
			if report == "" {
				return res, nil
			}

			capture := false
			err = src.Documents.Scan(report, func(el domain.Element) error {
				switch el.Name {
				case "issue":
					id, _ := el.Attr("id")
					capture = id == unusedResourcesIssue
				case "location":
					if !capture {
						return nil
					}
					capture = false
					if file, ok := el.Attr("file"); ok && file != "" {
						res.Add(domain.BaseName(file), file)
					}
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			return res, nil
		}),
	}
}

func (d *ReportDerived) Name() string { return "report" }

func (d *ReportDerived) Detect() (domain.Resources, error) { return d.detect() }

// Run lists the reported candidates. Deleting them is not supported.
func (d *ReportDerived) Run(ctx context.Context, env Env) (*Report, error) {
	res, err := detected(ctx, d)
	if err != nil {
		return nil, err
	}

	report := &Report{Detector: d.Name(), Total: len(res)}
	path, err := d.layout.ReportFile()
	if err != nil {
		env.Logger.Warn("cannot locate report", env.Logger.Args("module", d.layout.ModuleName(), "error", err))
		return report, nil
	}
	if path == "" {
		env.Logger.Warn(application.ErrReportNotFound.Error(),
			env.Logger.Args("module", d.layout.ModuleName()))
		return report, nil
	}

	for _, name := range res.Names() {
		env.Logger.Info("unused per report", env.Logger.Args("name", name, "files", []string(res[name])))
		report.Listed = append(report.Listed, name)
	}
	if len(report.Listed) > 0 {
		env.Logger.Warn("deleting report candidates is not supported, review them manually")
	}
	return report, nil
}
