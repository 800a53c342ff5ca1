// Package detector enumerates resource candidates of one kind and prunes the
// unused ones.
package detector

import (
	"context"
	"sync"

	"github.com/pterm/pterm"

	"resprune/internal/application"
	"resprune/internal/domain"
	"resprune/internal/ports"
)

// Detector finds candidates of one resource kind and acts on the unused ones
type Detector interface {
	Name() string

	// Detect enumerates candidates. The enumeration runs once per detector;
	// later calls return the same result.
	Detect() (domain.Resources, error)

	// Run prunes unused candidates using the cached enumeration
	Run(ctx context.Context, env Env) (*Report, error)
}

// Sources are the collaborators detectors enumerate from
type Sources struct {
	Layout    ports.ModuleLayout
	Documents ports.XMLDocuments
	Logger    *pterm.Logger
}

// Env carries the per-run state shared by all detectors
type Env struct {
	Resolver *application.UsageResolver
	Plan     ports.DeletionPlan
	DryRun   bool
	Logger   *pterm.Logger
}

// Report summarizes one detector run
type Report struct {
	Detector string
	Total    int // Candidates detected
	Count    domain.Count
	Listed   []string // Candidates reported without being deleted
}

// enumerateOnce caches the first enumeration and drops unnamed entries
func enumerateOnce(enumerate func() (domain.Resources, error)) func() (domain.Resources, error) {
	return sync.OnceValues(func() (domain.Resources, error) {
		res, err := enumerate()
		if err != nil {
			return nil, err
		}
		return res.WithoutEmpty(), nil
	})
}

// detected runs the cached enumeration and checks for cancellation
func detected(ctx context.Context, d Detector) (domain.Resources, error) {
	res, err := d.Detect()
	if err != nil {
		return nil, &application.DetectorError{Detector: d.Name(), Err: err}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
