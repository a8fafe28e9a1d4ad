package reconcile

import (
	"github.com/arthur-debert/dotty/pkg/links"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/types"
)

// Options defines the options for a reconciliation pass.
type Options struct {
	// FS is the filesystem links are checked against and created on.
	FS types.FS
	// Lookup resolves {{name}} references. Defaults to the apps being
	// reconciled; pass the unfiltered registry when apps is a subset.
	Lookup types.NameLookup
	// CheckOnly suppresses link creation.
	CheckOnly bool
}

// Outcome is the result of one declared link. When Err is set, Link
// carries whatever paths were resolved before the failure and HasPaths
// reports whether there are any; its Status is meaningless.
type Outcome struct {
	Spec     types.LinkSpec
	Link     types.Link
	Err      error
	HasPaths bool
	// Created is set when this pass made the symlink.
	Created bool
}

// Failed reports whether the link could not be evaluated or created.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// AppResult holds the outcomes for one app in declaration order.
type AppResult struct {
	Name        string
	Description string
	SrcDir      string
	DstDir      string
	Outcomes    []Outcome
}

// Errors returns the number of failed outcomes.
func (r AppResult) Errors() int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Failed() {
			n++
		}
	}
	return n
}

// Report is the result of a reconciliation pass, one entry per app sorted
// by name.
type Report struct {
	CheckOnly bool
	Apps      []AppResult
}

// HasErrors reports whether any link failed.
func (r *Report) HasErrors() bool {
	for _, app := range r.Apps {
		if app.Errors() > 0 {
			return true
		}
	}
	return false
}

// Summary tallies a report.
type Summary struct {
	Created int
	Failed  int
	// Kinds counts the final status of every link that did not fail.
	Kinds map[types.LinkStatusKind]int
}

// Summary tallies outcomes by final status. Failed outcomes are counted
// separately and never appear in Kinds.
func (r *Report) Summary() Summary {
	sum := Summary{Kinds: make(map[types.LinkStatusKind]int)}
	for _, app := range r.Apps {
		for _, o := range app.Outcomes {
			if o.Failed() {
				sum.Failed++
				continue
			}
			if o.Created {
				sum.Created++
			}
			sum.Kinds[o.Link.Status.Kind]++
		}
	}
	return sum
}

// Reconcile checks every link of every app and creates the ones whose
// status is SrcUnexists unless opts.CheckOnly is set.
func Reconcile(apps types.Apps, opts Options) *Report {
	log := logging.GetLogger("reconcile")
	done := logging.LogOperationStart(log, "reconcile")
	defer done()
	log.Debug().Int("apps", len(apps)).Bool("checkOnly", opts.CheckOnly).Msg("Executing reconcile")

	lookup := opts.Lookup
	if lookup == nil {
		lookup = apps
	}
	checker := links.NewChecker(opts.FS, lookup)
	maker := links.NewMaterializer(opts.FS)

	report := &Report{
		CheckOnly: opts.CheckOnly,
		Apps:      make([]AppResult, 0, len(apps)),
	}

	for _, app := range apps.Sorted() {
		result := AppResult{
			Name:        app.Name,
			Description: app.Description,
			SrcDir:      app.SrcDir,
			DstDir:      app.DstDir,
			Outcomes:    make([]Outcome, 0, len(app.Links)),
		}

		for _, spec := range app.Links {
			outcome := reconcileLink(checker, maker, app, spec, opts.CheckOnly)
			if outcome.Failed() {
				log.Debug().Str("app", app.Name).Str("dst", spec.Dst).Str("src", spec.Src).Err(outcome.Err).Msg("link failed")
			}
			result.Outcomes = append(result.Outcomes, outcome)
		}

		report.Apps = append(report.Apps, result)
	}

	sum := report.Summary()
	log.Info().
		Int("apps", len(report.Apps)).
		Int("created", sum.Created).
		Int("failed", sum.Failed).
		Msg("Reconcile finished")
	return report
}

func reconcileLink(checker *links.Checker, maker *links.Materializer, app *types.App, spec types.LinkSpec, checkOnly bool) Outcome {
	outcome := Outcome{Spec: spec}

	link, err := checker.Check(app.DstDir, app.SrcDir, spec)
	outcome.Link = link
	outcome.HasPaths = link.Src != "" || link.Dst != ""
	if err != nil {
		outcome.Err = err
		return outcome
	}

	if link.Status.Kind != types.SrcUnexists || checkOnly {
		return outcome
	}

	made, err := maker.Make(link.Src, link.Dst)
	outcome.Link = made
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.Created = true
	return outcome
}
