// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/arthur-debert/dotty/pkg/ui/output"
)

// Renderer provides JSON output for machine consumption
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(w io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return &Renderer{
		output:  w,
		encoder: encoder,
	}, nil
}

// Report is the JSON shape of a reconciliation pass.
type Report struct {
	CheckOnly bool           `json:"check_only"`
	HasErrors bool           `json:"has_errors"`
	Summary   map[string]int `json:"summary"`
	Apps      []App          `json:"apps"`
}

// App is the JSON shape of one app's results.
type App struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	SrcDir      string `json:"srcdir"`
	DstDir      string `json:"dstdir"`
	Links       []Link `json:"links"`
}

// Link is one declared link and what happened to it.
type Link struct {
	Spec    types.LinkSpec    `json:"spec"`
	Src     string            `json:"src,omitempty"`
	Dst     string            `json:"dst,omitempty"`
	Status  *types.LinkStatus `json:"status,omitempty"`
	Created bool              `json:"created,omitempty"`
	Error   *Error            `json:"error,omitempty"`
}

// Error is a link or command failure.
type Error struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewReport converts a reconciliation report.
func NewReport(report *reconcile.Report) Report {
	out := Report{
		CheckOnly: report.CheckOnly,
		HasErrors: report.HasErrors(),
		Summary:   make(map[string]int),
		Apps:      make([]App, 0, len(report.Apps)),
	}
	for _, c := range output.Summary(report) {
		out.Summary[c.Label] = c.N
	}

	for _, app := range report.Apps {
		view := App{
			Name:        app.Name,
			Description: app.Description,
			SrcDir:      app.SrcDir,
			DstDir:      app.DstDir,
			Links:       make([]Link, 0, len(app.Outcomes)),
		}
		for _, o := range app.Outcomes {
			link := Link{Spec: o.Spec, Created: o.Created}
			if o.HasPaths {
				link.Src, link.Dst = o.Link.Src, o.Link.Dst
			}
			if o.Failed() {
				link.Error = newError(o.Err)
			} else {
				status := o.Link.Status
				link.Status = &status
			}
			view.Links = append(view.Links, link)
		}
		out.Apps = append(out.Apps, view)
	}
	return out
}

func newError(err error) *Error {
	return &Error{
		Code:    errors.GetErrorCode(err),
		Message: output.ErrorText(err),
		Details: errors.GetErrorDetails(err),
	}
}

// RenderReport renders a reconciliation report as JSON
func (r *Renderer) RenderReport(report *reconcile.Report) error {
	return r.encoder.Encode(NewReport(report))
}

// RenderApps renders the app registry as JSON
func (r *Renderer) RenderApps(apps []*types.App) error {
	out := make([]App, 0, len(apps))
	for _, app := range apps {
		links := make([]Link, 0, len(app.Links))
		for _, spec := range app.Links {
			links = append(links, Link{Spec: spec})
		}
		out = append(out, App{
			Name:        app.Name,
			Description: app.Description,
			SrcDir:      app.SrcDir,
			DstDir:      app.DstDir,
			Links:       links,
		})
	}
	return r.encoder.Encode(map[string]interface{}{"apps": out})
}

// RenderError renders an error as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]*Error{"error": newError(err)})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
