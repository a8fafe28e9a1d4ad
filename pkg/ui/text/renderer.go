// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/arthur-debert/dotty/pkg/ui/output"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	theme  output.Theme
}

// New creates a new text renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		theme:  output.PlainTheme(),
	}, nil
}

// RenderReport renders every app block followed by a summary line.
func (r *Renderer) RenderReport(report *reconcile.Report) error {
	if err := output.WriteReport(r.output, report, r.theme); err != nil {
		return err
	}

	line := output.SummaryLine(output.Summary(report))
	if report.CheckOnly {
		line = "check only: " + line
	}
	_, err := fmt.Fprintf(r.output, "\n%s\n", line)
	return err
}

// RenderApps renders the configuration of each app.
func (r *Renderer) RenderApps(apps []*types.App) error {
	for _, app := range apps {
		if _, err := io.WriteString(r.output, output.AppSummary(app, r.theme)); err != nil {
			return err
		}
	}
	return nil
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %s\n", output.ErrorText(err))
	return werr
}

// RenderMessage renders a simple message as plain text
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
