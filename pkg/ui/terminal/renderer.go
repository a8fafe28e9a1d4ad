// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/arthur-debert/dotty/pkg/ui/output"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output
type Renderer struct {
	output io.Writer
	theme  output.Theme
}

// New creates a new terminal renderer
func New(w io.Writer) (*Renderer, error) {
	return &Renderer{
		output: w,
		theme:  output.StyledTheme(),
	}, nil
}

// RenderReport renders every app block followed by a line of summary badges.
func (r *Renderer) RenderReport(report *reconcile.Report) error {
	if err := output.WriteReport(r.output, report, r.theme); err != nil {
		return err
	}

	badges := make([]string, 0, 7)
	if report.CheckOnly {
		badges = append(badges, pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("check only"))
	}
	for _, c := range output.Summary(report) {
		badges = append(badges, toneStyle(c.Tone).Sprint(fmt.Sprintf(" %d %s ", c.N, c.Label)))
	}
	if len(badges) == 0 {
		badges = append(badges, pterm.NewStyle(pterm.FgGray).Sprint("no links"))
	}

	_, err := fmt.Fprintf(r.output, "\n%s\n", strings.Join(badges, " "))
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

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(output.ErrorText(err)))
	return werr
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n", pterm.Info.Prefix.Text, msg)
	return err
}

// toneStyle returns the badge style for a summary tone
func toneStyle(tone output.Tone) *pterm.Style {
	switch tone {
	case output.ToneGood:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack)
	case output.ToneWarn:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	default:
		return pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	}
}
