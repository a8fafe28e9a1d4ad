// Package ui renders command results in terminal, text or JSON form.
package ui

import (
	"io"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/reconcile"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/arthur-debert/dotty/pkg/ui/json"
	"github.com/arthur-debert/dotty/pkg/ui/terminal"
	"github.com/arthur-debert/dotty/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderReport renders the result of a reconciliation pass
	RenderReport(report *reconcile.Report) error

	// RenderApps renders the configured apps
	RenderApps(apps []*types.App) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto is resolved against output with DetectFormat.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(output), output)
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
