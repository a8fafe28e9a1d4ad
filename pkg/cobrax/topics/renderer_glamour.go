package topics

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// DefaultWrap is the word wrap width used when Width is zero.
const DefaultWrap = 80

// GlamourRenderer renders markdown topics with glamour. Other extensions
// are returned unchanged.
type GlamourRenderer struct {
	// Style is "auto", a standard glamour style name ("dark", "light",
	// "notty", "ascii", ...) or a path to a JSON style file
	Style string
	Width int
}

// NewGlamourRenderer creates a renderer that picks its style from the
// terminal background
func NewGlamourRenderer() *GlamourRenderer {
	return &GlamourRenderer{Style: "auto"}
}

func (r *GlamourRenderer) options() []glamour.TermRendererOption {
	width := r.Width
	if width <= 0 {
		width = DefaultWrap
	}
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}

	switch _, standard := styles.DefaultStyles[r.Style]; {
	case r.Style == "" || r.Style == "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case standard:
		opts = append(opts, glamour.WithStandardStyle(r.Style))
	default:
		opts = append(opts, glamour.WithStylePath(r.Style))
	}
	return opts
}

// Render converts markdown to styled terminal output, falling back to the
// raw content when glamour fails.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return content
	}

	renderer, err := glamour.NewTermRenderer(r.options()...)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}
