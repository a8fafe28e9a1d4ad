package output

import (
	"os"

	"github.com/arthur-debert/dotty/pkg/ui/output/styles"
	"github.com/charmbracelet/lipgloss"
)

// Theme styles the fragments of an app block.
type Theme struct {
	Title       lipgloss.Style
	Success     lipgloss.Style
	Failure     lipgloss.Style
	ErrorLabel  lipgloss.Style
	Tree        lipgloss.Style
	Description lipgloss.Style

	// Path renders a filesystem path. Nil renders it verbatim.
	Path func(path string) string
}

// PlainTheme draws the title box and nothing else.
func PlainTheme() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
		Success:     lipgloss.NewStyle(),
		Failure:     lipgloss.NewStyle(),
		ErrorLabel:  lipgloss.NewStyle(),
		Tree:        lipgloss.NewStyle(),
		Description: lipgloss.NewStyle(),
	}
}

// StyledTheme uses the styles registry.
func StyledTheme() Theme {
	present := styles.GetStyle(styles.PathPresent)
	missing := styles.GetStyle(styles.PathMissing)

	return Theme{
		Title:       styles.GetStyle(styles.AppTitle),
		Success:     styles.GetStyle(styles.Success),
		Failure:     styles.GetStyle(styles.Failure),
		ErrorLabel:  styles.GetStyle(styles.ErrorLabel),
		Tree:        styles.GetStyle(styles.Tree),
		Description: styles.GetStyle(styles.Description),
		Path: func(path string) string {
			if _, err := os.Stat(path); err == nil {
				return present.Render(path)
			}
			return missing.Render(path)
		},
	}
}

func (t Theme) path(p string) string {
	if t.Path == nil {
		return p
	}
	return t.Path(p)
}
