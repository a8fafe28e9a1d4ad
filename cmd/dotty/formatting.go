package dotty

import (
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/dotty/pkg/ui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// styledHelp reports whether help output goes to a color terminal
func styledHelp() bool {
	return ui.DetectFormat(os.Stdout) == ui.FormatTerminal
}

func formatBold(s string) string {
	if !styledHelp() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
