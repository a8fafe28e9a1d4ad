// Package styles holds the named lipgloss styles used by the terminal
// renderer. Styles are defined in the embedded styles.yaml; a style that
// fails to load or is missing renders unstyled.
package styles

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold             bool   `yaml:"bold,omitempty"`
	Italic           bool   `yaml:"italic,omitempty"`
	Underline        bool   `yaml:"underline,omitempty"`
	Foreground       string `yaml:"foreground,omitempty"`
	Background       string `yaml:"background,omitempty"`
	Border           string `yaml:"border,omitempty"`
	BorderForeground string `yaml:"borderForeground,omitempty"`
	PaddingLeft      int    `yaml:"paddingLeft,omitempty"`
	PaddingRight     int    `yaml:"paddingRight,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Style names used by the renderers.
const (
	AppTitle    = "AppTitle"
	Success     = "Success"
	Failure     = "Failure"
	ErrorLabel  = "ErrorLabel"
	PathPresent = "PathPresent"
	PathMissing = "PathMissing"
	Tree        = "Tree"
	Muted       = "Muted"
	Description = "Description"
)

// StyleRegistry maps semantic names to lipgloss styles
var StyleRegistry map[string]lipgloss.Style

var colors map[string]lipgloss.AdaptiveColor

//go:embed styles.yaml
var embeddedStyles []byte

func init() {
	if err := LoadStylesFromData(embeddedStyles); err != nil {
		initDefaultStyles()
	}
}

// initDefaultStyles keeps the registry usable when styles.yaml is broken.
func initDefaultStyles() {
	colors = make(map[string]lipgloss.AdaptiveColor)
	StyleRegistry = map[string]lipgloss.Style{
		AppTitle: lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1),
	}
}

// LoadStylesFromData loads style configuration from byte data
func LoadStylesFromData(data []byte) error {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse styles data: %w", err)
	}

	loaded := make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		loaded[name] = lipgloss.AdaptiveColor{
			Light: def.Light,
			Dark:  def.Dark,
		}
	}

	registry := make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		style, err := buildStyle(def, loaded)
		if err != nil {
			return fmt.Errorf("style %s: %w", name, err)
		}
		registry[name] = style
	}

	colors = loaded
	StyleRegistry = registry
	return nil
}

// buildStyle constructs a lipgloss style from a style definition
func buildStyle(def StyleDef, palette map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		color, ok := palette[def.Foreground]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}
	if def.Background != "" {
		color, ok := palette[def.Background]
		if !ok {
			return style, fmt.Errorf("unknown color %q", def.Background)
		}
		style = style.Background(color)
	}

	if def.Border != "" {
		border, ok := borders[def.Border]
		if !ok {
			return style, fmt.Errorf("unknown border %q", def.Border)
		}
		style = style.Border(border)
		if def.BorderForeground != "" {
			if color, ok := palette[def.BorderForeground]; ok {
				style = style.BorderForeground(color)
			}
		}
	}

	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style, nil
}

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"double":  lipgloss.DoubleBorder(),
	"thick":   lipgloss.ThickBorder(),
}

// GetStyle safely retrieves a style from the registry
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Color returns a named color from the loaded palette.
func Color(name string) (lipgloss.AdaptiveColor, bool) {
	c, ok := colors[name]
	return c, ok
}
