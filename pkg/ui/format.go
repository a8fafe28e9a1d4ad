package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks terminal or text output from the destination
	FormatAuto Format = iota
	// FormatTerminal renders rich terminal output with colors and styling
	FormatTerminal
	// FormatText renders plain text output without any styling
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// FormatNames lists the accepted format names, for flag help.
var FormatNames = []string{"auto", "term", "text", "json"}

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format %q, expected one of %s", s, strings.Join(FormatNames, ", ")).
			WithDetail("format", s)
	}
}

// fdWriter is implemented by *os.File.
type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// DetectFormat determines the appropriate output format based on environment and terminal capabilities
func DetectFormat(output io.Writer) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	file, ok := output.(fdWriter)
	if !ok {
		return FormatText
	}

	// Piped or redirected
	if !isatty.IsTerminal(file.Fd()) && !isatty.IsCygwinTerminal(file.Fd()) {
		return FormatText
	}

	if termenv.NewOutput(output).EnvColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
