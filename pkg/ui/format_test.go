package ui_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", ui.FormatAuto, false},
		{"", ui.FormatAuto, false},
		{"term", ui.FormatTerminal, false},
		{"Terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"plain", ui.FormatText, false},
		{" JSON ", ui.FormatJSON, false},
		{"xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	for _, name := range ui.FormatNames {
		_, err := ui.ParseFormat(name)
		assert.NoError(t, err, name)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("buffer is not a terminal", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(&bytes.Buffer{}))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		f, err := os.Create(filepath.Join(t.TempDir(), "out"))
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})

	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})
}
