package config_test

import (
	"testing"

	"github.com/arthur-debert/dotty/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := config.LoadSettings(nil)
		require.NoError(t, err)

		assert.Equal(t, "~/.dotfiles", s.BaseDir)
		assert.Empty(t, s.ConfigFile)
		assert.False(t, s.CheckOnly)
		assert.Equal(t, "auto", s.Format)
		assert.Empty(t, s.Include)
		assert.Empty(t, s.Exclude)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("DOTTY_BASE_DIR", "/srv/dotfiles")
		t.Setenv("DOTTY_CHECK_ONLY", "true")
		t.Setenv("DOTTY_INCLUDE", "vim, zsh,")
		t.Setenv("DOTTY_FORMAT", "json")

		s, err := config.LoadSettings(nil)
		require.NoError(t, err)

		assert.Equal(t, "/srv/dotfiles", s.BaseDir)
		assert.True(t, s.CheckOnly)
		assert.Equal(t, []string{"vim", "zsh"}, s.Include)
		assert.Equal(t, "json", s.Format)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("DOTTY_CHECK_ONLY", "true")
		t.Setenv("DOTTY_EXCLUDE", "git")

		s, err := config.LoadSettings(map[string]interface{}{
			config.KeyCheckOnly: false,
			config.KeyExclude:   []string{"zsh"},
			config.KeyBaseDir:   "/tmp/dots",
		})
		require.NoError(t, err)

		assert.False(t, s.CheckOnly)
		assert.Equal(t, []string{"zsh"}, s.Exclude)
		assert.Equal(t, "/tmp/dots", s.BaseDir)
	})

	t.Run("defaults content is embedded", func(t *testing.T) {
		assert.Contains(t, config.GetDefaultsContent(), "base_dir")
	})
}
