package config_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotty/pkg/config"
	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[vim]
links = [["vimrc", ".vimrc"]]

[zsh]
links = [["zshrc", ".zshrc"]]

[git]
links = [["gitconfig", ".gitconfig"]]
`

func TestLoad(t *testing.T) {
	t.Run("default base dir and config file", func(t *testing.T) {
		env := testutil.NewEnv(t)
		base := testutil.CreateDir(t, env.Home, ".dotfiles")
		path := testutil.CreateFile(t, base, "dotty.toml", sampleConfig)

		cfg, err := config.Load(nil)
		require.NoError(t, err)

		assert.Equal(t, base, cfg.BaseDir)
		assert.Equal(t, path, cfg.ConfigFile)
		assert.Equal(t, []string{"git", "vim", "zsh"}, cfg.Apps.Names())
		assert.Equal(t, filepath.Join(base, "vim"), cfg.Apps["vim"].DstDir)
	})

	t.Run("base dir is canonicalized", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.WriteConfig(t, sampleConfig)
		alias := filepath.Join(env.Root, "alias")
		testutil.CreateSymlink(t, env.BaseDir, alias)

		cfg, err := config.Load(map[string]interface{}{config.KeyBaseDir: alias})
		require.NoError(t, err)
		assert.Equal(t, env.BaseDir, cfg.BaseDir)
	})

	t.Run("xdg fallback", func(t *testing.T) {
		env := testutil.NewEnv(t)
		path := testutil.CreateFile(t, filepath.Join(env.Root, "config", "dotty"), "dotty.toml", sampleConfig)

		cfg, err := config.Load(map[string]interface{}{config.KeyBaseDir: env.BaseDir})
		require.NoError(t, err)
		assert.Equal(t, path, cfg.ConfigFile)
	})

	t.Run("explicit config file", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.WriteConfig(t, "[ignored]\n")
		path := testutil.CreateFile(t, env.Root, "other.toml", sampleConfig)

		cfg, err := config.Load(map[string]interface{}{
			config.KeyBaseDir:    env.BaseDir,
			config.KeyConfigFile: path,
		})
		require.NoError(t, err)
		assert.Equal(t, path, cfg.ConfigFile)
		assert.NotContains(t, cfg.Apps, "ignored")
	})

	t.Run("missing base dir", func(t *testing.T) {
		env := testutil.NewEnv(t)

		_, err := config.Load(map[string]interface{}{config.KeyBaseDir: filepath.Join(env.Root, "nope")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("missing config file", func(t *testing.T) {
		env := testutil.NewEnv(t)

		_, err := config.Load(map[string]interface{}{config.KeyBaseDir: env.BaseDir})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("missing explicit config file", func(t *testing.T) {
		env := testutil.NewEnv(t)
		env.WriteConfig(t, sampleConfig)

		_, err := config.Load(map[string]interface{}{
			config.KeyBaseDir:    env.BaseDir,
			config.KeyConfigFile: filepath.Join(env.Root, "nope.toml"),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})
}

func TestConfig_Selected(t *testing.T) {
	env := testutil.NewEnv(t)
	env.WriteConfig(t, sampleConfig)

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{"everything", nil, nil, []string{"git", "vim", "zsh"}},
		{"include", []string{"vim", "zsh"}, nil, []string{"vim", "zsh"}},
		{"exclude", nil, []string{"vim"}, []string{"git", "zsh"}},
		{"exclude wins", []string{"vim", "zsh"}, []string{"vim"}, []string{"zsh"}},
		{"unknown names are ignored", []string{"vim", "emacs"}, []string{"nano"}, []string{"vim"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := map[string]interface{}{config.KeyBaseDir: env.BaseDir}
			if tt.include != nil {
				flags[config.KeyInclude] = tt.include
			}
			if tt.exclude != nil {
				flags[config.KeyExclude] = tt.exclude
			}

			cfg, err := config.Load(flags)
			require.NoError(t, err)

			selected := cfg.Selected()
			assert.Equal(t, tt.want, selected.Names())
			assert.Len(t, cfg.Apps, 3)
		})
	}
}
