package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotty/pkg/config"
	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/testutil"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStarter(t *testing.T) {
	env := testutil.NewEnv(t)

	content, err := config.GenerateStarter()
	require.NoError(t, err)
	assert.Contains(t, string(content), "# dotty app configuration.")

	var raw map[string]interface{}
	require.NoError(t, toml.Unmarshal(content, &raw))

	apps, err := config.ParseApps(raw, env.BaseDir)
	require.NoError(t, err)
	assert.Equal(t, []string{"vim", "zsh"}, apps.Names())
	assert.Len(t, apps["vim"].Links, 2)
	assert.Equal(t, ".vimrc", apps["vim"].Links[0].Src)
}

func TestWriteStarter(t *testing.T) {
	env := testutil.NewEnv(t)
	path := filepath.Join(env.Root, "fresh", "dotty.toml")

	require.NoError(t, config.WriteStarter(path))

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	expected, err := config.GenerateStarter()
	require.NoError(t, err)
	assert.Equal(t, expected, written)

	apps, err := config.LoadApps(path, env.BaseDir)
	require.NoError(t, err)
	assert.Contains(t, apps, "vim")

	t.Run("refuses to overwrite", func(t *testing.T) {
		existing := env.WriteConfig(t, "# mine\n")

		err := config.WriteStarter(existing)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))

		kept, readErr := os.ReadFile(existing)
		require.NoError(t, readErr)
		assert.Equal(t, "# mine\n", string(kept))
	})
}
