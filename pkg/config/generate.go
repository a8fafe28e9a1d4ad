package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/pelletier/go-toml/v2"
)

const starterHeader = `# dotty app configuration.
#
# Each table is an app whose files live in <base_dir>/<name> (override with
# dir = "..."). Links are [target, link] pairs: target is relative to the
# app directory, link is relative to srcdir (your home directory unless set).
# A one-element list uses the same name for both. Components may be $VAR,
# ${VAR}, a leading ~, or {{app}} to point into another app's directory.

`

type starterApp struct {
	Description string     `toml:"description"`
	Links       [][]string `toml:"links"`
}

// GenerateStarter returns the content of a starter app file.
func GenerateStarter() ([]byte, error) {
	apps := map[string]starterApp{
		"vim": {
			Description: "Vim editor",
			Links:       [][]string{{"vimrc", ".vimrc"}, {"vim", ".vim"}},
		},
		"zsh": {
			Description: "Z shell",
			Links:       [][]string{{"zshrc", ".zshrc"}},
		},
	}

	var buf bytes.Buffer
	buf.WriteString(starterHeader)
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(apps); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode starter config")
	}
	return buf.Bytes(), nil
}

// WriteStarter writes a starter app file to path, creating its directory.
// An existing file is never overwritten.
func WriteStarter(path string) error {
	log := logging.GetLogger("config")

	if _, err := os.Lstat(path); err == nil {
		return errors.Newf(errors.ErrAlreadyExists, "%s already exists", path).
			WithDetail("path", path)
	}

	content, err := GenerateStarter()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.IO(err, filepath.Dir(path), "failed to create config directory")
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return errors.IO(err, path, "failed to create config file")
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(content); err != nil {
		return errors.IO(err, path, "failed to write config file")
	}

	log.Info().Str("path", path).Msg("Wrote starter config")
	return nil
}
