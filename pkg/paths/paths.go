package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/dotty/pkg/errors"
)

// Environment variable names
const (
	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppDirName is the directory name for dotty-specific files under XDG dirs
	AppDirName = "dotty"

	// DefaultBaseDirName is the default dotfiles directory, relative to home
	DefaultBaseDirName = ".dotfiles"

	// ConfigFileName is the name of the app configuration file
	ConfigFileName = "dotty.toml"

	// LogFileName is the name of the log file
	LogFileName = "dotty.log"
)

// HomeDir returns the user's home directory, preferring $HOME.
func HomeDir() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "failed to determine home directory")
	}
	return home, nil
}

// ExpandHome replaces a leading "~" or "~/" with the home directory.
// "~user" forms are returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := HomeDir()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultBaseDir returns ~/.dotfiles.
func DefaultBaseDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultBaseDirName), nil
}

// Canonicalize expands "~", makes path absolute and resolves symlinks.
// The path must exist.
func Canonicalize(path string) (string, error) {
	if path == "" {
		return "", errors.New(errors.ErrInvalidInput, "empty path")
	}

	abs, err := filepath.Abs(ExpandHome(path))
	if err != nil {
		return "", errors.IO(err, path, "failed to get absolute path")
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.IO(err, abs, "failed to canonicalize path")
	}
	return resolved, nil
}

// ConfigFile returns the default config file location inside baseDir.
func ConfigFile(baseDir string) string {
	return filepath.Join(baseDir, ConfigFileName)
}

// XDGConfigFile returns $XDG_CONFIG_HOME/dotty/dotty.toml.
func XDGConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, AppDirName, ConfigFileName)
}

// StateDir returns $XDG_STATE_HOME/dotty.
func StateDir() string {
	xdg.Reload()
	return filepath.Join(xdg.StateHome, AppDirName)
}

// LogFilePath returns the path of the log file inside the state directory.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}
