package config

import (
	"os"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/paths"
	"github.com/arthur-debert/dotty/pkg/types"
)

// Config is a fully loaded invocation: settings with the base directory
// canonicalized, the app file that was read and the complete registry.
type Config struct {
	Settings   Settings
	BaseDir    string
	ConfigFile string
	Apps       types.Apps
}

// Load loads settings, locates the app file and builds the registry.
// Any failure here aborts the run.
func Load(flags map[string]interface{}) (*Config, error) {
	settings, err := LoadSettings(flags)
	if err != nil {
		return nil, err
	}

	baseDir, err := paths.Canonicalize(settings.BaseDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "base directory %s is not usable", settings.BaseDir).
			WithDetail("path", settings.BaseDir)
	}

	configFile, err := FindConfigFile(settings.ConfigFile, baseDir)
	if err != nil {
		return nil, err
	}

	apps, err := LoadApps(configFile, baseDir)
	if err != nil {
		return nil, err
	}

	return &Config{
		Settings:   *settings,
		BaseDir:    baseDir,
		ConfigFile: configFile,
		Apps:       apps,
	}, nil
}

// FindConfigFile returns the app file to read. An explicit path must exist.
// Otherwise <baseDir>/dotty.toml is used, then the XDG config location.
func FindConfigFile(explicit, baseDir string) (string, error) {
	log := logging.GetLogger("config")

	if explicit != "" {
		path := paths.ExpandHome(explicit)
		if _, err := os.Stat(path); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
				WithDetail("path", path)
		}
		return path, nil
	}

	candidates := []string{paths.ConfigFile(baseDir), paths.XDGConfigFile()}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			log.Debug().Str("path", path).Msg("Using config file")
			return path, nil
		}
	}

	return "", errors.Newf(errors.ErrConfigLoad, "no config file found, looked for %s and %s", candidates[0], candidates[1]).
		WithDetail("path", candidates[0])
}

// Selected returns the apps chosen by the include and exclude settings.
// Names that match no app are logged and otherwise ignored.
func (c *Config) Selected() types.Apps {
	log := logging.GetLogger("config")
	for _, name := range append(append([]string{}, c.Settings.Include...), c.Settings.Exclude...) {
		if _, ok := c.Apps[name]; !ok {
			log.Warn().Str("app", name).Msg("Unknown app in include/exclude list")
		}
	}
	return c.Apps.Filter(c.Settings.Include, c.Settings.Exclude)
}
