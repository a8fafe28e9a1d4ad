package config

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/arthur-debert/dotty/pkg/paths"
	"github.com/arthur-debert/dotty/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// appConfig is one top-level table of the app file.
type appConfig struct {
	// Dir is the app's destination directory. DstDir is accepted as an
	// alias and wins when both are set.
	Dir         string           `koanf:"dir"`
	DstDir      string           `koanf:"dstdir"`
	SrcDir      string           `koanf:"srcdir"`
	Description string           `koanf:"description"`
	Links       []types.LinkSpec `koanf:"links"`
}

// LoadApps reads the app file at path and builds the registry. Relative
// app directories are joined onto baseDir (dstdir) or the home directory
// (srcdir).
func LoadApps(path, baseDir string) (types.Apps, error) {
	log := logging.GetLogger("config")
	log.Debug().Str("path", path).Str("baseDir", baseDir).Msg("Loading apps")

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load app config from %s", path).
			WithDetail("path", path)
	}

	return ParseApps(k.Raw(), baseDir)
}

// ParseApps builds the registry from an already parsed app file.
func ParseApps(raw map[string]interface{}, baseDir string) (types.Apps, error) {
	log := logging.GetLogger("config")

	home, err := paths.HomeDir()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to determine default srcdir")
	}

	apps := make(types.Apps, len(raw))
	for name, value := range raw {
		table, ok := value.(map[string]interface{})
		if !ok {
			return nil, errors.Newf(errors.ErrConfigParse, "app %s must be a table, got %T", name, value).
				WithDetail("app", name)
		}

		cfg, unused, err := decodeApp(table)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "invalid app %s", name).
				WithDetail("app", name)
		}
		for _, key := range unused {
			log.Warn().Str("app", name).Str("key", key).Msg("Ignoring unknown app key")
		}

		app, err := buildApp(name, cfg, baseDir, home)
		if err != nil {
			return nil, err
		}
		apps[name] = app
	}

	log.Debug().Int("apps", len(apps)).Strs("names", apps.Names()).Msg("Apps loaded")
	return apps, nil
}

func decodeApp(table map[string]interface{}) (appConfig, []string, error) {
	var cfg appConfig
	var md mapstructure.Metadata
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &cfg,
		TagName:    "koanf",
		Metadata:   &md,
		DecodeHook: linkSpecHookFunc(),
	})
	if err != nil {
		return cfg, nil, err
	}
	if err := decoder.Decode(table); err != nil {
		return cfg, nil, err
	}
	return cfg, md.Unused, nil
}

func buildApp(name string, cfg appConfig, baseDir, home string) (*types.App, error) {
	dstDir := paths.Join(baseDir, name)
	dstSetting := cfg.Dir
	if cfg.DstDir != "" {
		dstSetting = cfg.DstDir
	}
	if dstSetting != "" {
		resolved, err := paths.ResolveEnv(dstSetting)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "app %s has an invalid dstdir", name).
				WithDetail("app", name)
		}
		dstDir = paths.Join(baseDir, resolved)
	}

	srcDir := home
	if cfg.SrcDir != "" {
		resolved, err := paths.ResolveEnv(cfg.SrcDir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "app %s has an invalid srcdir", name).
				WithDetail("app", name)
		}
		srcDir = paths.Join(home, resolved)
	}

	return &types.App{
		Name:        name,
		SrcDir:      srcDir,
		DstDir:      dstDir,
		Description: cfg.Description,
		Links:       cfg.Links,
	}, nil
}

// linkSpecHookFunc decodes a one or two element list of strings into a
// LinkSpec. The list order is [target, link].
func linkSpecHookFunc() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(types.LinkSpec{}) {
			return data, nil
		}

		list, ok := data.([]interface{})
		if !ok {
			if strs, isStrs := data.([]string); isStrs {
				list = make([]interface{}, len(strs))
				for i, s := range strs {
					list[i] = s
				}
			} else {
				return nil, fmt.Errorf("link must be a list of one or two paths, got %T", data)
			}
		}

		tokens := make([]string, len(list))
		for i, v := range list {
			s, isStr := v.(string)
			if !isStr {
				return nil, fmt.Errorf("link %v: element %d must be a string, got %T", list, i, v)
			}
			if s == "" {
				return nil, fmt.Errorf("link %v: element %d is empty", list, i)
			}
			tokens[i] = s
		}

		switch len(tokens) {
		case 1:
			return types.LinkSpec{Dst: tokens[0], Src: tokens[0]}, nil
		case 2:
			return types.LinkSpec{Dst: tokens[0], Src: tokens[1]}, nil
		default:
			return nil, fmt.Errorf("link %v must have one or two elements, got %d", list, len(tokens))
		}
	}
}
