package config

import (
	"strings"

	"github.com/arthur-debert/dotty/pkg/errors"
	"github.com/arthur-debert/dotty/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment variable read as a setting.
const EnvPrefix = "DOTTY_"

// Setting keys, shared by defaults.toml, environment variables and flags.
const (
	KeyBaseDir    = "base_dir"
	KeyConfigFile = "config_file"
	KeyCheckOnly  = "check_only"
	KeyFormat     = "format"
	KeyInclude    = "include"
	KeyExclude    = "exclude"
)

// Settings are the runtime options of a dotty invocation.
type Settings struct {
	BaseDir    string   `koanf:"base_dir"`
	ConfigFile string   `koanf:"config_file"`
	CheckOnly  bool     `koanf:"check_only"`
	Format     string   `koanf:"format"`
	Include    []string `koanf:"include"`
	Exclude    []string `koanf:"exclude"`
}

// LoadSettings merges defaults, environment and flags. flags holds only the
// values the user set explicitly, keyed by the Key* constants.
func LoadSettings(flags map[string]interface{}) (*Settings, error) {
	log := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Environment
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 3. Flags
	if len(flags) > 0 {
		if err := k.Load(confmap.Provider(flags, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load flags")
		}
	}

	var s Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &s, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}

	s.Include = compact(s.Include)
	s.Exclude = compact(s.Exclude)

	log.Debug().
		Str("baseDir", s.BaseDir).
		Str("configFile", s.ConfigFile).
		Bool("checkOnly", s.CheckOnly).
		Str("format", s.Format).
		Strs("include", s.Include).
		Strs("exclude", s.Exclude).
		Msg("Settings loaded")
	return &s, nil
}

// compact trims entries and drops empty ones, which a trailing comma in an
// environment variable produces.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
