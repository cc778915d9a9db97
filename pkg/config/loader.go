package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/arthur-debert/barrel/pkg/errors"
	"github.com/arthur-debert/barrel/pkg/logging"
	"github.com/arthur-debert/barrel/pkg/matchers"
	"github.com/arthur-debert/barrel/pkg/paths"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// ProjectFileName is looked up in the working directory when no
	// explicit config file is given.
	ProjectFileName = ".barrel.toml"

	// EnvPrefix marks environment variables read as configuration.
	// A double underscore selects a nested key:
	// BARREL_EXTENSIONS__MODULE=js sets extensions.module.
	EnvPrefix = "BARREL_"

	// EnvFileName is read from the working directory when present.
	EnvFileName = ".env"
)

// Options is the decoded configuration before validation.
type Options struct {
	Dir         string           `koanf:"dir" validate:"required"`
	Out         string           `koanf:"out" validate:"required"`
	IncludeGlob []string         `koanf:"include_glob" validate:"min=1,dive,required"`
	IgnoreGlob  []string         `koanf:"ignore_glob" validate:"dive,required"`
	IncludeBin  bool             `koanf:"include_bin"`
	TypesOnly   bool             `koanf:"types_only"`
	IsModule    bool             `koanf:"is_module"`
	DirSkip     []string         `koanf:"dir_skip" validate:"dive,required"`
	Extensions  ExtensionOptions `koanf:"extensions"`
}

// ExtensionOptions are stored without a leading dot.
type ExtensionOptions struct {
	Module       string `koanf:"module" validate:"required,excludesall=./"`
	Component    string `koanf:"component" validate:"required,excludesall=./,nefield=Module"`
	ModuleSuffix string `koanf:"module_suffix"`
}

// LoadOptions selects the sources Load reads.
type LoadOptions struct {
	// WorkDir is where the project file and .env are looked up.
	// Defaults to the process working directory.
	WorkDir string
	// ConfigFile is an explicit project file; it must exist when set.
	ConfigFile string
	// Overrides are applied last, keyed like the TOML file
	// (e.g. "dir", "include_glob"). The CLI passes changed flags here.
	Overrides map[string]interface{}
}

// Load builds Options from, lowest precedence first: the embedded
// defaults, the project file, .env, the environment, and Overrides.
func Load(opts LoadOptions) (*Options, error) {
	logger := logging.GetLogger("config.loader")

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrConfig, "failed to determine working directory")
		}
		workDir = wd
	}

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load defaults")
	}

	// 2. Project file
	projectFile, err := findProjectFile(workDir, opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if projectFile != "" {
		if err := k.Load(file.Provider(projectFile), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load config from %s", projectFile).
				WithPath(projectFile)
		}
		logger.Debug().Str("path", projectFile).Msg("Loaded project config")
	}

	// 3. .env file, then the real environment on top of it
	envFile := filepath.Join(workDir, EnvFileName)
	if _, err := os.Stat(envFile); err == nil {
		values, err := godotenv.Read(envFile)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to read %s", envFile).WithPath(envFile)
		}
		if err := k.Load(confmap.Provider(envValuesToKeys(values), "."), nil); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfig, "failed to load %s", envFile).WithPath(envFile)
		}
		logger.Debug().Str("path", envFile).Msg("Loaded .env values")
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to load environment variables")
	}

	// 4. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfig, "failed to apply overrides")
		}
	}

	var cfg Options
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				patternListHook(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfig, "failed to decode configuration")
	}

	cfg.Extensions.Module = strings.TrimPrefix(cfg.Extensions.Module, ".")
	cfg.Extensions.Component = strings.TrimPrefix(cfg.Extensions.Component, ".")

	return &cfg, nil
}

// patternListHook decodes a comma-separated string, as environment
// variables carry it, into a list without splitting {a,b} alternations.
func patternListHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to.Kind() != reflect.Slice {
			return data, nil
		}
		patterns := matchers.SplitPatterns(reflect.ValueOf(data).String())
		if patterns == nil {
			return []string{}, nil
		}
		return patterns, nil
	}
}

func findProjectFile(workDir, explicit string) (string, error) {
	if explicit != "" {
		explicit, err := paths.Normalize(workDir, explicit)
		if err != nil {
			return "", err
		}
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.Wrapf(err, errors.ErrConfig, "config file %s not found", explicit).
				WithPath(explicit)
		}
		return explicit, nil
	}

	candidate := filepath.Join(workDir, ProjectFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate, nil
	}
	return "", nil
}

// envKey maps BARREL_INCLUDE_GLOB to include_glob and
// BARREL_EXTENSIONS__MODULE to extensions.module.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(key, "__", ".")
}

func envValuesToKeys(values map[string]string) map[string]interface{} {
	out := make(map[string]interface{})
	for name, value := range values {
		if !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		out[envKey(name)] = value
	}
	return out
}
