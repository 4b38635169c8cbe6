// Package config resolves the configuration of a run from built-in
// defaults, the YAML config file, SWITCH_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"nuros-switch/internal/descriptor"
)

const (
	// DefaultSystemModulesDir is where distribution descriptors live.
	DefaultSystemModulesDir = "/usr/share/switch/modules"
	// UserModulesSubdir is the user module directory relative to $HOME.
	UserModulesSubdir = ".local/share/switch/modules"
	// DefaultConfigDir is the system configuration directory.
	DefaultConfigDir = "/etc/switch"
	// DefaultConfigFile is read when no --config is given. It may be absent.
	DefaultConfigFile = DefaultConfigDir + "/switch.yaml"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "SWITCH"
)

const (
	keySystemModulesDir = "system_modules_dir"
	keyUserModulesDir   = "user_modules_dir"
	keyColor            = "color"
	keyEvaluator        = "evaluator"
	keyShell            = "shell"
	keyEvalTimeout      = "eval_timeout"
	keyDebug            = "debug"
)

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// ConfigFile is an explicit config file. It must exist when set.
	ConfigFile string
	// Flags are bound by key name ("debug", "evaluator", ...). Only flags
	// the user actually set override other sources.
	Flags *pflag.FlagSet
	// Home overrides home directory detection.
	Home string
}

// Load resolves the configuration.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault(keySystemModulesDir, DefaultSystemModulesDir)
	v.SetDefault(keyUserModulesDir, defaultUserModulesDir(opts.Home))
	v.SetDefault(keyColor, string(ColorAuto))
	v.SetDefault(keyEvaluator, string(descriptor.KindBash))
	v.SetDefault(keyShell, descriptor.DefaultShell)
	v.SetDefault(keyEvalTimeout, "0s")
	v.SetDefault(keyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	file, err := readFile(opts.ConfigFile)
	if err != nil {
		return nil, err
	}
	if file.path != "" {
		if err := v.MergeConfigMap(file.values); err != nil {
			return nil, fmt.Errorf("failed to merge %s: %w", file.path, err)
		}
	}

	if opts.Flags != nil {
		for _, key := range []string{keyDebug, keyEvaluator, keyColor} {
			if f := opts.Flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.File = file.path

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values that have a closed set of options.
func (c *Config) Validate() error {
	if err := c.Color.Validate(); err != nil {
		return err
	}
	switch descriptor.Kind(c.Evaluator) {
	case descriptor.KindBash, descriptor.KindVirtual:
	default:
		return fmt.Errorf("invalid evaluator %q (expected bash or virtual)", c.Evaluator)
	}
	if c.EvalTimeout < 0 {
		return fmt.Errorf("invalid eval_timeout %s: must not be negative", c.EvalTimeout)
	}
	return nil
}

type loadedFile struct {
	path   string
	values map[string]any
}

// readFile decodes the config file. The default file may be missing; an
// explicitly requested one may not. Unknown keys are rejected so typos do
// not go unnoticed.
func readFile(explicit string) (loadedFile, error) {
	path := explicit
	if path == "" {
		path = DefaultConfigFile
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if explicit == "" && errors.Is(err, os.ErrNotExist) {
			return loadedFile{}, nil
		}
		return loadedFile{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return loadedFile{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return loadedFile{path: path, values: fc.values()}, nil
}

// defaultUserModulesDir returns $HOME/.local/share/switch/modules, falling
// back to the password database when HOME is unset.
func defaultUserModulesDir(home string) string {
	if home == "" {
		home = homeDir()
	}
	if home == "" {
		return ""
	}
	return filepath.Join(home, UserModulesSubdir)
}

func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}
