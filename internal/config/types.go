package config

import (
	"fmt"
	"time"
)

// ColorMode controls colored output.
type ColorMode string

const (
	// ColorAuto colors output only on a terminal that has not opted out.
	ColorAuto ColorMode = "auto"
	// ColorAlways forces color.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// Validate rejects unknown modes.
func (m ColorMode) Validate() error {
	switch m {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (expected auto, always or never)", string(m))
	}
}

// Config is the resolved configuration of a single run.
type Config struct {
	// SystemModulesDir holds descriptors shipped by the distribution.
	SystemModulesDir string `mapstructure:"system_modules_dir"`
	// UserModulesDir holds per-user descriptors; empty when no home directory is known.
	UserModulesDir string `mapstructure:"user_modules_dir"`
	// Color selects colored output.
	Color ColorMode `mapstructure:"color"`
	// Evaluator is the descriptor evaluator kind: "bash" or "virtual".
	Evaluator string `mapstructure:"evaluator"`
	// Shell is the interpreter the bash evaluator spawns.
	Shell string `mapstructure:"shell"`
	// EvalTimeout bounds each descriptor evaluation; zero means no limit.
	EvalTimeout time.Duration `mapstructure:"eval_timeout"`
	// Debug enables diagnostic logging.
	Debug bool `mapstructure:"debug"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// fileConfig is the on-disk layout of the config file. Pointers tell an
// omitted key apart from a zero value.
type fileConfig struct {
	SystemModulesDir *string `yaml:"system_modules_dir"`
	UserModulesDir   *string `yaml:"user_modules_dir"`
	Color            *string `yaml:"color"`
	Evaluator        *string `yaml:"evaluator"`
	Shell            *string `yaml:"shell"`
	EvalTimeout      *string `yaml:"eval_timeout"`
	Debug            *bool   `yaml:"debug"`
}

// values returns the keys present in the file.
func (f fileConfig) values() map[string]any {
	out := make(map[string]any)
	set := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	set(keySystemModulesDir, f.SystemModulesDir)
	set(keyUserModulesDir, f.UserModulesDir)
	set(keyColor, f.Color)
	set(keyEvaluator, f.Evaluator)
	set(keyShell, f.Shell)
	set(keyEvalTimeout, f.EvalTimeout)
	if f.Debug != nil {
		out[keyDebug] = *f.Debug
	}
	return out
}
