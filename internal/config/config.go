// Package config loads z3model settings.
//
// Values are layered, lowest precedence first: built-in defaults, the YAML
// config file, Z3MODEL_* environment variables, and explicitly set flags.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is the prefix of environment overrides. Nested keys use a
// double underscore: Z3MODEL_OPTIONS__TIMEOUT sets options.timeout.
const EnvPrefix = "Z3MODEL_"

// Output formats accepted by the output key.
const (
	OutputTable = "table"
	OutputSMT2  = "smt2"
	OutputYAML  = "yaml"
	OutputJSON  = "json"
)

// Defaults.
const (
	DefaultOutput   = OutputTable
	DefaultLogLevel = "warn"
)

// Config holds all z3model options.
type Config struct {
	// Completion asks the engine to assign constants the model leaves
	// unconstrained when evaluating.
	Completion bool   `koanf:"completion"`
	Output     string `koanf:"output"`
	// Optimize runs the input through Z3's optimizer, so minimize and
	// maximize commands are honored.
	Optimize bool `koanf:"optimize"`
	// Translate copies the model into a fresh context before reading it.
	Translate bool              `koanf:"translate"`
	LogLevel  string            `koanf:"log_level"`
	Params    map[string]string `koanf:"params"`
	Options   map[string]any    `koanf:"options"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// findConfigFile returns the explicit path or the first default file present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"z3model.yaml", "z3model.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load reads the configuration. flags may be nil; only flags the user
// changed override lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"completion": true,
		"output":     DefaultOutput,
		"optimize":   false,
		"translate":  false,
		"log_level":  DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			switch key {
			case "param", "option":
				// key=value pairs land under the params/options maps
				pairs, _ := flags.GetStringToString(f.Name)
				m := make(map[string]interface{}, len(pairs))
				for name, v := range pairs {
					m[name] = v
				}
				return key + "s", m
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	// dotted solver option names such as smt.mbqi stay whole
	cfg.Options = k.Cut("options").All()
	cfg.File = used
	cfg.Output = strings.ToLower(cfg.Output)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputTable, OutputSMT2, OutputYAML, OutputJSON:
	default:
		return fmt.Errorf("invalid output format %q (want table, smt2, yaml or json)", c.Output)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by LogLevel.
func (c *Config) Level() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", s, err)
	}
	return lvl, nil
}

// SolverOptions returns Options with textual values converted to the
// booleans, integers and floats the solver parameters expect. Values that
// came typed from YAML are kept as they are.
func (c *Config) SolverOptions() map[string]any {
	out := make(map[string]any, len(c.Options))
	for name, v := range c.Options {
		out[name] = coerce(v)
	}
	return out
}

func coerce(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
