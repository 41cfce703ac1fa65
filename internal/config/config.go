// Package config loads lvsearch settings from defaults, an optional YAML file,
// LVSEARCH_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/lvsearch/tabu"
)

// EnvPrefix is prepended to environment variable names, e.g.
// LVSEARCH_SEARCH_MAX_ITERATIONS for search.max_iterations.
const EnvPrefix = "LVSEARCH"

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete lvsearch configuration
type Config struct {
	Search  SearchConfig  `mapstructure:"search"`
	Cluster ClusterConfig `mapstructure:"cluster"`
	Log     LogConfig     `mapstructure:"log"`
}

// SearchConfig controls the tabu search engine
type SearchConfig struct {
	// MaxIterations bounds the number of moves per run
	MaxIterations int `mapstructure:"max_iterations"`
	// TabuCapacity is the number of recently left states kept tabu
	TabuCapacity int `mapstructure:"tabu_capacity"`
	// UseStoppingCost enables StoppingCost
	UseStoppingCost bool `mapstructure:"use_stopping_cost"`
	// StoppingCost ends a run once the best cost is at or below it
	StoppingCost float64 `mapstructure:"stopping_cost"`
}

// ClusterConfig controls the cluster and sweep commands
type ClusterConfig struct {
	// K is the number of groups for the cluster command
	K int `mapstructure:"k"`
	// KMin and KMax bound the group counts tried by sweep (inclusive)
	KMin int `mapstructure:"k_min"`
	KMax int `mapstructure:"k_max"`
	// Output is the result format: "text" or "json"
	Output string `mapstructure:"output"`
}

// LogConfig controls diagnostic logging on stderr
type LogConfig struct {
	// Level is a zerolog level name: trace, debug, info, warn, error, disabled
	Level string `mapstructure:"level"`
	// Format is "text" (console) or "json"
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Search: SearchConfig{
			MaxIterations: 100,
			TabuCapacity:  tabu.DefaultTabuCapacity,
		},
		Cluster: ClusterConfig{
			K:      2,
			KMin:   1,
			KMax:   5,
			Output: "text",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers every key with its default so that environment
// variables and Unmarshal see the full key set. search.stopping_cost has no
// default: whether it was given at all decides if the threshold is used.
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("search.max_iterations", defaults.Search.MaxIterations)
	v.SetDefault("search.tabu_capacity", defaults.Search.TabuCapacity)
	v.SetDefault("search.use_stopping_cost", defaults.Search.UseStoppingCost)

	v.SetDefault("cluster.k", defaults.Cluster.K)
	v.SetDefault("cluster.k_min", defaults.Cluster.KMin)
	v.SetDefault("cluster.k_max", defaults.Cluster.KMax)
	v.SetDefault("cluster.output", defaults.Cluster.Output)

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
}

// Load reads the configuration into a validated Config.
// With path == "" it looks for lvsearch.yaml in the working directory and in
// $HOME/.config/lvsearch, and a missing file is not an error. An explicit
// path must exist.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("lvsearch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lvsearch")
	}

	v.SetEnvPrefix(EnvPrefix)
	// Replace dots with underscores for nested keys in env vars
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("search.stopping_cost")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	// A stopping cost from a file, the environment or a flag turns it on.
	if v.IsSet("search.stopping_cost") {
		cfg.Search.UseStoppingCost = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error
	if c.Search.MaxIterations < 0 {
		errs = append(errs, fmt.Errorf("search.max_iterations must be >= 0 (got %d)", c.Search.MaxIterations))
	}
	if c.Search.TabuCapacity < 1 {
		errs = append(errs, fmt.Errorf("search.tabu_capacity must be >= 1 (got %d)", c.Search.TabuCapacity))
	}
	if c.Search.UseStoppingCost && math.IsNaN(c.Search.StoppingCost) {
		errs = append(errs, errors.New("search.stopping_cost is NaN"))
	}
	if c.Cluster.K < 1 {
		errs = append(errs, fmt.Errorf("cluster.k must be >= 1 (got %d)", c.Cluster.K))
	}
	if c.Cluster.KMin < 1 || c.Cluster.KMax < c.Cluster.KMin {
		errs = append(errs, fmt.Errorf("cluster.k_min/k_max must satisfy 1 <= k_min <= k_max (got %d..%d)",
			c.Cluster.KMin, c.Cluster.KMax))
	}
	switch c.Cluster.Output {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("cluster.output must be text or json (got %q)", c.Cluster.Output))
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be text or json (got %q)", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}

	return nil
}

// Options converts the search settings into tabu options. onStep may be nil.
func (s SearchConfig) Options(onStep func(tabu.Step)) []tabu.Option {
	opts := []tabu.Option{
		tabu.WithTabuCapacity(s.TabuCapacity),
		tabu.WithOnStep(onStep),
	}
	if s.UseStoppingCost {
		opts = append(opts, tabu.WithStoppingCost(s.StoppingCost))
	}

	return opts
}
