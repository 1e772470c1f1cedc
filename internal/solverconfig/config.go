package solverconfig

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/katalvlaran/sokolve/solve"
)

// Config holds the bench harness's tunable defaults, loaded from an
// optional YAML file and overridable by SOKOLVE_-prefixed env vars.
type Config struct {
	Limits  LimitsConfig  `mapstructure:"limits"`
	Options OptionsConfig `mapstructure:"options"`
}

// LimitsConfig mirrors solve.Limits in a mapstructure-tagged shape.
type LimitsConfig struct {
	MaxNodes      int `mapstructure:"max_nodes"`
	MaxRAMMiB     int `mapstructure:"max_ram_mib"`
	OpenTableCap  int `mapstructure:"open_table_cap"`
	CloseTableCap int `mapstructure:"close_table_cap"`
}

// OptionsConfig mirrors solve.Options' scalar fields.
type OptionsConfig struct {
	PenaltyBoxDepth int  `mapstructure:"penalty_box_depth"`
	QuickSearch     bool `mapstructure:"quick_search"`
	OnlyPushCount   bool `mapstructure:"only_push_count"`
}

// Load reads configuration from configPath (or, if empty, from
// "./sokolve.yaml" / "./configs/sokolve.yaml" / "/etc/sokolve/sokolve.yaml"),
// falling back to defaults when no file is found, and allows
// SOKOLVE_LIMITS_MAX_NODES-style environment overrides.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("sokolve")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/sokolve")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// No config file anywhere: defaults only, not an error.
		} else if os.IsNotExist(err) {
			// configPath was set explicitly but doesn't exist.
		} else {
			return nil, fmt.Errorf("solverconfig: reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("SOKOLVE")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("solverconfig: unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// SolveLimits converts the loaded config into a solve.Limits.
func (c *Config) SolveLimits() solve.Limits {
	return solve.Limits{
		MaxNodes:      c.Limits.MaxNodes,
		MaxRAMMiB:     c.Limits.MaxRAMMiB,
		OpenTableCap:  c.Limits.OpenTableCap,
		CloseTableCap: c.Limits.CloseTableCap,
	}
}

// SolveOptions converts the loaded config into solve.Option values.
func (c *Config) SolveOptions() []solve.Option {
	return []solve.Option{
		solve.WithPenaltyBoxDepth(c.Options.PenaltyBoxDepth),
		solve.WithQuickSearch(c.Options.QuickSearch),
		solve.WithOnlyPushCount(c.Options.OnlyPushCount),
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("limits.max_nodes", 0)
	v.SetDefault("limits.max_ram_mib", 0)
	v.SetDefault("limits.open_table_cap", 4096)
	v.SetDefault("limits.close_table_cap", 0)

	v.SetDefault("options.penalty_box_depth", 2)
	v.SetDefault("options.quick_search", false)
	v.SetDefault("options.only_push_count", false)
}
