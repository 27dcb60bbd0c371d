// SPDX-License-Identifier: MIT
// Package: lvclique/internal/config
//
// loader.go - viper wiring: file, environment, defaults.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "LVCLIQUE"

// Defaults reproduce the classic 5-node fixture.
const (
	DefaultNodes       = 5
	DefaultEdgeProb    = 0.8
	DefaultWeightRange = 10.0
	DefaultSeed        = 100
	DefaultK           = 5
	DefaultBitOrder    = "little"
	DefaultMapping     = "complement"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
)

// newViper returns a viper instance with YAML type, the LVCLIQUE_ env
// prefix and "." → "_" key replacement, so graph.edge_prob resolves to
// LVCLIQUE_GRAPH_EDGE_PROB.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)
	return v
}

// setDefaults registers every key. AutomaticEnv only consults keys viper
// already knows, so this also makes each field overridable from the
// environment.
func setDefaults(v *viper.Viper) {
	v.SetDefault("graph.nodes", DefaultNodes)
	v.SetDefault("graph.edge_prob", DefaultEdgeProb)
	v.SetDefault("graph.weight_range", DefaultWeightRange)
	v.SetDefault("graph.seed", DefaultSeed)
	v.SetDefault("search.k", DefaultK)
	v.SetDefault("search.parallel", false)
	v.SetDefault("search.workers", 0)
	v.SetDefault("decode.bit_order", DefaultBitOrder)
	v.SetDefault("decode.mapping", DefaultMapping)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
}

// Load reads configPath when non-empty, merges LVCLIQUE_* overrides over
// the defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
		}
	}

	return unmarshalAndValidate(v)
}

// Default returns the validated defaults without consulting the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	cfg, err := unmarshalAndValidate(v)
	if err != nil {
		panic(fmt.Sprintf("config: defaults do not validate: %v", err))
	}
	return cfg
}

func unmarshalAndValidate(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
