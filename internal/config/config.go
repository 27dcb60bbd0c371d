// SPDX-License-Identifier: MIT

// Package config loads lvclique settings from an optional YAML file and
// LVCLIQUE_* environment variables, applies defaults and validates the
// result.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/lvclique/decode"
	"github.com/katalvlaran/lvclique/internal/logging"
	"github.com/katalvlaran/lvclique/sampler"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full tool configuration.
type Config struct {
	Graph  GraphConfig    `mapstructure:"graph" yaml:"graph"`
	Search SearchConfig   `mapstructure:"search" yaml:"search"`
	Decode DecodeConfig   `mapstructure:"decode" yaml:"decode"`
	Log    logging.Config `mapstructure:"log" yaml:"log"`
}

// GraphConfig mirrors sampler.Params.
type GraphConfig struct {
	Nodes       int     `mapstructure:"nodes" yaml:"nodes" validate:"gte=0"`
	EdgeProb    float64 `mapstructure:"edge_prob" yaml:"edge_prob" validate:"gte=0,lte=1"`
	WeightRange float64 `mapstructure:"weight_range" yaml:"weight_range" validate:"gt=0"`
	Seed        int64   `mapstructure:"seed" yaml:"seed"`
}

// SearchConfig controls the oracle. Workers > 0 (or Parallel) switches to
// the concurrent search; 0 with Parallel means GOMAXPROCS.
type SearchConfig struct {
	K        int  `mapstructure:"k" yaml:"k"`
	Parallel bool `mapstructure:"parallel" yaml:"parallel"`
	Workers  int  `mapstructure:"workers" yaml:"workers" validate:"gte=0"`
}

// DecodeConfig fixes the solver output conventions.
type DecodeConfig struct {
	BitOrder string `mapstructure:"bit_order" yaml:"bit_order" validate:"oneof=little big"`
	Mapping  string `mapstructure:"mapping" yaml:"mapping" validate:"oneof=identity complement"`
}

var validate = validator.New()

// Validate checks struct tags and reports every failing field at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		msgs := make([]string, 0, len(verrs))
		for _, e := range verrs {
			msgs = append(msgs, formatFieldError(e))
		}
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}

func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	switch e.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// SamplerParams returns the sampler input described by c.Graph.
func (c *Config) SamplerParams() sampler.Params {
	return sampler.Params{
		Nodes:       c.Graph.Nodes,
		EdgeProb:    c.Graph.EdgeProb,
		WeightRange: c.Graph.WeightRange,
		Seed:        c.Graph.Seed,
	}
}

// BitOrder converts the validated bit_order string.
func (c *Config) BitOrder() decode.BitOrder {
	if c.Decode.BitOrder == "big" {
		return decode.BigEndian
	}
	return decode.LittleEndian
}

// Mapping converts the validated mapping string.
func (c *Config) Mapping() decode.Mapping {
	if c.Decode.Mapping == "identity" {
		return decode.Identity
	}
	return decode.Complement
}
