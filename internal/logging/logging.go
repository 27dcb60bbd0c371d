// SPDX-License-Identifier: MIT

// Package logging builds the zap logger used by the command-line tool.
// Library packages never construct loggers; they accept a *zap.Logger and
// default to zap.NewNop().
package logging

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadLogConfig indicates an unknown level or format.
var ErrBadLogConfig = errors.New("logging: invalid configuration")

// Formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects level and encoding.
type Config struct {
	// Level is one of debug, info, warn, error (case-insensitive).
	// Empty means info.
	Level string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	// Format is json or console. Empty means console.
	Format string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=json console"`
}

// ParseLevel maps a level name to a zapcore.Level.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("level %q: %w", s, ErrBadLogConfig)
	}
}

// New returns a logger writing to w.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var enc zapcore.Encoder
	switch cfg.Format {
	case FormatJSON:
		enc = zapcore.NewJSONEncoder(encCfg)
	case FormatConsole, "":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("format %q: %w", cfg.Format, ErrBadLogConfig)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)

	return zap.New(core).Named("lvclique"), nil
}
