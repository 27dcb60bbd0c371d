package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvclique/internal/logging"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"":      zapcore.InfoLevel,
		"debug": zapcore.DebugLevel,
		"WARN":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.ErrorIs(t, err, logging.ErrBadLogConfig)
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "info", Format: logging.FormatJSON}, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("sampled", zap.Int("nodes", 5))
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "sampled", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "lvclique", entry["logger"])
	assert.EqualValues(t, 5, entry["nodes"])
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Config{Level: "debug"}, &buf)
	require.NoError(t, err)

	log.Debug("visible")
	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logging.ErrBadLogConfig)

	_, err = logging.New(logging.Config{Level: "trace"}, &bytes.Buffer{})
	require.ErrorIs(t, err, logging.ErrBadLogConfig)
}
