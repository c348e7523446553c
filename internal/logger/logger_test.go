package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/agenda-vacaciones/internal/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("verbose"))
}

func TestNewWithWriter_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(logger.Config{Env: "production", Level: "info"}, &buf)

	l.Debug().Msg("hidden")
	l.Info().Str("table", "agenda").Msg("loaded")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "loaded", line["message"])
	assert.Equal(t, "agenda", line["table"])
}
