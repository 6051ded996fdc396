package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carneiro-api/pkg/logger"
)

func TestNew_ProductionWritesJSONWithComponent(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "info", Service: "carneiro-api", Out: &buf})

	store := l.Component("store")
	store.Debug().Msg("no debe aparecer")
	store.Info().Int("products", 8).Msg("store listo")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "store listo", entry["message"])
	assert.Equal(t, "store", entry["component"])
	assert.Equal(t, "carneiro-api", entry["service"])
	assert.EqualValues(t, 8, entry["products"])
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.Config{Env: "production", Level: "verbose", Out: &buf})
	l.Debug().Msg("oculto")
	assert.Zero(t, buf.Len())
	l.Info().Msg("visible")
	assert.NotZero(t, buf.Len())
}
