package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sutthirak/rollcall/pkg/logging"
)

func TestNewWritesStructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)

	logger.Info().Str("file", "01.2568.xlsx").Int("records", 152).Msg("Extracted month")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Extracted month", entry["message"])
	assert.Equal(t, "01.2568.xlsx", entry["file"])
	assert.Equal(t, float64(152), entry["records"])
	assert.Contains(t, entry, "time")
}

func TestNewLoggerFromConfigLevel(t *testing.T) {
	logger := logging.NewLoggerFromConfig(&logging.Config{
		Level:  "warn",
		Format: "json",
		Output: "discard",
	})

	assert.Equal(t, "warn", logger.GetLevel().String())
}

func TestNewLoggerFromConfigNil(t *testing.T) {
	logger := logging.NewLoggerFromConfig(nil)
	assert.NotEqual(t, "disabled", logger.GetLevel().String())
}

func TestDefaultIsUsable(t *testing.T) {
	require.NotNil(t, logging.Default())
	logging.Default().Debug().Msg("no panic")
}
