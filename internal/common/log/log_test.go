package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "bactrack-test"})

	logger := WithComponent("engine")
	logger.Info().Str("path", "max_bac").Msg("recommended")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bactrack-test", entry["service"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, "max_bac", entry["path"])
	assert.Equal(t, "recommended", entry["message"])
}
