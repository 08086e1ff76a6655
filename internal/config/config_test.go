package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "sober", cfg.DrivePolicy)
	assert.Equal(t, 3, cfg.RecommendationLimit)
	assert.Equal(t, 50, cfg.SensorSamples)
	assert.Equal(t, 100*time.Millisecond, cfg.SensorInterval)
	assert.False(t, cfg.LogPretty)
}

func TestLoad_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(envFile, []byte("REDIS_ADDR=redis:6379\nDRIVE_POLICY=legacy\nRECOMMENDATION_LIMIT=5\n"), 0o600))

	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SENSOR_INTERVAL", "250ms")
	t.Setenv("LOG_PRETTY", "true")
	t.Cleanup(func() {
		os.Unsetenv("REDIS_ADDR")
		os.Unsetenv("DRIVE_POLICY")
		os.Unsetenv("RECOMMENDATION_LIMIT")
	})

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, "legacy", cfg.DrivePolicy)
	assert.Equal(t, 5, cfg.RecommendationLimit)
	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, 250*time.Millisecond, cfg.SensorInterval)
	assert.True(t, cfg.LogPretty)
}

func TestLoad_InvalidValues(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.env")

	t.Setenv("RECOMMENDATION_LIMIT", "many")
	_, err := Load(missing)
	assert.Error(t, err)

	t.Setenv("RECOMMENDATION_LIMIT", "0")
	_, err = Load(missing)
	assert.Error(t, err)

	t.Setenv("RECOMMENDATION_LIMIT", "3")
	t.Setenv("SENSOR_INTERVAL", "soon")
	_, err = Load(missing)
	assert.Error(t, err)
}
