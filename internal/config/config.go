// Package config loads bactrack settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for every bactrack command
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	HTTPAddr      string
	HTTPRateLimit int

	DiscordToken  string
	ApplicationID string
	GuildID       string

	LogLevel  string
	LogPretty bool

	DrivePolicy         string
	RecommendationLimit int

	CatalogFile string

	SensorDevice   string
	SensorSamples  int
	SensorInterval time.Duration
}

// Load reads settings from the given .env files (".env" when none are given)
// and the process environment. Missing .env files are ignored; variables
// already set in the environment win.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		HTTPAddr:      getEnv("HTTP_ADDR", ":8080"),
		DiscordToken:  getEnv("DISCORD_TOKEN", ""),
		ApplicationID: getEnv("APPLICATION_ID", ""),
		GuildID:       getEnv("GUILD_ID", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		DrivePolicy:   getEnv("DRIVE_POLICY", "sober"),
		CatalogFile:   getEnv("CATALOG_FILE", ""),
		SensorDevice:  getEnv("SENSOR_DEVICE", ""),
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.HTTPRateLimit, err = getInt("HTTP_RATE_LIMIT", 60); err != nil {
		return nil, err
	}
	if cfg.RecommendationLimit, err = getInt("RECOMMENDATION_LIMIT", 3); err != nil {
		return nil, err
	}
	if cfg.SensorSamples, err = getInt("SENSOR_SAMPLES", 50); err != nil {
		return nil, err
	}
	if cfg.LogPretty, err = getBool("LOG_PRETTY", false); err != nil {
		return nil, err
	}
	if cfg.SensorInterval, err = getDuration("SENSOR_INTERVAL", 100*time.Millisecond); err != nil {
		return nil, err
	}

	if cfg.RecommendationLimit <= 0 {
		return nil, fmt.Errorf("RECOMMENDATION_LIMIT must be positive, got %d", cfg.RecommendationLimit)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
