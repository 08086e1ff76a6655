package reading

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	readingKeyPrefix         = "reading:"
	sessionReadingsKeyPrefix = "session_readings:"
)

// Config holds configuration for the Redis reading repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed reading repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// AddReading stores a reading and indexes it by time within its session
func (r *redisRepository) AddReading(ctx context.Context, input *AddReadingInput) error {
	if input == nil || input.Reading == nil {
		return errors.New("input and reading cannot be nil")
	}

	rd := input.Reading
	if rd.ID == "" {
		return errors.New("reading ID cannot be empty")
	}
	if rd.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if rd.TakenAt.IsZero() {
		return errors.New("reading time cannot be empty")
	}
	if err := models.ValidateBAC(rd.BAC); err != nil {
		return err
	}

	readingJSON, err := json.Marshal(rd)
	if err != nil {
		return fmt.Errorf("failed to marshal reading: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, readingKeyPrefix+rd.ID, readingJSON, 0)
	pipe.ZAdd(ctx, sessionReadingsKeyPrefix+rd.SessionID, redis.Z{
		Score:  float64(rd.TakenAt.UnixNano()),
		Member: rd.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add reading: %w", err)
	}

	return nil
}

// GetLatestReading returns the most recent reading in a session
func (r *redisRepository) GetLatestReading(ctx context.Context, input *GetLatestReadingInput) (*models.Reading, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	ids, err := r.client.ZRevRange(ctx, sessionReadingsKeyPrefix+input.SessionID, 0, 0).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get latest reading ID: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	readingJSON, err := r.client.Get(ctx, readingKeyPrefix+ids[0]).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get reading: %w", err)
	}

	var rd models.Reading
	if err := json.Unmarshal([]byte(readingJSON), &rd); err != nil {
		return nil, fmt.Errorf("failed to unmarshal reading: %w", err)
	}

	return &rd, nil
}
