package drink_log

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
	drinkLogKeyPrefix      = "drink_log:"
	sessionDrinksKeyPrefix = "session_drinks:"
)

// Config holds configuration for the Redis drink log repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed drink log repository
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

// AddDrinkLog records a consumed drink against its session
func (r *redisRepository) AddDrinkLog(ctx context.Context, input *AddDrinkLogInput) error {
	if input == nil || input.Entry == nil {
		return errors.New("input and entry cannot be nil")
	}

	entry := input.Entry
	if entry.ID == "" {
		return errors.New("drink log ID cannot be empty")
	}
	if entry.SessionID == "" {
		return errors.New("session ID cannot be empty")
	}
	if entry.ConsumedAt.IsZero() {
		return errors.New("consumed time cannot be empty")
	}

	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal drink log: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, drinkLogKeyPrefix+entry.ID, entryJSON, 0)
	pipe.ZAdd(ctx, sessionDrinksKeyPrefix+entry.SessionID, redis.Z{
		Score:  float64(entry.ConsumedAt.UnixNano()),
		Member: entry.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add drink log: %w", err)
	}

	return nil
}

// GetDrinkLogsForSession retrieves all drinks consumed in a session
func (r *redisRepository) GetDrinkLogsForSession(ctx context.Context, input *GetDrinkLogsForSessionInput) (*GetDrinkLogsForSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	ids, err := r.client.ZRange(ctx, sessionDrinksKeyPrefix+input.SessionID, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink log IDs for session: %w", err)
	}

	if len(ids) == 0 {
		return &GetDrinkLogsForSessionOutput{
			Entries: []*models.DrinkLog{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, drinkLogKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drink logs: %w", err)
	}

	entries := make([]*models.DrinkLog, 0, len(ids))
	for i, cmd := range cmds {
		entryJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get drink log %s: %w", ids[i], err)
		}

		var entry models.DrinkLog
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink log %s: %w", ids[i], err)
		}

		entries = append(entries, &entry)
	}

	return &GetDrinkLogsForSessionOutput{
		Entries: entries,
	}, nil
}
