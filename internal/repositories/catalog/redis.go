package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	drinkKeyPrefix = "drink:"
	catalogKey     = "catalog"
	catalogSeqKey  = "catalog:seq"
)

// ErrDrinkNotFound is returned when a drink is not in the catalog
var ErrDrinkNotFound = errors.New("drink not found")

// Config holds configuration for the Redis catalog repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed catalog repository
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

func drinkID(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SaveDrink adds a drink to the catalog or replaces an existing entry
func (r *redisRepository) SaveDrink(ctx context.Context, input *SaveDrinkInput) error {
	if input == nil || input.Drink == nil {
		return errors.New("input and drink cannot be nil")
	}

	drink := input.Drink
	id := drinkID(drink.Name)
	if id == "" {
		return errors.New("drink name cannot be empty")
	}
	if math.IsNaN(drink.AlcoholContentMl) || math.IsInf(drink.AlcoholContentMl, 0) || drink.AlcoholContentMl < 0 {
		return fmt.Errorf("drink %q has invalid alcohol content %v", drink.Name, drink.AlcoholContentMl)
	}

	drinkJSON, err := json.Marshal(drink)
	if err != nil {
		return fmt.Errorf("failed to marshal drink: %w", err)
	}

	seq, err := r.client.Incr(ctx, catalogSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate catalog position: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, drinkKeyPrefix+id, drinkJSON, 0)
	// NX keeps the position of drinks that are being replaced
	pipe.ZAddNX(ctx, catalogKey, redis.Z{
		Score:  float64(seq),
		Member: id,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save drink: %w", err)
	}

	return nil
}

// GetCatalog retrieves all drinks in the order they were first added
func (r *redisRepository) GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error) {
	ids, err := r.client.ZRange(ctx, catalogKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	if len(ids) == 0 {
		return &GetCatalogOutput{
			Drinks: []models.Drink{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, drinkKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get drinks: %w", err)
	}

	drinks := make([]models.Drink, 0, len(ids))
	for i, cmd := range cmds {
		drinkJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Drink was deleted between reading the index and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get drink %s: %w", ids[i], err)
		}

		var drink models.Drink
		if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
			return nil, fmt.Errorf("failed to unmarshal drink %s: %w", ids[i], err)
		}

		drinks = append(drinks, drink)
	}

	return &GetCatalogOutput{
		Drinks: drinks,
	}, nil
}

// GetDrink retrieves a drink by name
func (r *redisRepository) GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error) {
	if input == nil || drinkID(input.Name) == "" {
		return nil, errors.New("input and drink name cannot be empty")
	}

	drinkJSON, err := r.client.Get(ctx, drinkKeyPrefix+drinkID(input.Name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrDrinkNotFound
		}
		return nil, fmt.Errorf("failed to get drink: %w", err)
	}

	var drink models.Drink
	if err := json.Unmarshal([]byte(drinkJSON), &drink); err != nil {
		return nil, fmt.Errorf("failed to unmarshal drink: %w", err)
	}

	return &drink, nil
}

// DeleteDrink removes a drink from the catalog
func (r *redisRepository) DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error {
	if input == nil || drinkID(input.Name) == "" {
		return errors.New("input and drink name cannot be empty")
	}

	id := drinkID(input.Name)

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, drinkKeyPrefix+id)
	pipe.ZRem(ctx, catalogKey, id)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete drink: %w", err)
	}

	if del.Val() == 0 {
		return ErrDrinkNotFound
	}

	return nil
}
