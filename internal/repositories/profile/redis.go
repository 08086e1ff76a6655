package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	profileKeyPrefix = "profile:"
)

var (
	// ErrProfileNotFound is returned when a profile is not found
	ErrProfileNotFound = errors.New("profile not found")

	// ErrProfileExists is returned when registering a username that is taken
	ErrProfileExists = errors.New("profile already exists")
)

// Config holds configuration for the Redis profile repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed profile repository
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

func profileKey(username string) string {
	return profileKeyPrefix + strings.ToLower(username)
}

func marshalProfile(p *models.Profile) ([]byte, error) {
	if p == nil {
		return nil, errors.New("profile cannot be nil")
	}
	if p.Username == "" {
		return nil, errors.New("username cannot be empty")
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile: %w", err)
	}
	return data, nil
}

// CreateProfile stores a profile only if the username is free
func (r *redisRepository) CreateProfile(ctx context.Context, input *CreateProfileInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	profileJSON, err := marshalProfile(input.Profile)
	if err != nil {
		return err
	}

	created, err := r.client.SetNX(ctx, profileKey(input.Profile.Username), profileJSON, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	if !created {
		return ErrProfileExists
	}

	return nil
}

// SaveProfile persists a profile to Redis
func (r *redisRepository) SaveProfile(ctx context.Context, input *SaveProfileInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	profileJSON, err := marshalProfile(input.Profile)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, profileKey(input.Profile.Username), profileJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

// GetProfile retrieves a profile by username from Redis
func (r *redisRepository) GetProfile(ctx context.Context, input *GetProfileInput) (*models.Profile, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	profileJSON, err := r.client.Get(ctx, profileKey(input.Username)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	var p models.Profile
	if err := json.Unmarshal([]byte(profileJSON), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}

	return &p, nil
}
