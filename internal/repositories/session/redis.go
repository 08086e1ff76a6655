package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/bactrack/internal/common/uuid"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sessionKeyPrefix         = "session:"
	profileSessionsKeyPrefix = "profile_sessions:"
)

// ErrSessionNotFound is returned when a session is not found
var ErrSessionNotFound = errors.New("session not found")

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// UUIDGenerator assigns session IDs, defaults to random UUIDs
	UUIDGenerator uuid.UUID
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	uuid   uuid.UUID
}

// NewRedis creates a new Redis-backed session repository
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

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}

	return &redisRepository{
		client: cfg.RedisClient,
		uuid:   generator,
	}, nil
}

func profileSessionsKey(username string) string {
	return profileSessionsKeyPrefix + strings.ToLower(username)
}

// CreateSession creates a new drinking session
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Username == "" {
		return nil, errors.New("username is required")
	}

	if input.StartTime.IsZero() {
		return nil, errors.New("start time is required")
	}

	session := &models.Session{
		ID:        r.uuid.NewUUID(),
		Username:  input.Username,
		MaxBAC:    input.MaxBAC,
		StartTime: input.StartTime,
		DriveTime: input.DriveTime,
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	sessionJSON, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, sessionKeyPrefix+session.ID, sessionJSON, 0)
	pipe.ZAdd(ctx, profileSessionsKey(session.Username), redis.Z{
		Score:  float64(session.StartTime.UnixNano()),
		Member: session.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &CreateSessionOutput{
		Session: session,
	}, nil
}

// GetSession retrieves a session by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessionsForProfile retrieves all sessions for a drinker ordered by start time
func (r *redisRepository) GetSessionsForProfile(ctx context.Context, input *GetSessionsForProfileInput) (*GetSessionsForProfileOutput, error) {
	if input == nil || input.Username == "" {
		return nil, errors.New("input and username cannot be empty")
	}

	sessionIDs, err := r.client.ZRange(ctx, profileSessionsKey(input.Username), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session IDs for profile: %w", err)
	}

	if len(sessionIDs) == 0 {
		return &GetSessionsForProfileOutput{
			Sessions: []*models.Session{},
		}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(sessionIDs))
	for i, id := range sessionIDs {
		cmds[i] = pipe.Get(ctx, sessionKeyPrefix+id)
	}

	// redis.Nil for individual keys is handled per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sessions: %w", err)
	}

	sessions := make([]*models.Session, 0, len(sessionIDs))
	for i, cmd := range cmds {
		sessionJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get session %s: %w", sessionIDs[i], err)
		}

		var session models.Session
		if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
			return nil, fmt.Errorf("failed to unmarshal session %s: %w", sessionIDs[i], err)
		}

		sessions = append(sessions, &session)
	}

	return &GetSessionsForProfileOutput{
		Sessions: sessions,
	}, nil
}
