package main

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/bactrack/internal/common/clock"
	"github.com/KirkDiggler/bactrack/internal/common/uuid"
	"github.com/KirkDiggler/bactrack/internal/config"
	"github.com/KirkDiggler/bactrack/internal/random"
	"github.com/KirkDiggler/bactrack/internal/recommend"
	"github.com/KirkDiggler/bactrack/internal/repositories/catalog"
	"github.com/KirkDiggler/bactrack/internal/repositories/drink_log"
	"github.com/KirkDiggler/bactrack/internal/repositories/profile"
	"github.com/KirkDiggler/bactrack/internal/repositories/reading"
	"github.com/KirkDiggler/bactrack/internal/repositories/session"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
	"github.com/redis/go-redis/v9"
)

// connectRedis opens a client and checks the connection
func connectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}

	return client, nil
}

// newService wires the repositories, engine and tracker service on one Redis client
func newService(client *redis.Client, cfg *config.Config) (tracker.Service, error) {
	profileRepo, err := profile.NewRedis(&profile.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create profile repository: %w", err)
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session repository: %w", err)
	}

	catalogRepo, err := catalog.NewRedis(&catalog.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create catalog repository: %w", err)
	}

	readingRepo, err := reading.NewRedis(&reading.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create reading repository: %w", err)
	}

	drinkLogRepo, err := drink_log.NewRedis(&drink_log.Config{
		RedisClient: client,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create drink log repository: %w", err)
	}

	engine, err := recommend.New(&recommend.Config{
		Policy:   recommend.DrivePolicy(cfg.DrivePolicy),
		Limit:    cfg.RecommendationLimit,
		Shuffler: random.New(&random.Config{}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create recommendation engine: %w", err)
	}

	svc, err := tracker.New(&tracker.Config{
		ProfileRepo:   profileRepo,
		SessionRepo:   sessionRepo,
		CatalogRepo:   catalogRepo,
		ReadingRepo:   readingRepo,
		DrinkLogRepo:  drinkLogRepo,
		Engine:        engine,
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracker service: %w", err)
	}

	return svc, nil
}

// importCatalogFile loads a YAML catalog into the store
func importCatalogFile(ctx context.Context, svc tracker.Service, path string) (int, error) {
	drinks, err := catalog.LoadFile(path)
	if err != nil {
		return 0, err
	}

	output, err := svc.ImportCatalog(ctx, &tracker.ImportCatalogInput{Drinks: drinks})
	if err != nil {
		return 0, err
	}
	return output.Imported, nil
}
