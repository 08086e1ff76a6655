package reading

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 4, 5, 21, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestGetLatestReading() {
	readings := []*models.Reading{
		{ID: "r2", SessionID: "s1", Username: "alice", BAC: 0.06, Source: models.ReadingSourceSensor, TakenAt: s.testNow.Add(30 * time.Minute)},
		{ID: "r1", SessionID: "s1", Username: "alice", BAC: 0.03, Source: models.ReadingSourceManual, TakenAt: s.testNow},
		{ID: "r3", SessionID: "s2", Username: "bob", BAC: 0.10, Source: models.ReadingSourceManual, TakenAt: s.testNow.Add(time.Hour)},
	}
	for _, rd := range readings {
		s.Require().NoError(s.repo.AddReading(context.Background(), &AddReadingInput{Reading: rd}))
	}

	latest, err := s.repo.GetLatestReading(context.Background(), &GetLatestReadingInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Require().NotNil(latest)
	s.Equal("r2", latest.ID)
	s.Equal(0.06, latest.BAC)
	s.Equal(models.ReadingSourceSensor, latest.Source)
}

func (s *RedisRepositoryTestSuite) TestGetLatestReading_None() {
	latest, err := s.repo.GetLatestReading(context.Background(), &GetLatestReadingInput{SessionID: "empty"})
	s.Require().NoError(err)
	s.Nil(latest)
}

func (s *RedisRepositoryTestSuite) TestAddReading_Invalid() {
	err := s.repo.AddReading(context.Background(), &AddReadingInput{Reading: &models.Reading{
		ID: "r1", SessionID: "s1", BAC: math.NaN(), TakenAt: s.testNow,
	}})
	s.ErrorIs(err, models.ErrInvalidBAC)

	err = s.repo.AddReading(context.Background(), &AddReadingInput{Reading: &models.Reading{
		ID: "r1", SessionID: "s1", BAC: -0.01, TakenAt: s.testNow,
	}})
	s.ErrorIs(err, models.ErrInvalidBAC)

	s.Error(s.repo.AddReading(context.Background(), &AddReadingInput{Reading: &models.Reading{SessionID: "s1", TakenAt: s.testNow}}))
	s.Error(s.repo.AddReading(context.Background(), nil))
}
