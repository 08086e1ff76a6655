package drink_log

import (
	"context"
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

func (s *RedisRepositoryTestSuite) TestAddAndGetDrinkLogs() {
	entries := []*models.DrinkLog{
		{ID: "d2", SessionID: "s1", Username: "alice", DrinkName: "Stout", StandardDrinks: 0.75, ConsumedAt: s.testNow.Add(time.Hour)},
		{ID: "d1", SessionID: "s1", Username: "alice", DrinkName: "Lager", StandardDrinks: 0.5, ConsumedAt: s.testNow},
		{ID: "d3", SessionID: "s2", Username: "bob", DrinkName: "Shot", StandardDrinks: 0.6, ConsumedAt: s.testNow},
	}
	for _, entry := range entries {
		s.Require().NoError(s.repo.AddDrinkLog(context.Background(), &AddDrinkLogInput{Entry: entry}))
	}

	output, err := s.repo.GetDrinkLogsForSession(context.Background(), &GetDrinkLogsForSessionInput{SessionID: "s1"})
	s.Require().NoError(err)
	s.Require().Len(output.Entries, 2)
	s.Equal("d1", output.Entries[0].ID)
	s.Equal("Lager", output.Entries[0].DrinkName)
	s.Equal("d2", output.Entries[1].ID)
	s.InDelta(1.25, output.TotalStandardDrinks(), 1e-9)
}

func (s *RedisRepositoryTestSuite) TestGetDrinkLogs_Empty() {
	output, err := s.repo.GetDrinkLogsForSession(context.Background(), &GetDrinkLogsForSessionInput{SessionID: "none"})
	s.Require().NoError(err)
	s.Empty(output.Entries)
	s.Zero(output.TotalStandardDrinks())
}

func (s *RedisRepositoryTestSuite) TestAddDrinkLog_Invalid() {
	s.Error(s.repo.AddDrinkLog(context.Background(), &AddDrinkLogInput{}))
	s.Error(s.repo.AddDrinkLog(context.Background(), &AddDrinkLogInput{Entry: &models.DrinkLog{SessionID: "s1", ConsumedAt: s.testNow}}))
	s.Error(s.repo.AddDrinkLog(context.Background(), &AddDrinkLogInput{Entry: &models.DrinkLog{ID: "x", ConsumedAt: s.testNow}}))
	s.Error(s.repo.AddDrinkLog(context.Background(), &AddDrinkLogInput{Entry: &models.DrinkLog{ID: "x", SessionID: "s1"}}))
}
