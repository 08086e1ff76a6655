package recommend

import (
	"fmt"
	"testing"
	"time"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/random"
	randomMocks "github.com/KirkDiggler/bactrack/internal/random/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockShuffler *randomMocks.MockShuffler
	engine       *Engine
	catalog      []models.Drink
}

func (s *EngineTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockShuffler = randomMocks.NewMockShuffler(s.mockCtrl)

	engine, err := New(&Config{Shuffler: s.mockShuffler})
	s.Require().NoError(err)
	s.engine = engine

	s.catalog = nil
	for i := 1; i <= 5; i++ {
		s.catalog = append(s.catalog, models.Drink{Name: fmt.Sprintf("drink-%d", i), AlcoholContentMl: float64(i)})
	}
}

func (s *EngineTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func reverse(n int, swap func(i, j int)) {
	for i := 0; i < n/2; i++ {
		swap(i, n-1-i)
	}
}

func (s *EngineTestSuite) TestRecommend_ShufflesAndTruncates() {
	s.mockShuffler.EXPECT().Shuffle(5, gomock.Any()).Do(reverse)

	output, err := s.engine.Recommend(&RecommendInput{
		Profile:    testProfile(),
		Session:    testSession(nil),
		CurrentBAC: 0.01,
		Catalog:    s.catalog,
		Now:        testNow,
	})
	s.Require().NoError(err)

	s.Equal(PathMaxBAC, output.Path)
	s.Equal(5, output.Qualified)
	s.Equal([]string{"drink-5", "drink-4", "drink-3"}, names(output.Drinks))
	s.Equal("drink-1", s.catalog[0].Name, "catalog must not be reordered")
}

func (s *EngineTestSuite) TestRecommend_DriveTimePath() {
	driveIn := 2 * time.Hour
	s.mockShuffler.EXPECT().Shuffle(2, gomock.Any())

	output, err := s.engine.Recommend(&RecommendInput{
		Profile:    testProfile(),
		Session:    testSession(&driveIn),
		CurrentBAC: 0.05,
		Catalog:    []models.Drink{water, drinkA, drinkB},
		Now:        testNow,
	})
	s.Require().NoError(err)

	s.Equal(PathDriveTime, output.Path)
	s.Equal(2, output.Qualified)
	s.ElementsMatch([]string{"Water", "DrinkA"}, names(output.Drinks))
}

func (s *EngineTestSuite) TestRecommend_NoSession() {
	_, err := s.engine.Recommend(&RecommendInput{
		Profile:    testProfile(),
		CurrentBAC: 0.01,
		Catalog:    s.catalog,
		Now:        testNow,
	})
	s.ErrorIs(err, ErrNoSession)
}

func (s *EngineTestSuite) TestRecommend_Empty() {
	s.mockShuffler.EXPECT().Shuffle(0, gomock.Any())

	output, err := s.engine.Recommend(&RecommendInput{
		Profile:    testProfile(),
		Session:    testSession(nil),
		CurrentBAC: 0.5,
		Catalog:    s.catalog,
		Now:        testNow,
	})
	s.Require().NoError(err)
	s.Empty(output.Drinks)
	s.Zero(output.Qualified)
}

func (s *EngineTestSuite) TestNew_Validation() {
	_, err := New(nil)
	s.Error(err)

	_, err = New(&Config{})
	s.Error(err)

	_, err = New(&Config{Shuffler: random.New(nil), Policy: "nope"})
	s.Error(err)

	engine, err := New(&Config{Shuffler: random.New(nil), Policy: DrivePolicyLegacy, Limit: 1})
	s.Require().NoError(err)
	s.Equal(DrivePolicyLegacy, engine.Policy())
}
