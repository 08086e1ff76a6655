package catalog

import (
	"context"
	"testing"

	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) save(drinks ...models.Drink) {
	for i := range drinks {
		err := s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: &drinks[i]})
		s.Require().NoError(err)
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCatalog_KeepsOrder() {
	s.save(
		models.Drink{Name: "Pilsner", AlcoholContentMl: 17.75, Type: "beer", Ingredients: []string{"barley", "hops"}},
		models.Drink{Name: "Margarita", AlcoholContentMl: 24, Type: "cocktail", ImagePath: "img/margarita.png"},
		models.Drink{Name: "Soda", AlcoholContentMl: 0, Type: "soft"},
	)

	output, err := s.repo.GetCatalog(context.Background(), &GetCatalogInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 3)

	s.Equal("Pilsner", output.Drinks[0].Name)
	s.Equal([]string{"barley", "hops"}, output.Drinks[0].Ingredients)
	s.Equal("Margarita", output.Drinks[1].Name)
	s.Equal("img/margarita.png", output.Drinks[1].ImagePath)
	s.Equal("Soda", output.Drinks[2].Name)
}

func (s *RedisRepositoryTestSuite) TestSaveDrink_ReplaceKeepsPosition() {
	s.save(
		models.Drink{Name: "Pilsner", AlcoholContentMl: 17.75},
		models.Drink{Name: "Stout", AlcoholContentMl: 20},
		models.Drink{Name: "pilsner", AlcoholContentMl: 15},
	)

	output, err := s.repo.GetCatalog(context.Background(), &GetCatalogInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Drinks, 2)
	s.Equal(15.0, output.Drinks[0].AlcoholContentMl)
	s.Equal("Stout", output.Drinks[1].Name)
}

func (s *RedisRepositoryTestSuite) TestGetDrinkAndDelete() {
	s.save(models.Drink{Name: "Cider", AlcoholContentMl: 22})

	drink, err := s.repo.GetDrink(context.Background(), &GetDrinkInput{Name: " cider "})
	s.Require().NoError(err)
	s.Equal("Cider", drink.Name)

	s.Require().NoError(s.repo.DeleteDrink(context.Background(), &DeleteDrinkInput{Name: "Cider"}))

	_, err = s.repo.GetDrink(context.Background(), &GetDrinkInput{Name: "Cider"})
	s.Equal(ErrDrinkNotFound, err)

	err = s.repo.DeleteDrink(context.Background(), &DeleteDrinkInput{Name: "Cider"})
	s.Equal(ErrDrinkNotFound, err)

	output, err := s.repo.GetCatalog(context.Background(), &GetCatalogInput{})
	s.Require().NoError(err)
	s.Empty(output.Drinks)
}

func (s *RedisRepositoryTestSuite) TestSaveDrink_Invalid() {
	s.Error(s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: &models.Drink{Name: " "}}))
	s.Error(s.repo.SaveDrink(context.Background(), &SaveDrinkInput{Drink: &models.Drink{Name: "Bad", AlcoholContentMl: -1}}))
	s.Error(s.repo.SaveDrink(context.Background(), nil))
}
