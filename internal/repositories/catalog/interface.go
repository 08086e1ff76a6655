package catalog

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bactrack/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/bactrack/internal/models"
)

// Repository defines the interface for drink catalog persistence
type Repository interface {
	// SaveDrink adds or replaces a catalog entry, keeping its original position
	SaveDrink(ctx context.Context, input *SaveDrinkInput) error

	// GetCatalog retrieves every drink in insertion order
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)

	// GetDrink retrieves a single drink by name
	GetDrink(ctx context.Context, input *GetDrinkInput) (*models.Drink, error)

	// DeleteDrink removes a drink from the catalog
	DeleteDrink(ctx context.Context, input *DeleteDrinkInput) error
}
