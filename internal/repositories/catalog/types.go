package catalog

import "github.com/KirkDiggler/bactrack/internal/models"

// SaveDrinkInput contains parameters for saving a drink
type SaveDrinkInput struct {
	Drink *models.Drink
}

// GetCatalogInput contains parameters for retrieving the catalog
type GetCatalogInput struct {
}

// GetCatalogOutput contains the catalog in insertion order
type GetCatalogOutput struct {
	Drinks []models.Drink
}

// GetDrinkInput contains parameters for retrieving a drink
type GetDrinkInput struct {
	Name string
}

// DeleteDrinkInput contains parameters for deleting a drink
type DeleteDrinkInput struct {
	Name string
}
