package models

import "math"

// StandardDrinkMl is the volume of pure alcohol counted as one standard drink
const StandardDrinkMl = 30.0

// Drink is a catalog entry describing one serving of a beverage
type Drink struct {
	// Name is the display label, unique within a catalog
	Name string `json:"name"`

	// AlcoholContentMl is the volume of pure alcohol in one serving
	AlcoholContentMl float64 `json:"alcohol_content"`

	// Type is a free-form category such as "beer" or "cocktail"
	Type string `json:"type"`

	// Ingredients lists what goes into the drink
	Ingredients []string `json:"ingredients"`

	// ImagePath points at an image for display
	ImagePath string `json:"image_path"`
}

// StandardDrinks returns how many standard drinks one serving contains
func (d Drink) StandardDrinks() float64 {
	return d.AlcoholContentMl / StandardDrinkMl
}

// AlcoholContentFromVolume derives pure alcohol content from a serving volume
// and its alcohol-by-volume percentage, rounded to two decimals.
func AlcoholContentFromVolume(volumeMl, abvPercent float64) float64 {
	return math.Round(volumeMl*abvPercent/100*100) / 100
}
