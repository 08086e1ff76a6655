package catalog

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/KirkDiggler/bactrack/internal/models"
	"gopkg.in/yaml.v3"
)

// fileEntry is one drink in a catalog file. Alcohol content may be given
// directly or derived from serving volume and ABV.
type fileEntry struct {
	Name             string   `yaml:"name"`
	Type             string   `yaml:"type"`
	AlcoholContentMl *float64 `yaml:"alcohol_content_ml"`
	VolumeMl         float64  `yaml:"volume_ml"`
	ABVPercent       float64  `yaml:"abv_percent"`
	Ingredients      []string `yaml:"ingredients"`
	ImagePath        string   `yaml:"image_path"`
}

type file struct {
	Drinks []fileEntry `yaml:"drinks"`
}

// LoadFile reads a YAML catalog file
func LoadFile(path string) ([]models.Drink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes a YAML catalog and validates its entries
func Parse(r io.Reader) ([]models.Drink, error) {
	var doc file
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []models.Drink{}, nil
		}
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(doc.Drinks))
	drinks := make([]models.Drink, 0, len(doc.Drinks))
	for i, entry := range doc.Drinks {
		name := strings.TrimSpace(entry.Name)
		if name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if _, dup := seen[drinkID(name)]; dup {
			return nil, fmt.Errorf("catalog entry %q is duplicated", name)
		}
		seen[drinkID(name)] = struct{}{}

		content := models.AlcoholContentFromVolume(entry.VolumeMl, entry.ABVPercent)
		if entry.AlcoholContentMl != nil {
			content = *entry.AlcoholContentMl
		}
		if math.IsNaN(content) || math.IsInf(content, 0) || content < 0 {
			return nil, fmt.Errorf("catalog entry %q has invalid alcohol content %v", name, content)
		}

		drinks = append(drinks, models.Drink{
			Name:             name,
			AlcoholContentMl: content,
			Type:             entry.Type,
			Ingredients:      entry.Ingredients,
			ImagePath:        entry.ImagePath,
		})
	}

	return drinks, nil
}
