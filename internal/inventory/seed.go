package inventory

import (
	"embed"
	"encoding/json"
	"fmt"

	"churro/internal/model"
)

//go:embed seed/cars.json
var seedFS embed.FS

// LoadSeed decodes the embedded inventory seed. This is the default fixed
// source when no database is configured, mirroring a catalog that ships with
// the binary.
func LoadSeed() ([]model.Car, error) {
	data, err := seedFS.ReadFile("seed/cars.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory seed: %w", err)
	}
	var cars []model.Car
	if err := json.Unmarshal(data, &cars); err != nil {
		return nil, fmt.Errorf("failed to decode inventory seed: %w", err)
	}
	return cars, nil
}

// NewSeedStore builds a store from the embedded seed.
func NewSeedStore() (*Store, error) {
	cars, err := LoadSeed()
	if err != nil {
		return nil, err
	}
	return NewStore(cars)
}
