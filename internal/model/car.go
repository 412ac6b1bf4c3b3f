package model

import (
	"database/sql/driver"
	"encoding/json"
)

// CarCategory is the closed set of inventory categories.
type CarCategory string

const (
	CategoryEconomy  CarCategory = "economy"
	CategorySedan    CarCategory = "sedan"
	CategorySUV      CarCategory = "suv"
	CategoryLuxury   CarCategory = "luxury"
	CategorySports   CarCategory = "sports"
	CategoryMinivan  CarCategory = "minivan"
	CategoryElectric CarCategory = "electric"
	CategoryTruck    CarCategory = "truck"
)

// Transmission values.
const (
	TransmissionAutomatic = "automatic"
	TransmissionManual    = "manual"
)

// Fuel type values.
const (
	FuelGasoline = "gasoline"
	FuelHybrid   = "hybrid"
	FuelElectric = "electric"
)

// Pickup method values.
const (
	PickupDowntown = "Downtown"
	PickupAirport  = "Airport"
)

// Car represents a single rental vehicle in the inventory.
// DailyRate is in minor currency units (cents).
type Car struct {
	ID            string      `json:"id" db:"id"`
	Make          string      `json:"make" db:"make"`
	Model         string      `json:"model" db:"model"`
	Year          int         `json:"year" db:"year"`
	Category      CarCategory `json:"category" db:"category"`
	DailyRate     int         `json:"dailyRate" db:"daily_rate"`
	ImageURL      string      `json:"imageUrl" db:"image_url"`
	Features      StringList  `json:"features" db:"features"`
	Seats         int         `json:"seats" db:"seats"`
	Transmission  string      `json:"transmission" db:"transmission"`
	FuelType      string      `json:"fuelType" db:"fuel_type"`
	Available     bool        `json:"available" db:"available"`
	MileagePolicy string      `json:"mileagePolicy" db:"mileage_policy"`
	Location      string      `json:"location" db:"location"`
	PickupMethod  string      `json:"pickupMethod" db:"pickup_method"`
}

// StringList is a JSON array column ([]string stored as JSONB).
type StringList []string

// Value implements driver.Valuer interface
func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface
func (s *StringList) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), s)
	}
	return json.Unmarshal(bytes, s)
}
