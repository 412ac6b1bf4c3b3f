package service

import (
	"testing"

	"churro/internal/inventory"
	"churro/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func testCars() []model.Car {
	return []model.Car{
		{
			ID: "1", Make: "Tesla", Model: "Model S", Year: 2024,
			Category: model.CategoryElectric, DailyRate: 18900, Seats: 5,
			Transmission: "automatic", FuelType: "electric", Available: true,
			Features:      []string{"Autopilot", "Premium Audio", "Panoramic Roof", "Navigation"},
			MileagePolicy: "Unlimited", Location: "San Francisco Downtown", PickupMethod: "Downtown",
		},
		{
			ID: "2", Make: "Toyota", Model: "Corolla", Year: 2023,
			Category: model.CategoryEconomy, DailyRate: 6500, Seats: 5,
			Transmission: "automatic", FuelType: "gasoline", Available: true,
			Features:      []string{"Bluetooth", "Backup Camera"},
			MileagePolicy: "300 mi/day", Location: "Oakland Airport", PickupMethod: "Airport",
		},
		{
			ID: "3", Make: "Ford", Model: "Explorer", Year: 2024,
			Category: model.CategorySUV, DailyRate: 9800, Seats: 7,
			Transmission: "automatic", FuelType: "gasoline", Available: true,
			Features:      []string{"Third Row Seats", "Backup Camera", "Tow Hitch"},
			MileagePolicy: "Unlimited", Location: "San Jose Downtown", PickupMethod: "Downtown",
		},
		{
			ID: "4", Make: "Lamborghini", Model: "Urus", Year: 2024,
			Category: model.CategoryLuxury, DailyRate: 45000, Seats: 5,
			Transmission: "automatic", FuelType: "gasoline", Available: false,
			Features:      []string{"Premium Audio", "Massage Seats"},
			MileagePolicy: "150 mi/day", Location: "San Francisco Downtown", PickupMethod: "Downtown",
		},
		{
			ID: "5", Make: "BMW", Model: "M4", Year: 2023,
			Category: model.CategorySports, DailyRate: 21000, Seats: 4,
			Transmission: "manual", FuelType: "gasoline", Available: true,
			Features:      []string{"Harman Kardon Audio", "Heated Seats"},
			MileagePolicy: "200 mi/day", Location: "Oakland Airport", PickupMethod: "Airport",
		},
	}
}

func newTestStore(t *testing.T) *inventory.Store {
	t.Helper()
	store, err := inventory.NewStore(testCars())
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}
	return store
}

func carIDs(cars []model.Car) []string {
	ids := make([]string, len(cars))
	for i, c := range cars {
		ids[i] = c.ID
	}
	return ids
}

func sameIDs(got []model.Car, want []string) bool {
	ids := carIDs(got)
	if len(ids) != len(want) {
		return false
	}
	for i := range ids {
		if ids[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSearch(t *testing.T) {
	svc := NewSearchService(newTestStore(t))

	tests := []struct {
		name     string
		criteria model.SearchCriteria
		want     []string
	}{
		{
			name:     "empty criteria matches everything in store order",
			criteria: model.SearchCriteria{},
			want:     []string{"1", "2", "3", "4", "5"},
		},
		{
			name:     "category is exact",
			criteria: model.SearchCriteria{Category: strPtr("suv")},
			want:     []string{"3"},
		},
		{
			name:     "category is case sensitive",
			criteria: model.SearchCriteria{Category: strPtr("SUV")},
			want:     []string{},
		},
		{
			name:     "make is a case-insensitive substring",
			criteria: model.SearchCriteria{Make: strPtr("tesla")},
			want:     []string{"1"},
		},
		{
			name:     "model substring",
			criteria: model.SearchCriteria{Model: strPtr("model")},
			want:     []string{"1"},
		},
		{
			name:     "location substring",
			criteria: model.SearchCriteria{Location: strPtr("san francisco")},
			want:     []string{"1", "4"},
		},
		{
			name:     "max daily rate is inclusive",
			criteria: model.SearchCriteria{MaxDailyRate: intPtr(9800)},
			want:     []string{"2", "3"},
		},
		{
			name:     "min daily rate",
			criteria: model.SearchCriteria{MinDailyRate: intPtr(20000)},
			want:     []string{"4", "5"},
		},
		{
			name:     "min seats",
			criteria: model.SearchCriteria{MinSeats: intPtr(6)},
			want:     []string{"3"},
		},
		{
			name:     "transmission exact",
			criteria: model.SearchCriteria{Transmission: strPtr("manual")},
			want:     []string{"5"},
		},
		{
			name:     "fuel type exact",
			criteria: model.SearchCriteria{FuelType: strPtr("electric")},
			want:     []string{"1"},
		},
		{
			name:     "mileage policy substring",
			criteria: model.SearchCriteria{MileagePolicy: strPtr("unlimited")},
			want:     []string{"1", "3"},
		},
		{
			name:     "pickup method exact",
			criteria: model.SearchCriteria{PickupMethod: strPtr("Airport")},
			want:     []string{"2", "5"},
		},
		{
			name:     "features match any with aliases",
			criteria: model.SearchCriteria{Features: []string{"gps", "towing"}},
			want:     []string{"1", "3"},
		},
		{
			name:     "available filter",
			criteria: model.SearchCriteria{Available: boolPtr(false)},
			want:     []string{"4"},
		},
		{
			name: "criteria combine with AND",
			criteria: model.SearchCriteria{
				FuelType:     strPtr("gasoline"),
				MaxDailyRate: intPtr(13500),
				MinSeats:     intPtr(5),
			},
			want: []string{"2", "3"},
		},
		{
			name:     "no matches yields empty slice",
			criteria: model.SearchCriteria{Make: strPtr("Bugatti")},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.criteria)
			if !sameIDs(got, tt.want) {
				t.Errorf("Search() ids = %v, want %v", carIDs(got), tt.want)
			}
		})
	}
}

func TestSearchRateBoundaryAmongSimilarCars(t *testing.T) {
	store, err := inventory.NewStore([]model.Car{
		{ID: "a", Make: "Kia", Model: "Sorento", Category: model.CategorySUV,
			DailyRate: 13000, Seats: 5, Available: true},
		{ID: "b", Make: "Mazda", Model: "CX-90", Category: model.CategorySUV,
			DailyRate: 14000, Seats: 5, Available: true},
	})
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	got := NewSearchService(store).Search(model.SearchCriteria{
		Category:     strPtr("suv"),
		MaxDailyRate: intPtr(13500),
		MinSeats:     intPtr(5),
	})
	if !sameIDs(got, []string{"a"}) {
		t.Errorf("Search() ids = %v, want only the cheaper SUV", carIDs(got))
	}
}

func TestSearchAvailable(t *testing.T) {
	svc := NewSearchService(newTestStore(t))

	// A request for unavailable cars is overridden.
	got := svc.SearchAvailable(model.SearchCriteria{Available: boolPtr(false)})
	if !sameIDs(got, []string{"1", "2", "3", "5"}) {
		t.Errorf("SearchAvailable() ids = %v, want available cars only", carIDs(got))
	}

	// Luxury category only holds an unavailable car.
	got = svc.SearchAvailable(model.SearchCriteria{Category: strPtr("luxury")})
	if len(got) != 0 {
		t.Errorf("SearchAvailable(luxury) ids = %v, want none", carIDs(got))
	}
}
