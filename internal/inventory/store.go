package inventory

import (
	"fmt"

	"churro/internal/model"
)

// Store is the in-process car inventory. It is populated once at startup and
// never mutated afterwards, so it is safe for unbounded concurrent reads.
type Store struct {
	cars []model.Car
	byID map[string]int
}

// NewStore builds a store from the given records, preserving their order.
// Duplicate IDs are a load error, not a per-request condition.
func NewStore(cars []model.Car) (*Store, error) {
	s := &Store{
		cars: make([]model.Car, len(cars)),
		byID: make(map[string]int, len(cars)),
	}
	copy(s.cars, cars)
	for i, c := range s.cars {
		if c.ID == "" {
			return nil, fmt.Errorf("inventory record %d has empty id", i)
		}
		if _, dup := s.byID[c.ID]; dup {
			return nil, fmt.Errorf("duplicate inventory id %q", c.ID)
		}
		s.byID[c.ID] = i
	}
	return s, nil
}

// All returns every record in insertion order. The returned slice is the
// store's backing array; callers must not modify it.
func (s *Store) All() []model.Car {
	return s.cars
}

// ByID returns the record with the given id.
func (s *Store) ByID(id string) (model.Car, bool) {
	i, ok := s.byID[id]
	if !ok {
		return model.Car{}, false
	}
	return s.cars[i], true
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.cars)
}
