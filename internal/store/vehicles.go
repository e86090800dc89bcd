package store

import (
	"fleet_manager/internal/apperr"
	"fleet_manager/internal/models"
	"fleet_manager/internal/validation"
)

func (s *Store) ListVehicles() []models.Vehicle {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.snapshot()
}

func (s *Store) GetVehicle(id string) (models.Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vehicles.find(id)
	if !ok {
		return models.Vehicle{}, apperr.ErrNotFound
	}
	return v, nil
}

// AddVehicle does not check that DriverID names an existing driver.
func (s *Store) AddVehicle(in models.VehicleInput) (models.Vehicle, error) {
	if err := validation.Struct(in); err != nil {
		return models.Vehicle{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	v := in.ToVehicle(s.newID())
	s.vehicles.append(v)
	return v, nil
}

func (s *Store) UpdateVehicle(id string, in models.VehicleUpdateInput) (models.Vehicle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.vehicles.index(id)
	if i < 0 {
		return models.Vehicle{}, apperr.ErrNotFound
	}
	if err := validation.Struct(in); err != nil {
		return models.Vehicle{}, err
	}
	v := in.ToVehicle(id)
	s.vehicles.rows[i] = v
	return v, nil
}

func (s *Store) RemoveVehicle(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.vehicles.index(id)
	if i < 0 {
		return apperr.ErrNotFound
	}
	s.vehicles.removeAt(i)
	return nil
}

func (s *Store) VehicleByID(id string) (models.Vehicle, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vehicles.find(id)
}
