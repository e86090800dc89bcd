package store

import (
	"fleet_manager/internal/apperr"
	"fleet_manager/internal/models"
	"fleet_manager/internal/validation"
)

func (s *Store) ListDrivers() []models.Driver {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.snapshot()
}

func (s *Store) GetDriver(id string) (models.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.drivers.find(id)
	if !ok {
		return models.Driver{}, apperr.ErrNotFound
	}
	return d, nil
}

func (s *Store) AddDriver(in models.DriverInput) (models.Driver, error) {
	if err := validation.Struct(in); err != nil {
		return models.Driver{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d := in.ToDriver(s.newID())
	s.drivers.append(d)
	return d, nil
}

// UpdateDriver replaces the stored driver with the input; fields missing
// from the input are dropped rather than merged.
func (s *Store) UpdateDriver(id string, in models.DriverUpdateInput) (models.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.drivers.index(id)
	if i < 0 {
		return models.Driver{}, apperr.ErrNotFound
	}
	if err := validation.Struct(in); err != nil {
		return models.Driver{}, err
	}
	d := in.ToDriver(id)
	s.drivers.rows[i] = d
	return d, nil
}

// RemoveDriver deletes the driver and unassigns it from every vehicle that
// referenced it. Orders keep their driver reference.
func (s *Store) RemoveDriver(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.drivers.index(id)
	if i < 0 {
		return apperr.ErrNotFound
	}
	s.drivers.removeAt(i)

	for j, v := range s.vehicles.rows {
		if v.DriverID != nil && *v.DriverID == id {
			s.vehicles.rows[j].DriverID = nil
		}
	}
	return nil
}

// DriverByID is a read-only lookup used when resolving references.
func (s *Store) DriverByID(id string) (models.Driver, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.drivers.find(id)
}
