package store

import (
	"fleet_manager/internal/apperr"
	"fleet_manager/internal/models"
	"fleet_manager/internal/validation"
)

func (s *Store) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders.snapshot()
}

func (s *Store) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders.find(id)
	if !ok {
		return models.Order{}, apperr.ErrNotFound
	}
	return o, nil
}

func (s *Store) AddOrder(in models.OrderInput) (models.Order, error) {
	if err := validation.Struct(in); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := in.ToOrder(s.newID())
	s.orders.append(o)
	return o, nil
}

func (s *Store) UpdateOrder(id string, in models.OrderUpdateInput) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orders.index(id)
	if i < 0 {
		return models.Order{}, apperr.ErrNotFound
	}
	if err := validation.Struct(in); err != nil {
		return models.Order{}, err
	}
	o := in.ToOrder(id)
	s.orders.rows[i] = o
	return o, nil
}

func (s *Store) RemoveOrder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orders.index(id)
	if i < 0 {
		return apperr.ErrNotFound
	}
	s.orders.removeAt(i)
	return nil
}
