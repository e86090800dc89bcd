// Package store holds the in-memory collections. A Store is the application
// context: it owns one table per entity type and serializes every operation
// through a single mutex, so mutations spanning two tables are atomic.
package store

import (
	"sync"

	"github.com/google/uuid"

	"fleet_manager/internal/models"
)

type entity interface {
	GetID() string
}

// table is an insertion-ordered sequence of one entity type. It does no
// locking of its own.
type table[T entity] struct {
	rows []T
}

func (t *table[T]) index(id string) int {
	for i, row := range t.rows {
		if row.GetID() == id {
			return i
		}
	}
	return -1
}

func (t *table[T]) find(id string) (T, bool) {
	if i := t.index(id); i >= 0 {
		return t.rows[i], true
	}
	var zero T
	return zero, false
}

func (t *table[T]) snapshot() []T {
	out := make([]T, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t *table[T]) append(row T) {
	t.rows = append(t.rows, row)
}

func (t *table[T]) removeAt(i int) {
	t.rows = append(t.rows[:i], t.rows[i+1:]...)
}

type Store struct {
	mu          sync.RWMutex
	drivers     table[models.Driver]
	vehicles    table[models.Vehicle]
	orders      table[models.Order]
	credentials table[models.Credential]

	newID func() string
}

// New returns an empty store.
func New() *Store {
	return &Store{newID: uuid.NewString}
}
