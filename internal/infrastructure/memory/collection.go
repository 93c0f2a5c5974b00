// Package memory implementa las colecciones del panel como estado volátil en
// memoria: no hay persistencia, todo se reinicia con el proceso. El mutex
// existe solo porque la superficie HTTP admite requests concurrentes.
package memory

import (
	"sync"

	"github.com/google/uuid"

	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
)

// Collection colección en memoria con orden de inserción estable.
type Collection[T entity.Record[T]] struct {
	mu    sync.RWMutex
	items []T
}

// NewCollection crea una colección vacía.
func NewCollection[T entity.Record[T]]() *Collection[T] {
	return &Collection[T]{}
}

// Seed agrega registros iniciales asignándoles id; pensada para la carga de
// datos de demostración al arrancar.
func (c *Collection[T]) Seed(items ...T) {
	for _, item := range items {
		c.Append(item)
	}
}

// List devuelve una copia de los registros en orden de inserción.
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Get devuelve el registro con ese id.
func (c *Collection[T]) Get(id string) (T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.GetID() == id {
			return item, nil
		}
	}
	var zero T
	return zero, domain.ErrNotFound
}

// Append asigna un id único al registro y lo agrega al final.
func (c *Collection[T]) Append(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item = item.WithID(uuid.New().String())
	c.items = append(c.items, item)
	return item
}

// Replace sustituye los campos del registro con el mismo id, en su posición.
func (c *Collection[T]) Replace(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.GetID() == item.GetID() {
			c.items[i] = item
			return nil
		}
	}
	return domain.ErrNotFound
}

// Remove elimina exactamente el registro con ese id.
func (c *Collection[T]) Remove(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.items {
		if existing.GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// Len cantidad de registros.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
