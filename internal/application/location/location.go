// Package location administra los locales de la cadena y el local
// seleccionado. Siempre hay exactamente un local seleccionado; por defecto
// el primero de la colección. Las colecciones de entidades no se filtran
// por local: el dato es global, como en el panel original.
package location

import (
	"sync"

	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/repository"
)

// UseCase casos de uso de locales.
type UseCase struct {
	mu       sync.Mutex
	coll     repository.Collection[entity.Location]
	selected string // id; siempre miembro de la colección
}

// New crea el caso de uso seleccionando el primer local.
func New(coll repository.Collection[entity.Location]) *UseCase {
	uc := &UseCase{coll: coll}
	if locations := coll.List(); len(locations) > 0 {
		uc.selected = locations[0].GetID()
	}
	return uc
}

// List devuelve todos los locales.
func (uc *UseCase) List() []entity.Location {
	return uc.coll.List()
}

// Selected devuelve el local seleccionado.
func (uc *UseCase) Selected() (entity.Location, error) {
	uc.mu.Lock()
	id := uc.selected
	uc.mu.Unlock()
	return uc.coll.Get(id)
}

// Select marca como seleccionado un local existente. Cambiar de local no
// recarga ni filtra ninguna colección de entidades.
func (uc *UseCase) Select(id string) (entity.Location, error) {
	loc, err := uc.coll.Get(id)
	if err != nil {
		return entity.Location{}, err
	}
	uc.mu.Lock()
	uc.selected = loc.ID
	uc.mu.Unlock()
	return loc, nil
}

// Add crea un local con id nuevo, lo agrega al final y lo deja
// seleccionado. No hay control de nombres duplicados.
func (uc *UseCase) Add(nombre string) (entity.Location, error) {
	if nombre == "" {
		return entity.Location{}, domain.ErrInvalidInput
	}
	loc := uc.coll.Append(entity.Location{Nombre: nombre})
	uc.mu.Lock()
	uc.selected = loc.ID
	uc.mu.Unlock()
	return loc, nil
}
