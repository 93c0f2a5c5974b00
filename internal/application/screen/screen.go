// Package screen implementa la máquina de estados de las pantallas de
// entidad del panel: Browse (tabla), Detail (vista de solo lectura) y Edit
// (alta o modificación sobre un borrador). Una única máquina parametrizada
// por esquema sirve a las ocho pantallas; cada instancia es de un solo
// actor, igual que el modal que representa.
package screen

import (
	"sort"

	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/repository"
	"github.com/arstock/arstock-api/internal/domain/schema"
)

// Mode modo de interacción de la pantalla.
type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeDetail Mode = "detail"
	ModeEdit   Mode = "edit"
)

// Screen pantalla de una entidad sobre su colección y su esquema.
type Screen[T entity.Record[T]] struct {
	coll repository.Collection[T]
	sch  schema.Schema

	mode     Mode
	creating bool
	current  T // último registro guardado, cargado en Detail/Edit
	loaded   bool
}

// New crea la pantalla en modo Browse.
func New[T entity.Record[T]](coll repository.Collection[T], sch schema.Schema) *Screen[T] {
	return &Screen[T]{coll: coll, sch: sch, mode: ModeBrowse}
}

// Mode devuelve el modo actual.
func (s *Screen[T]) Mode() Mode { return s.mode }

// Schema devuelve el esquema de la pantalla.
func (s *Screen[T]) Schema() schema.Schema { return s.sch }

// Current devuelve el registro cargado en Detail/Edit.
func (s *Screen[T]) Current() (T, bool) { return s.current, s.loaded }

// Browse devuelve todos los registros en el orden de inserción.
func (s *Screen[T]) Browse() []T { return s.coll.List() }

// BrowseSorted devuelve los registros ordenados por una columna numérica.
// Es una transformación pura de presentación: estable para empates,
// idempotente y sin efecto sobre el orden de almacenamiento.
func (s *Screen[T]) BrowseSorted(field string, desc bool) ([]T, error) {
	if !s.sch.SortableField(field) {
		return nil, domain.ErrInvalidInput
	}
	items := s.coll.List()
	sort.SliceStable(items, func(i, j int) bool {
		a, _ := schema.NumericValue(items[i].Values()[field])
		b, _ := schema.NumericValue(items[j].Values()[field])
		if desc {
			return a > b
		}
		return a < b
	})
	return items, nil
}

// OpenCreate pasa de Browse a Edit con un borrador vacío, todavía sin id.
func (s *Screen[T]) OpenCreate() error {
	if s.mode != ModeBrowse {
		return domain.ErrInvalidMode
	}
	var zero T
	s.current = zero
	s.loaded = false
	s.creating = true
	s.mode = ModeEdit
	return nil
}

// OpenDetail pasa de Browse a Detail cargando los valores actuales del
// registro. Devuelve domain.ErrNotFound si el id no está en la colección.
func (s *Screen[T]) OpenDetail(id string) error {
	if s.mode != ModeBrowse {
		return domain.ErrInvalidMode
	}
	item, err := s.coll.Get(id)
	if err != nil {
		return err
	}
	s.current = item
	s.loaded = true
	s.creating = false
	s.mode = ModeDetail
	return nil
}

// OpenEdit pasa de Detail a Edit; los valores quedan tal como se cargaron.
func (s *Screen[T]) OpenEdit() error {
	if s.mode != ModeDetail || !s.loaded {
		return domain.ErrInvalidMode
	}
	s.mode = ModeEdit
	return nil
}

// CancelEdit abandona la edición. Sobre un registro existente vuelve a
// Detail con los últimos valores guardados; sobre un alta descarta el
// borrador y vuelve a Browse. Cancelar dos veces seguidas equivale a una.
func (s *Screen[T]) CancelEdit() error {
	if s.mode != ModeEdit {
		return domain.ErrInvalidMode
	}
	if s.creating {
		s.creating = false
		s.mode = ModeBrowse
		return nil
	}
	// Los valores guardados se recargan de la colección, no del borrador.
	item, err := s.coll.Get(s.current.GetID())
	if err != nil {
		return err
	}
	s.current = item
	s.mode = ModeDetail
	return nil
}

// Save valida el borrador completo contra el esquema y lo persiste de forma
// atómica: sin id asigna uno nuevo y agrega (alta, vuelve a Browse); con id
// reemplaza los campos del registro en su lugar (edición, pasa a Detail).
// Ante problemas de validación permanece en Edit y los informa todos.
func (s *Screen[T]) Save(draft T) (T, []schema.Issue, error) {
	var zero T
	if s.mode != ModeEdit {
		return zero, nil, domain.ErrInvalidMode
	}
	if issues := s.sch.Validate(draft.Values()); len(issues) > 0 {
		return zero, issues, domain.ErrValidation
	}
	if draft.GetID() == "" {
		created := s.coll.Append(draft)
		s.creating = false
		s.loaded = false
		s.mode = ModeBrowse
		return created, nil, nil
	}
	if err := s.coll.Replace(draft); err != nil {
		return zero, nil, err
	}
	s.current = draft
	s.loaded = true
	s.mode = ModeDetail
	return draft, nil, nil
}

// Delete elimina un registro previa confirmación explícita: sin confirmar
// no hay ningún cambio de estado y se devuelve ErrConfirmationRequired.
// Si el registro eliminado era el abierto en Detail/Edit se vuelve a Browse.
func (s *Screen[T]) Delete(id string, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.coll.Remove(id); err != nil {
		return err
	}
	if s.loaded && s.current.GetID() == id {
		var zero T
		s.current = zero
		s.loaded = false
		s.creating = false
		s.mode = ModeBrowse
	}
	return nil
}
