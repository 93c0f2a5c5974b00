package repository

import "github.com/arstock/arstock-api/internal/domain/entity"

// Collection puerto genérico de una colección de registros homogéneos.
// El orden de inserción es el orden de almacenamiento; List lo preserva.
// Un único puerto sirve a las ocho pantallas del panel.
type Collection[T entity.Record[T]] interface {
	// List devuelve una copia de los registros en orden de inserción.
	List() []T
	// Get devuelve el registro con ese id o domain.ErrNotFound.
	Get(id string) (T, error)
	// Append asigna un id nuevo y único al registro, lo agrega al final y
	// devuelve el registro ya identificado.
	Append(item T) T
	// Replace sustituye por completo los campos del registro cuyo id
	// coincide. Devuelve domain.ErrNotFound si no existe.
	Replace(item T) error
	// Remove elimina el registro con ese id. Devuelve domain.ErrNotFound
	// si no existe.
	Remove(id string) error
	// Len cantidad de registros.
	Len() int
}
