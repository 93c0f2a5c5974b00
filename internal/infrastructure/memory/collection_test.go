package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
)

// Append asigna ids únicos y conserva el orden de inserción.
func TestAppend_OrdenEIdsUnicos(t *testing.T) {
	coll := memory.NewCollection[entity.Provider]()

	a := coll.Append(entity.Provider{Nombre: "Distribuidora Tech"})
	b := coll.Append(entity.Provider{Nombre: "Tech Supplies"})
	require.NotEmpty(t, a.ID)
	require.NotEmpty(t, b.ID)
	assert.NotEqual(t, a.ID, b.ID)

	items := coll.List()
	require.Len(t, items, 2)
	assert.Equal(t, "Distribuidora Tech", items[0].Nombre)
	assert.Equal(t, "Tech Supplies", items[1].Nombre)
}

// List devuelve una copia: mutarla no afecta la colección.
func TestList_DevuelveCopia(t *testing.T) {
	coll := memory.NewCollection[entity.Provider]()
	coll.Append(entity.Provider{Nombre: "Distribuidora Tech"})

	items := coll.List()
	items[0].Nombre = "Otro"

	assert.Equal(t, "Distribuidora Tech", coll.List()[0].Nombre)
}

// Replace sustituye los campos en la misma posición.
func TestReplace_EnSuLugar(t *testing.T) {
	coll := memory.NewCollection[entity.Provider]()
	a := coll.Append(entity.Provider{Nombre: "Distribuidora Tech", Rubro: "Computación"})
	coll.Append(entity.Provider{Nombre: "Tech Supplies", Rubro: "Accesorios"})

	a.Rubro = "Electrónica"
	require.NoError(t, coll.Replace(a))

	items := coll.List()
	assert.Equal(t, "Electrónica", items[0].Rubro)
	assert.Equal(t, a.ID, items[0].ID, "el id nunca se reasigna")

	assert.ErrorIs(t, coll.Replace(entity.Provider{ID: "no-existe"}), domain.ErrNotFound)
}

func TestRemove(t *testing.T) {
	coll := memory.NewCollection[entity.Provider]()
	a := coll.Append(entity.Provider{Nombre: "Distribuidora Tech"})
	b := coll.Append(entity.Provider{Nombre: "Tech Supplies"})

	require.NoError(t, coll.Remove(a.ID))
	items := coll.List()
	require.Len(t, items, 1)
	assert.Equal(t, b.ID, items[0].ID)

	assert.ErrorIs(t, coll.Remove(a.ID), domain.ErrNotFound)

	_, err := coll.Get(a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// NewStore con seed carga los datos de demostración del panel.
func TestNewStore_Seed(t *testing.T) {
	store := memory.NewStore(true)

	assert.Equal(t, 8, store.Stock.Len())
	assert.Equal(t, 6, store.Billing.Len())
	assert.Equal(t, 5, store.Debts.Len())
	assert.Equal(t, 6, store.Providers.Len())
	assert.Equal(t, 7, store.Employments.Len())
	assert.Equal(t, 8, store.Customers.Len())
	assert.Equal(t, 3, store.Admins.Len())
	assert.Equal(t, 2, store.Stats.Len())
	assert.Equal(t, 3, store.Locations.Len())

	// Sin seed, solo los locales (la selección exige al menos uno).
	vacio := memory.NewStore(false)
	assert.Zero(t, vacio.Stock.Len())
	assert.Equal(t, 3, vacio.Locations.Len())
}
