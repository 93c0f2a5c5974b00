package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
)

func nuevoUC(t *testing.T) *location.UseCase {
	t.Helper()
	store := memory.NewStore(false)
	return location.New(store.Locations)
}

// Los tres locales vienen sembrados y el primero queda seleccionado.
func TestNew_SeleccionaElPrimero(t *testing.T) {
	uc := nuevoUC(t)

	locales := uc.List()
	require.Len(t, locales, 3)
	assert.Equal(t, "Arstock Palermo", locales[0].Nombre)

	sel, err := uc.Selected()
	require.NoError(t, err)
	assert.Equal(t, locales[0].ID, sel.ID)
}

func TestSelect_DebeSerMiembro(t *testing.T) {
	uc := nuevoUC(t)
	locales := uc.List()

	sel, err := uc.Select(locales[2].ID)
	require.NoError(t, err)
	assert.Equal(t, "Arstock Recoleta", sel.Nombre)

	_, err = uc.Select("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Un select fallido no cambia la selección.
	actual, err := uc.Selected()
	require.NoError(t, err)
	assert.Equal(t, locales[2].ID, actual.ID)
}

// Agregar un local lo anexa al final con id propio y lo deja seleccionado.
func TestAdd_AnexaYSelecciona(t *testing.T) {
	uc := nuevoUC(t)

	loc, err := uc.Add("Arstock Caballito")
	require.NoError(t, err)
	assert.NotEmpty(t, loc.ID)

	locales := uc.List()
	require.Len(t, locales, 4)
	assert.Equal(t, loc.ID, locales[3].ID)

	sel, err := uc.Selected()
	require.NoError(t, err)
	assert.Equal(t, loc.ID, sel.ID)
}

func TestAdd_NombreVacioFalla(t *testing.T) {
	uc := nuevoUC(t)
	_, err := uc.Add("")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Len(t, uc.List(), 3)
}
