package overview_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/application/overview"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
)

// El resumen deriva unidades y administradores de las colecciones vivas.
func TestSummary_DerivaDeColeccionesVivas(t *testing.T) {
	store := memory.NewStore(true)
	uc := overview.New(store.Stock, store.Admins, location.New(store.Locations))

	out, err := uc.Summary()
	require.NoError(t, err)

	assert.Equal(t, "Arstock Palermo", out.Local.Nombre)
	assert.True(t, out.VentasDelMes.Equal(decimal.NewFromInt(125000)))
	assert.True(t, out.GananciasNetas.Equal(decimal.NewFromInt(45000)))
	// 45+120+8+2+35+15+5+22 unidades sembradas
	assert.Equal(t, 252, out.StockDisponible)
	assert.Equal(t, []string{"Juan Pérez", "María García", "Carlos López"}, out.Administradores)
}

// Un cambio en el stock se refleja en el próximo resumen sin recálculo previo.
func TestSummary_ReflejaCambiosDeStock(t *testing.T) {
	store := memory.NewStore(true)
	uc := overview.New(store.Stock, store.Admins, location.New(store.Locations))

	items := store.Stock.List()
	modificado := items[0]
	modificado.Cantidad = 40
	require.NoError(t, store.Stock.Replace(modificado))

	out, err := uc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 247, out.StockDisponible)
}
