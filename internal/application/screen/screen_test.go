package screen_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arstock/arstock-api/internal/application/screen"
	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/schema"
	"github.com/arstock/arstock-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// pantallaStock arma una pantalla de stock sobre una colección sembrada.
func pantallaStock(t *testing.T) (*screen.Screen[entity.StockItem], *memory.Collection[entity.StockItem]) {
	t.Helper()
	coll := memory.NewCollection[entity.StockItem]()
	coll.Seed(
		entity.StockItem{Producto: "Laptop HP 15", SKU: "LAP-HP-001", Cantidad: 45, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "Mouse Logitech M185", SKU: "MOU-LOG-185", Cantidad: 120, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "Monitor Samsung 27\"", SKU: "MON-SAM-027", Cantidad: 2, Estado: entity.StockCritico},
	)
	return screen.New(coll, schema.Stock), coll
}

// pantallaBilling arma la pantalla de facturación con las 6 facturas de demo.
func pantallaBilling(t *testing.T) (*screen.Screen[entity.Invoice], *memory.Collection[entity.Invoice]) {
	t.Helper()
	store := memory.NewStore(true)
	return screen.New(store.Billing, schema.Billing), store.Billing
}

func idPorSKU(t *testing.T, coll *memory.Collection[entity.StockItem], sku string) string {
	t.Helper()
	for _, item := range coll.List() {
		if item.SKU == sku {
			return item.ID
		}
	}
	t.Fatalf("no hay ítem con sku %s", sku)
	return ""
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

// Un alta válida agrega exactamente un registro al final, con los campos del
// borrador y un id nuevo y único.
func TestSave_AltaAgregaUnRegistro(t *testing.T) {
	s, coll := pantallaStock(t)
	antes := coll.Len()

	require.NoError(t, s.OpenCreate())
	assert.Equal(t, screen.ModeEdit, s.Mode())

	creado, issues, err := s.Save(entity.StockItem{
		Producto: "Webcam Logitech C920", SKU: "WEB-LOG-C920", Cantidad: 15, Estado: entity.StockDisponible,
	})
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, screen.ModeBrowse, s.Mode(), "tras un alta se vuelve a Browse")

	items := coll.List()
	require.Len(t, items, antes+1)
	ultimo := items[len(items)-1]
	assert.Equal(t, creado.ID, ultimo.ID)
	assert.NotEmpty(t, creado.ID, "el sistema asigna el id")
	assert.Equal(t, "Webcam Logitech C920", ultimo.Producto)
	assert.Equal(t, 15, ultimo.Cantidad)

	vistos := map[string]bool{}
	for _, item := range items {
		assert.False(t, vistos[item.ID], "id duplicado: %s", item.ID)
		vistos[item.ID] = true
	}
}

// Escenario de la pantalla de facturación: 6 facturas, alta de una séptima.
func TestSave_AltaFactura(t *testing.T) {
	s, coll := pantallaBilling(t)
	require.Equal(t, 6, coll.Len(), "la demo siembra 6 facturas")

	require.NoError(t, s.OpenCreate())
	creada, issues, err := s.Save(entity.Invoice{
		Numero:  "FAC-2024-100",
		Cliente: "X",
		Fecha:   "2024-03-01",
		Monto:   decimal.NewFromInt(1000),
		Estado:  entity.FacturaPendiente,
	})
	require.NoError(t, err)
	assert.Empty(t, issues)

	items := coll.List()
	require.Len(t, items, 7)
	septima := items[6]
	assert.Equal(t, creada.ID, septima.ID)
	assert.Equal(t, "FAC-2024-100", septima.Numero)
	assert.Equal(t, "X", septima.Cliente)
	assert.Equal(t, "2024-03-01", septima.Fecha)
	assert.True(t, decimal.NewFromInt(1000).Equal(septima.Monto))
	assert.Equal(t, entity.FacturaPendiente, septima.Estado)
}

// La validación es todo-o-nada: se informan todos los campos con problema y
// la colección no cambia.
func TestSave_ValidacionTodoONada(t *testing.T) {
	s, coll := pantallaStock(t)
	antes := coll.Len()

	require.NoError(t, s.OpenCreate())
	_, issues, err := s.Save(entity.StockItem{Producto: "", SKU: "", Cantidad: 1, Estado: "Roto"})
	require.ErrorIs(t, err, domain.ErrValidation)

	campos := map[string]bool{}
	for _, issue := range issues {
		campos[issue.Campo] = true
	}
	assert.True(t, campos["producto"])
	assert.True(t, campos["sku"])
	assert.True(t, campos["estado"], "valor fuera de la enumeración")

	assert.Equal(t, screen.ModeEdit, s.Mode(), "ante validación fallida se permanece en Edit")
	assert.Equal(t, antes, coll.Len(), "no hay guardado parcial")
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

// Editar reemplaza por completo los campos de ese registro y de ningún otro;
// el largo de la colección no cambia.
func TestSave_EdicionReemplazaCampos(t *testing.T) {
	s, coll := pantallaStock(t)
	id := idPorSKU(t, coll, "LAP-HP-001")
	antes := coll.List()

	require.NoError(t, s.OpenDetail(id))
	require.NoError(t, s.OpenEdit())

	actual, _ := s.Current()
	actual.Cantidad = 40
	guardado, issues, err := s.Save(actual)
	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, screen.ModeDetail, s.Mode(), "tras editar se vuelve a Detail")
	assert.Equal(t, 40, guardado.Cantidad)

	despues := coll.List()
	require.Len(t, despues, len(antes))
	for i, item := range despues {
		if item.ID == id {
			assert.Equal(t, 40, item.Cantidad)
			assert.Equal(t, "Laptop HP 15", item.Producto, "el resto de los campos no cambia")
			assert.Equal(t, "LAP-HP-001", item.SKU)
			continue
		}
		assert.Equal(t, antes[i], item, "ningún otro registro se altera")
	}
}

// CancelEdit sobre un registro existente restaura los últimos valores
// guardados; cancelar dos veces seguidas equivale a una.
func TestCancelEdit_RestauraValoresGuardados(t *testing.T) {
	s, coll := pantallaStock(t)
	id := idPorSKU(t, coll, "LAP-HP-001")

	require.NoError(t, s.OpenDetail(id))
	require.NoError(t, s.OpenEdit())

	// El borrador se descarta sin guardar.
	require.NoError(t, s.CancelEdit())
	assert.Equal(t, screen.ModeDetail, s.Mode())
	actual, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, 45, actual.Cantidad, "los valores pre-edición quedan intactos")

	// Idempotencia: editar y cancelar de nuevo deja lo mismo.
	require.NoError(t, s.OpenEdit())
	require.NoError(t, s.CancelEdit())
	actual, _ = s.Current()
	assert.Equal(t, 45, actual.Cantidad)

	guardado, err := coll.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 45, guardado.Cantidad)
}

// CancelEdit sobre un alta descarta el borrador y vuelve a Browse.
func TestCancelEdit_AltaDescartaBorrador(t *testing.T) {
	s, coll := pantallaStock(t)
	antes := coll.Len()

	require.NoError(t, s.OpenCreate())
	require.NoError(t, s.CancelEdit())
	assert.Equal(t, screen.ModeBrowse, s.Mode())
	assert.Equal(t, antes, coll.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Eliminación
// ──────────────────────────────────────────────────────────────────────────────

// Eliminar confirmado remueve exactamente ese registro; los demás conservan
// campos e ids.
func TestDelete_ConfirmadoRemueveExactamenteUno(t *testing.T) {
	s, coll := pantallaStock(t)
	id := idPorSKU(t, coll, "MOU-LOG-185")
	antes := coll.List()

	require.NoError(t, s.Delete(id, true))

	despues := coll.List()
	require.Len(t, despues, len(antes)-1)
	for _, item := range despues {
		assert.NotEqual(t, id, item.ID)
	}
	// Los sobrevivientes quedan idénticos y en orden.
	resto := make([]entity.StockItem, 0, len(antes)-1)
	for _, item := range antes {
		if item.ID != id {
			resto = append(resto, item)
		}
	}
	assert.Equal(t, resto, despues)
}

// Declinar la confirmación no cambia nada y se permanece en Detail.
func TestDelete_DeclinadoEsNoOp(t *testing.T) {
	s, coll := pantallaStock(t)
	id := idPorSKU(t, coll, "MON-SAM-027")
	antes := coll.List()

	require.NoError(t, s.OpenDetail(id))
	err := s.Delete(id, false)
	require.ErrorIs(t, err, domain.ErrConfirmationRequired)

	assert.Equal(t, screen.ModeDetail, s.Mode(), "se sigue viendo el registro en Detail")
	assert.Equal(t, antes, coll.List())
}

// Si el registro eliminado era el abierto, se vuelve a Browse.
func TestDelete_RegistroAbiertoVuelveABrowse(t *testing.T) {
	s, coll := pantallaStock(t)
	id := idPorSKU(t, coll, "LAP-HP-001")

	require.NoError(t, s.OpenDetail(id))
	require.NoError(t, s.Delete(id, true))
	assert.Equal(t, screen.ModeBrowse, s.Mode())
	_, err := coll.Get(id)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de tabla
// ──────────────────────────────────────────────────────────────────────────────

// Ordenar por una columna numérica es puro: no toca el orden de
// almacenamiento y aplicarlo dos veces da lo mismo.
func TestBrowseSorted_EsPuroEIdempotente(t *testing.T) {
	s, coll := pantallaBilling(t)
	almacenado := coll.List()

	orden1, err := s.BrowseSorted("monto", false)
	require.NoError(t, err)
	orden2, err := s.BrowseSorted("monto", false)
	require.NoError(t, err)

	assert.Equal(t, orden1, orden2, "mismo orden al aplicar dos veces")
	assert.Equal(t, almacenado, coll.List(), "el almacenamiento conserva el orden de inserción")

	for i := 1; i < len(orden1); i++ {
		assert.True(t, orden1[i-1].Monto.LessThanOrEqual(orden1[i].Monto),
			"montos en orden ascendente")
	}

	desc, err := s.BrowseSorted("monto", true)
	require.NoError(t, err)
	for i := 1; i < len(desc); i++ {
		assert.True(t, desc[i-1].Monto.GreaterThanOrEqual(desc[i].Monto))
	}
}

// Solo las columnas numéricas del esquema son ordenables.
func TestBrowseSorted_ColumnaNoOrdenable(t *testing.T) {
	s, _ := pantallaBilling(t)
	_, err := s.BrowseSorted("cliente", false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones inválidas
// ──────────────────────────────────────────────────────────────────────────────

func TestTransicionesInvalidas(t *testing.T) {
	s, coll := pantallaStock(t)

	// Save fuera de Edit
	_, _, err := s.Save(entity.StockItem{})
	assert.ErrorIs(t, err, domain.ErrInvalidMode)

	// OpenEdit fuera de Detail
	assert.ErrorIs(t, s.OpenEdit(), domain.ErrInvalidMode)

	// OpenDetail con id desconocido
	assert.ErrorIs(t, s.OpenDetail("no-existe"), domain.ErrNotFound)

	// CancelEdit fuera de Edit
	assert.ErrorIs(t, s.CancelEdit(), domain.ErrInvalidMode)

	// Delete con id desconocido (confirmado)
	assert.ErrorIs(t, s.Delete("no-existe", true), domain.ErrNotFound)

	assert.Equal(t, screen.ModeBrowse, s.Mode())
	assert.NotZero(t, coll.Len())
}
