package dto

import (
	"github.com/shopspring/decimal"

	"github.com/arstock/arstock-api/internal/domain/entity"
)

// OverviewResponse resumen del local seleccionado.
type OverviewResponse struct {
	Local           entity.Location `json:"local"`
	VentasDelMes    decimal.Decimal `json:"ventasDelMes"`
	GananciasNetas  decimal.Decimal `json:"gananciasNetas"`
	StockDisponible int             `json:"stockDisponible"` // suma de cantidades del inventario
	Administradores []string        `json:"administradores"`
}
