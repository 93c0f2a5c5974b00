package entity

import "github.com/shopspring/decimal"

// Estados de cuentas por pagar.
const (
	DeudaAlDia   = "Al día"
	DeudaProximo = "Próximo"
	DeudaVencida = "Vencida"
)

// Debt representa una deuda con un proveedor (cuentas por pagar).
type Debt struct {
	ID          string          `json:"id"`
	Proveedor   string          `json:"proveedor"`
	Factura     string          `json:"factura"`
	Vencimiento string          `json:"vencimiento"` // YYYY-MM-DD
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado"` // Al día | Próximo | Vencida
}

func (d Debt) GetID() string { return d.ID }

func (d Debt) WithID(id string) Debt {
	d.ID = id
	return d
}

func (d Debt) Values() map[string]any {
	return map[string]any{
		"proveedor":   d.Proveedor,
		"factura":     d.Factura,
		"vencimiento": d.Vencimiento,
		"monto":       d.Monto,
		"estado":      d.Estado,
	}
}
