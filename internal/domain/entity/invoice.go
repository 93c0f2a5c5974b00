package entity

import "github.com/shopspring/decimal"

// Estados de factura emitida.
const (
	FacturaPagada    = "Pagada"
	FacturaPendiente = "Pendiente"
	FacturaVencida   = "Vencida"
)

// Invoice representa una factura emitida (pantalla Facturación).
// Numero es el identificador comercial (ej. FAC-2024-001); el ID del registro
// lo asigna el sistema y es independiente del número de factura.
type Invoice struct {
	ID      string          `json:"id"`
	Numero  string          `json:"numero"`
	Cliente string          `json:"cliente"`
	Fecha   string          `json:"fecha"` // YYYY-MM-DD
	Monto   decimal.Decimal `json:"monto"`
	Estado  string          `json:"estado"` // Pagada | Pendiente | Vencida
}

func (i Invoice) GetID() string { return i.ID }

func (i Invoice) WithID(id string) Invoice {
	i.ID = id
	return i
}

func (i Invoice) Values() map[string]any {
	return map[string]any{
		"numero":  i.Numero,
		"cliente": i.Cliente,
		"fecha":   i.Fecha,
		"monto":   i.Monto,
		"estado":  i.Estado,
	}
}
