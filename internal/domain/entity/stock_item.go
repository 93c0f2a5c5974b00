package entity

// Estados de stock.
const (
	StockDisponible = "Disponible"
	StockBajo       = "Bajo"
	StockCritico    = "Crítico"
)

// StockItem representa un producto en el inventario del local.
type StockItem struct {
	ID       string `json:"id"`
	Producto string `json:"producto"`
	SKU      string `json:"sku"`
	Cantidad int    `json:"cantidad"`
	Estado   string `json:"estado"` // Disponible | Bajo | Crítico
}

func (s StockItem) GetID() string { return s.ID }

func (s StockItem) WithID(id string) StockItem {
	s.ID = id
	return s
}

func (s StockItem) Values() map[string]any {
	return map[string]any{
		"producto": s.Producto,
		"sku":      s.SKU,
		"cantidad": s.Cantidad,
		"estado":   s.Estado,
	}
}
