package entity

// Metric representa una estadística personalizada de la pantalla Estadísticas
// (ej. "Ticket Promedio" 2845 ARS, "Tasa de Conversión" 68.5 %).
type Metric struct {
	ID     string  `json:"id"`
	Nombre string  `json:"nombre"`
	Valor  float64 `json:"valor"`
	Unidad string  `json:"unidad,omitempty"`
}

func (m Metric) GetID() string { return m.ID }

func (m Metric) WithID(id string) Metric {
	m.ID = id
	return m
}

func (m Metric) Values() map[string]any {
	return map[string]any{
		"nombre": m.Nombre,
		"valor":  m.Valor,
		"unidad": m.Unidad,
	}
}
