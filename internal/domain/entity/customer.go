package entity

import "github.com/shopspring/decimal"

// Customer representa un cliente del local con su historial de compras.
type Customer struct {
	ID           string          `json:"id"`
	Nombre       string          `json:"nombre"`
	Email        string          `json:"email"`
	UltimaCompra string          `json:"ultimaCompra"` // YYYY-MM-DD
	TotalGastado decimal.Decimal `json:"totalGastado"`
}

func (c Customer) GetID() string { return c.ID }

func (c Customer) WithID(id string) Customer {
	c.ID = id
	return c
}

func (c Customer) Values() map[string]any {
	return map[string]any{
		"nombre":       c.Nombre,
		"email":        c.Email,
		"ultimaCompra": c.UltimaCompra,
		"totalGastado": c.TotalGastado,
	}
}
