package entity

// Provider representa un proveedor del directorio.
type Provider struct {
	ID       string `json:"id"`
	Nombre   string `json:"nombre"`
	Contacto string `json:"contacto"`
	Email    string `json:"email"`
	Rubro    string `json:"rubro"`
}

func (p Provider) GetID() string { return p.ID }

func (p Provider) WithID(id string) Provider {
	p.ID = id
	return p
}

func (p Provider) Values() map[string]any {
	return map[string]any{
		"nombre":   p.Nombre,
		"contacto": p.Contacto,
		"email":    p.Email,
		"rubro":    p.Rubro,
	}
}
