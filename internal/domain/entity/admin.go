package entity

// Roles administrativos del panel.
const (
	RolAdmin    = "admin"
	RolInvitado = "invitado"
)

// Admin representa un usuario con acceso administrativo al panel.
// Teléfono, departamento y fecha de registro son opcionales.
type Admin struct {
	ID            string `json:"id"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	Rol           string `json:"rol"` // admin | invitado
	Telefono      string `json:"telefono,omitempty"`
	Departamento  string `json:"departamento,omitempty"`
	FechaRegistro string `json:"fechaRegistro,omitempty"`
}

func (a Admin) GetID() string { return a.ID }

func (a Admin) WithID(id string) Admin {
	a.ID = id
	return a
}

func (a Admin) Values() map[string]any {
	return map[string]any{
		"nombre":        a.Nombre,
		"email":         a.Email,
		"rol":           a.Rol,
		"telefono":      a.Telefono,
		"departamento":  a.Departamento,
		"fechaRegistro": a.FechaRegistro,
	}
}
