package entity

// Estados laborales.
const (
	EmpleadoActivo     = "Activo"
	EmpleadoVacaciones = "Vacaciones"
	EmpleadoInactivo   = "Inactivo"
)

// Employee representa un empleado del local.
type Employee struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Puesto string `json:"puesto"`
	Email  string `json:"email"`
	Estado string `json:"estado"` // Activo | Vacaciones | Inactivo
}

func (e Employee) GetID() string { return e.ID }

func (e Employee) WithID(id string) Employee {
	e.ID = id
	return e
}

func (e Employee) Values() map[string]any {
	return map[string]any{
		"nombre": e.Nombre,
		"puesto": e.Puesto,
		"email":  e.Email,
		"estado": e.Estado,
	}
}
