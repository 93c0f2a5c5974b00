package entity

// Location representa un local de la cadena.
type Location struct {
	ID     string `json:"id"`
	Nombre string `json:"name"`
}

func (l Location) GetID() string { return l.ID }

func (l Location) WithID(id string) Location {
	l.ID = id
	return l
}

func (l Location) Values() map[string]any {
	return map[string]any{"name": l.Nombre}
}

// Session estado de autenticación del panel. Vacío al arrancar; lo puebla un
// login exitoso y lo limpia el logout.
type Session struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	Username        string `json:"username"`
}
