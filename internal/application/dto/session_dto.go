package dto

import "github.com/arstock/arstock-api/internal/domain/entity"

// LoginRequest entrada del login. Cualquier par no vacío es aceptado; la
// contraseña nunca se verifica contra nada.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida del login con el token de sesión.
type LoginResponse struct {
	Token   string         `json:"token"`
	Session entity.Session `json:"session"`
}

// ThemeResponse estado del tema del panel.
type ThemeResponse struct {
	Dark bool `json:"dark"`
}

// CreateLocationRequest entrada para agregar un local.
type CreateLocationRequest struct {
	Name string `json:"name" validate:"required"`
}

// SelectLocationRequest entrada para cambiar el local seleccionado.
type SelectLocationRequest struct {
	ID string `json:"id" validate:"required"`
}

// LocationsResponse locales disponibles y el seleccionado.
type LocationsResponse struct {
	Locations []entity.Location `json:"locations"`
	Selected  entity.Location   `json:"selected"`
}
