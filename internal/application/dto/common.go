package dto

import "github.com/arstock/arstock-api/internal/domain/schema"

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Fields  []schema.Issue `json:"fields,omitempty"` // detalle por campo en errores de validación
}
