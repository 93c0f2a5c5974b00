package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound             = errors.New("recurso no encontrado")
	ErrInvalidInput         = errors.New("entrada inválida")
	ErrValidation           = errors.New("validación de campos requeridos")
	ErrConfirmationRequired = errors.New("la acción destructiva requiere confirmación")
	ErrUnauthorized         = errors.New("no autorizado")
	ErrInvalidMode          = errors.New("operación no permitida en el modo actual")
)
