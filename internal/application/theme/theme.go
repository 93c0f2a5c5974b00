// Package theme mantiene el tema claro/oscuro del panel. Es un booleano de
// presentación: claro por defecto, se alterna explícitamente y no se
// persiste entre reinicios.
package theme

import "sync"

// UseCase estado del tema.
type UseCase struct {
	mu   sync.Mutex
	dark bool
}

// New crea el estado en tema claro.
func New() *UseCase { return &UseCase{} }

// Toggle alterna el tema y devuelve el valor resultante.
func (uc *UseCase) Toggle() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.dark = !uc.dark
	return uc.dark
}

// Dark informa si el tema oscuro está activo.
func (uc *UseCase) Dark() bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.dark
}
