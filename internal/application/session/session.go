// Package session gobierna el estado de autenticación del panel. El login es
// de demostración: cualquier usuario y contraseña no vacíos son aceptados,
// no hay verificación de credenciales contra nada. El token emitido solo
// transporta la sesión por HTTP.
package session

import (
	"sync"

	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/pkg/jwt"
)

// JWTConfig configuración para la emisión de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// UseCase casos de uso de sesión: login y logout.
type UseCase struct {
	mu      sync.Mutex
	jwtCfg  JWTConfig
	current entity.Session
}

// New crea el caso de uso con la sesión vacía.
func New(jwtCfg JWTConfig) *UseCase {
	return &UseCase{jwtCfg: jwtCfg}
}

// Login acepta cualquier usuario y contraseña no vacíos, marca la sesión
// como autenticada y emite el token. Campo vacío → ErrInvalidInput.
func (uc *UseCase) Login(username, password string) (string, entity.Session, error) {
	if username == "" || password == "" {
		return "", entity.Session{}, domain.ErrInvalidInput
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, username, entity.RolAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return "", entity.Session{}, err
	}
	uc.mu.Lock()
	uc.current = entity.Session{IsAuthenticated: true, Username: username}
	sess := uc.current
	uc.mu.Unlock()
	return token, sess, nil
}

// Logout limpia la sesión incondicionalmente; siempre tiene éxito.
func (uc *UseCase) Logout() {
	uc.mu.Lock()
	uc.current = entity.Session{}
	uc.mu.Unlock()
}

// Current devuelve la sesión actual.
func (uc *UseCase) Current() entity.Session {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.current
}
