package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arstock/arstock-api/internal/application/dto"
	"github.com/arstock/arstock-api/internal/application/session"
	"github.com/arstock/arstock-api/internal/observability/metrics"
)

// SessionHandler maneja login, logout y consulta de sesión.
type SessionHandler struct {
	uc *session.UseCase
}

// NewSessionHandler construye el handler.
func NewSessionHandler(uc *session.UseCase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// Login POST /api/auth/login — acepta cualquier usuario y contraseña no
// vacíos y emite el token de sesión.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	token, sess, err := h.uc.Login(in.Username, in.Password)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "usuario y contraseña son requeridos",
		})
	}
	metrics.Logins.Inc()
	return c.JSON(dto.LoginResponse{Token: token, Session: sess})
}

// Logout POST /api/auth/logout — limpia la sesión; siempre tiene éxito.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.SendStatus(fiber.StatusNoContent)
}

// Current GET /api/auth/session — estado de la sesión.
func (h *SessionHandler) Current(c *fiber.Ctx) error {
	return c.JSON(h.uc.Current())
}
