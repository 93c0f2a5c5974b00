package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/arstock/arstock-api/internal/application/dto"
	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/application/theme"
)

// LocationHandler maneja los locales y el local seleccionado.
type LocationHandler struct {
	uc *location.UseCase
}

// NewLocationHandler construye el handler.
func NewLocationHandler(uc *location.UseCase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// List GET /api/locations — locales disponibles y el seleccionado.
func (h *LocationHandler) List(c *fiber.Ctx) error {
	selected, err := h.uc.Selected()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(dto.LocationsResponse{Locations: h.uc.List(), Selected: selected})
}

// Create POST /api/locations — agrega un local y lo deja seleccionado.
func (h *LocationHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	loc, err := h.uc.Add(in.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "name es requerido",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(loc)
}

// Select PUT /api/locations/selected — cambia el local seleccionado. El id
// debe pertenecer a la colección; cambiar de local no filtra ninguna
// colección de entidades.
func (h *LocationHandler) Select(c *fiber.Ctx) error {
	var in dto.SelectLocationRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	loc, err := h.uc.Select(in.ID)
	if err != nil {
		return notFound(c)
	}
	return c.JSON(loc)
}

// ThemeHandler maneja el tema claro/oscuro.
type ThemeHandler struct {
	uc *theme.UseCase
}

// NewThemeHandler construye el handler.
func NewThemeHandler(uc *theme.UseCase) *ThemeHandler {
	return &ThemeHandler{uc: uc}
}

// Current GET /api/theme — estado del tema.
func (h *ThemeHandler) Current(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeResponse{Dark: h.uc.Dark()})
}

// Toggle POST /api/theme/toggle — alterna el tema y devuelve el resultado.
func (h *ThemeHandler) Toggle(c *fiber.Ctx) error {
	return c.JSON(dto.ThemeResponse{Dark: h.uc.Toggle()})
}
