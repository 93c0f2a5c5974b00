package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arstock/arstock-api/internal/application/dto"
	"github.com/arstock/arstock-api/internal/application/screen"
	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/repository"
	"github.com/arstock/arstock-api/internal/domain/schema"
	"github.com/arstock/arstock-api/internal/observability/metrics"
)

// FormRequest lo implementan los DTOs de formulario de cada entidad.
type FormRequest[T any] interface {
	ToEntity(id string) T
}

// ScreenHandler maneja las peticiones HTTP de una pantalla de entidad.
// Cada request recorre la máquina Browse/Detail/Edit igual que el modal del
// panel: un alta es OpenCreate+Save, una edición OpenDetail+OpenEdit+Save.
type ScreenHandler[T entity.Record[T], R FormRequest[T]] struct {
	name string
	coll repository.Collection[T]
	sch  schema.Schema
}

// RegisterScreen registra las rutas CRUD de una pantalla en el grupo dado.
func RegisterScreen[T entity.Record[T], R FormRequest[T]](
	grp fiber.Router,
	name string,
	coll repository.Collection[T],
	sch schema.Schema,
) {
	h := &ScreenHandler[T, R]{name: name, coll: coll, sch: sch}
	grp.Get("/", h.List)
	grp.Post("/", h.Create)
	grp.Get("/:id", h.GetByID)
	grp.Put("/:id", h.Update)
	grp.Delete("/:id", h.Delete)
}

func (h *ScreenHandler[T, R]) newScreen() *screen.Screen[T] {
	return screen.New(h.coll, h.sch)
}

// List GET /?sort=campo&order=desc — tabla de la pantalla. El orden por
// columna es una transformación de presentación; el almacenamiento conserva
// el orden de inserción.
func (h *ScreenHandler[T, R]) List(c *fiber.Ctx) error {
	s := h.newScreen()
	metrics.ScreenOps.WithLabelValues(h.name, "browse").Inc()

	sortField := c.Query("sort")
	if sortField == "" {
		return c.JSON(s.Browse())
	}
	items, err := s.BrowseSorted(sortField, c.Query("order") == "desc")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "SORT_FIELD", Message: "columna no ordenable: " + sortField,
		})
	}
	return c.JSON(items)
}

// GetByID GET /:id — vista Detail de un registro.
func (h *ScreenHandler[T, R]) GetByID(c *fiber.Ctx) error {
	s := h.newScreen()
	if err := s.OpenDetail(c.Params("id")); err != nil {
		return notFound(c)
	}
	metrics.ScreenOps.WithLabelValues(h.name, "detail").Inc()
	item, _ := s.Current()
	return c.JSON(item)
}

// Create POST / — alta: borrador sin id, validación todo-o-nada, id asignado
// por el sistema.
func (h *ScreenHandler[T, R]) Create(c *fiber.Ctx) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	s := h.newScreen()
	if err := s.OpenCreate(); err != nil {
		return internalError(c, err)
	}
	created, issues, err := s.Save(req.ToEntity(""))
	if err != nil {
		return saveError(c, issues, err)
	}
	metrics.ScreenOps.WithLabelValues(h.name, "create").Inc()
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update PUT /:id — edición: reemplaza por completo los campos del registro.
func (h *ScreenHandler[T, R]) Update(c *fiber.Ctx) error {
	var req R
	if err := c.BodyParser(&req); err != nil {
		return invalidBody(c)
	}
	s := h.newScreen()
	if err := s.OpenDetail(c.Params("id")); err != nil {
		return notFound(c)
	}
	if err := s.OpenEdit(); err != nil {
		return internalError(c, err)
	}
	saved, issues, err := s.Save(req.ToEntity(c.Params("id")))
	if err != nil {
		return saveError(c, issues, err)
	}
	metrics.ScreenOps.WithLabelValues(h.name, "update").Inc()
	return c.JSON(saved)
}

// Delete DELETE /:id?confirm=true — eliminación con confirmación explícita.
// Sin confirm la colección queda intacta y se responde 409 nombrando la
// consecuencia; declinar no es un error del cliente, es un no-op.
func (h *ScreenHandler[T, R]) Delete(c *fiber.Ctx) error {
	s := h.newScreen()
	if err := s.OpenDetail(c.Params("id")); err != nil {
		return notFound(c)
	}
	err := s.Delete(c.Params("id"), c.QueryBool("confirm"))
	if errors.Is(err, domain.ErrConfirmationRequired) {
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code:    "CONFIRMATION_REQUIRED",
			Message: "la eliminación es irreversible; repita la petición con confirm=true",
		})
	}
	if err != nil {
		return internalError(c, err)
	}
	metrics.ScreenOps.WithLabelValues(h.name, "delete").Inc()
	return c.SendStatus(fiber.StatusNoContent)
}

// ── Respuestas de error compartidas ──────────────────────────────────────────

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
}

func internalError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func saveError(c *fiber.Ctx, issues []schema.Issue, err error) error {
	if errors.Is(err, domain.ErrValidation) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "campos requeridos faltantes o inválidos", Fields: issues,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	return internalError(c, err)
}
