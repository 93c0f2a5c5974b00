package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/arstock/arstock-api/internal/application/overview"
	"github.com/arstock/arstock-api/internal/application/report"
	"github.com/arstock/arstock-api/internal/domain"
)

// OverviewHandler maneja el resumen del local.
type OverviewHandler struct {
	uc *overview.UseCase
}

// NewOverviewHandler construye el handler.
func NewOverviewHandler(uc *overview.UseCase) *OverviewHandler {
	return &OverviewHandler{uc: uc}
}

// Summary GET /api/overview — cifras del mes, stock y administradores.
func (h *OverviewHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// ReportHandler maneja las descargas: PDF de factura y planillas XLSX.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// InvoicePDF GET /api/billing/:id/pdf — representación gráfica de la factura.
func (h *ReportHandler) InvoicePDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.InvoicePDF(c.Params("id"))
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// ExportXLSX GET /api/reports/:screen — exporta la pantalla como planilla.
func (h *ReportHandler) ExportXLSX(c *fiber.Ctx) error {
	data, filename, err := h.uc.ExportXLSX(c.Params("screen"))
	if errors.Is(err, domain.ErrNotFound) {
		return notFound(c)
	}
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
