// Package report genera las salidas descargables del panel: la
// representación PDF de una factura y la exportación XLSX de cualquier
// pantalla de entidad.
package report

import (
	"fmt"

	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/domain"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/repository"
	"github.com/arstock/arstock-api/internal/domain/schema"
)

// InvoicePDFGenerator puerto del generador PDF de facturas.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(inv entity.Invoice, local entity.Location) ([]byte, error)
}

// XLSXExporter puerto del exportador de planillas.
type XLSXExporter interface {
	Export(sheet string, sch schema.Schema, rows []map[string]any) ([]byte, error)
}

// Dataset una pantalla exportable: su esquema y un snapshot de sus filas.
type Dataset struct {
	Schema schema.Schema
	Rows   func() []map[string]any
}

// DatasetOf arma el dataset exportable de una colección.
func DatasetOf[T entity.Record[T]](sch schema.Schema, coll repository.Collection[T]) Dataset {
	return Dataset{
		Schema: sch,
		Rows: func() []map[string]any {
			items := coll.List()
			rows := make([]map[string]any, 0, len(items))
			for _, item := range items {
				rows = append(rows, item.Values())
			}
			return rows
		},
	}
}

// UseCase casos de uso de reportes.
type UseCase struct {
	billing    repository.Collection[entity.Invoice]
	locationUC *location.UseCase
	pdf        InvoicePDFGenerator
	exporter   XLSXExporter
	datasets   map[string]Dataset
}

// New construye el caso de uso. datasets mapea la clave de pantalla
// (stock, billing, …) a su colección exportable.
func New(
	billing repository.Collection[entity.Invoice],
	locationUC *location.UseCase,
	pdf InvoicePDFGenerator,
	exporter XLSXExporter,
	datasets map[string]Dataset,
) *UseCase {
	return &UseCase{billing: billing, locationUC: locationUC, pdf: pdf, exporter: exporter, datasets: datasets}
}

// InvoicePDF genera el PDF de la factura y devuelve bytes y nombre de archivo.
func (uc *UseCase) InvoicePDF(id string) ([]byte, string, error) {
	inv, err := uc.billing.Get(id)
	if err != nil {
		return nil, "", err
	}
	local, err := uc.locationUC.Selected()
	if err != nil {
		return nil, "", err
	}
	pdfBytes, err := uc.pdf.GenerateInvoicePDF(inv, local)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de %s: %w", inv.Numero, err)
	}
	return pdfBytes, inv.Numero + ".pdf", nil
}

// ExportXLSX exporta la pantalla indicada como planilla.
func (uc *UseCase) ExportXLSX(screenKey string) ([]byte, string, error) {
	ds, ok := uc.datasets[screenKey]
	if !ok {
		return nil, "", domain.ErrNotFound
	}
	data, err := uc.exporter.Export(screenKey, ds.Schema, ds.Rows())
	if err != nil {
		return nil, "", fmt.Errorf("exportar %s: %w", screenKey, err)
	}
	return data, screenKey + ".xlsx", nil
}
