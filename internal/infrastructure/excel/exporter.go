// Package excel exporta una pantalla del panel como planilla XLSX: fila de
// encabezado con los nombres de campo del esquema y una fila por registro.
package excel

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/arstock/arstock-api/internal/domain/schema"
)

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Exporter implementa report.XLSXExporter usando excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// Export escribe el encabezado y las filas en la hoja activa y devuelve el
// archivo serializado.
func (e *Exporter) Export(sheetName string, sch schema.Schema, rows []map[string]any) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheetName != "" {
		if err := f.SetSheetName(sheet, sheetName); err == nil {
			sheet = sheetName
		}
	}

	// Encabezado
	header := make([]interface{}, 0, len(sch.Fields))
	for _, field := range sch.Fields {
		header = append(header, field.Name)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: encabezado: %w", err)
	}

	// Datos
	rowNum := 2
	for _, values := range rows {
		excelRow := make([]interface{}, 0, len(sch.Fields))
		for _, field := range sch.Fields {
			excelRow = append(excelRow, cellValue(field, values[field.Name]))
		}
		cell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, fmt.Errorf("excel: celdas: %w", err)
		}
		if err := f.SetSheetRow(sheet, cell, &excelRow); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", rowNum, err)
		}
		rowNum++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: serializar: %w", err)
	}
	return buf.Bytes(), nil
}

// cellValue convierte un valor de campo a su celda: los montos se formatean
// es-AR, el resto va con su tipo nativo.
func cellValue(field schema.Field, v any) interface{} {
	if field.Type == schema.TypeMoney {
		if d, ok := v.(decimal.Decimal); ok {
			return printer.Sprintf("$ %v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
		}
	}
	if d, ok := v.(decimal.Decimal); ok {
		return d.InexactFloat64()
	}
	return v
}
