package pdf_test

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/infrastructure/pdf"
)

func TestGenerateInvoicePDF_DocumentoValido(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator()

	data, err := gen.GenerateInvoicePDF(
		entity.Invoice{
			ID:      "inv-1",
			Numero:  "FAC-2024-001",
			Cliente: "Tech Solutions SA",
			Fecha:   "2024-01-15",
			Monto:   decimal.NewFromInt(45000),
			Estado:  entity.FacturaPagada,
		},
		entity.Location{ID: "loc-1", Nombre: "Arstock Palermo"},
	)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "la salida debe ser un documento PDF")
}

// El color del estado no debe romper la generación para ningún estado.
func TestGenerateInvoicePDF_TodosLosEstados(t *testing.T) {
	gen := pdf.NewMarotoPDFGenerator()
	for _, estado := range []string{entity.FacturaPagada, entity.FacturaPendiente, entity.FacturaVencida} {
		data, err := gen.GenerateInvoicePDF(
			entity.Invoice{Numero: "FAC-TEST", Cliente: "Cliente", Fecha: "2024-01-01",
				Monto: decimal.NewFromInt(100), Estado: estado},
			entity.Location{Nombre: "Arstock Belgrano"},
		)
		require.NoError(t, err, "estado %s", estado)
		assert.NotEmpty(t, data)
	}
}
