// Package overview arma el resumen del local: cifras del mes, unidades de
// stock disponibles y los administradores con acceso. Las unidades y los
// administradores se derivan de las colecciones vivas; ventas y ganancias
// son las cifras de demostración del panel.
package overview

import (
	"github.com/shopspring/decimal"

	"github.com/arstock/arstock-api/internal/application/dto"
	"github.com/arstock/arstock-api/internal/application/location"
	"github.com/arstock/arstock-api/internal/domain/entity"
	"github.com/arstock/arstock-api/internal/domain/repository"
)

// Cifras de demostración del resumen.
var (
	ventasDelMes   = decimal.NewFromInt(125000)
	gananciasNetas = decimal.NewFromInt(45000)
)

// UseCase caso de uso del resumen.
type UseCase struct {
	stock      repository.Collection[entity.StockItem]
	admins     repository.Collection[entity.Admin]
	locationUC *location.UseCase
}

// New construye el caso de uso.
func New(
	stock repository.Collection[entity.StockItem],
	admins repository.Collection[entity.Admin],
	locationUC *location.UseCase,
) *UseCase {
	return &UseCase{stock: stock, admins: admins, locationUC: locationUC}
}

// Summary devuelve el resumen para el local seleccionado.
func (uc *UseCase) Summary() (*dto.OverviewResponse, error) {
	loc, err := uc.locationUC.Selected()
	if err != nil {
		return nil, err
	}

	unidades := 0
	for _, item := range uc.stock.List() {
		unidades += item.Cantidad
	}

	var administradores []string
	for _, a := range uc.admins.List() {
		administradores = append(administradores, a.Nombre)
	}

	return &dto.OverviewResponse{
		Local:           loc,
		VentasDelMes:    ventasDelMes,
		GananciasNetas:  gananciasNetas,
		StockDisponible: unidades,
		Administradores: administradores,
	}, nil
}
