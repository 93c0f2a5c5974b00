package dto

import (
	"github.com/shopspring/decimal"

	"github.com/arstock/arstock-api/internal/domain/entity"
)

// Requests de formulario por entidad. Cada una construye el registro tipado
// con ToEntity; el id llega vacío en un alta y con valor en una edición.

// StockRequest formulario de un ítem de stock.
type StockRequest struct {
	Producto string `json:"producto" validate:"required"`
	SKU      string `json:"sku" validate:"required"`
	Cantidad int    `json:"cantidad" validate:"min=0"`
	Estado   string `json:"estado" validate:"required,oneof=Disponible Bajo Crítico"`
}

func (r StockRequest) ToEntity(id string) entity.StockItem {
	return entity.StockItem{ID: id, Producto: r.Producto, SKU: r.SKU, Cantidad: r.Cantidad, Estado: r.Estado}
}

// InvoiceRequest formulario de una factura emitida.
type InvoiceRequest struct {
	Numero  string          `json:"numero" validate:"required"`
	Cliente string          `json:"cliente" validate:"required"`
	Fecha   string          `json:"fecha" validate:"required"`
	Monto   decimal.Decimal `json:"monto"`
	Estado  string          `json:"estado" validate:"required,oneof=Pagada Pendiente Vencida"`
}

func (r InvoiceRequest) ToEntity(id string) entity.Invoice {
	return entity.Invoice{ID: id, Numero: r.Numero, Cliente: r.Cliente, Fecha: r.Fecha, Monto: r.Monto, Estado: r.Estado}
}

// DebtRequest formulario de una cuenta por pagar.
type DebtRequest struct {
	Proveedor   string          `json:"proveedor" validate:"required"`
	Factura     string          `json:"factura" validate:"required"`
	Vencimiento string          `json:"vencimiento" validate:"required"`
	Monto       decimal.Decimal `json:"monto"`
	Estado      string          `json:"estado" validate:"required"`
}

func (r DebtRequest) ToEntity(id string) entity.Debt {
	return entity.Debt{ID: id, Proveedor: r.Proveedor, Factura: r.Factura, Vencimiento: r.Vencimiento, Monto: r.Monto, Estado: r.Estado}
}

// ProviderRequest formulario de un proveedor.
type ProviderRequest struct {
	Nombre   string `json:"nombre" validate:"required"`
	Contacto string `json:"contacto" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Rubro    string `json:"rubro" validate:"required"`
}

func (r ProviderRequest) ToEntity(id string) entity.Provider {
	return entity.Provider{ID: id, Nombre: r.Nombre, Contacto: r.Contacto, Email: r.Email, Rubro: r.Rubro}
}

// EmployeeRequest formulario de un empleado.
type EmployeeRequest struct {
	Nombre string `json:"nombre" validate:"required"`
	Puesto string `json:"puesto" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Estado string `json:"estado" validate:"required,oneof=Activo Vacaciones Inactivo"`
}

func (r EmployeeRequest) ToEntity(id string) entity.Employee {
	return entity.Employee{ID: id, Nombre: r.Nombre, Puesto: r.Puesto, Email: r.Email, Estado: r.Estado}
}

// CustomerRequest formulario de un cliente.
type CustomerRequest struct {
	Nombre       string          `json:"nombre" validate:"required"`
	Email        string          `json:"email" validate:"required,email"`
	UltimaCompra string          `json:"ultimaCompra" validate:"required"`
	TotalGastado decimal.Decimal `json:"totalGastado"`
}

func (r CustomerRequest) ToEntity(id string) entity.Customer {
	return entity.Customer{ID: id, Nombre: r.Nombre, Email: r.Email, UltimaCompra: r.UltimaCompra, TotalGastado: r.TotalGastado}
}

// AdminRequest formulario de un administrador del panel.
type AdminRequest struct {
	Nombre        string `json:"nombre" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Rol           string `json:"rol" validate:"required,oneof=admin invitado"`
	Telefono      string `json:"telefono"`
	Departamento  string `json:"departamento"`
	FechaRegistro string `json:"fechaRegistro"`
}

func (r AdminRequest) ToEntity(id string) entity.Admin {
	return entity.Admin{ID: id, Nombre: r.Nombre, Email: r.Email, Rol: r.Rol,
		Telefono: r.Telefono, Departamento: r.Departamento, FechaRegistro: r.FechaRegistro}
}

// MetricRequest formulario de una estadística personalizada.
type MetricRequest struct {
	Nombre string  `json:"nombre" validate:"required"`
	Valor  float64 `json:"valor"`
	Unidad string  `json:"unidad"`
}

func (r MetricRequest) ToEntity(id string) entity.Metric {
	return entity.Metric{ID: id, Nombre: r.Nombre, Valor: r.Valor, Unidad: r.Unidad}
}
