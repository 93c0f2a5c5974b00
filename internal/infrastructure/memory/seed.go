package memory

import (
	"github.com/shopspring/decimal"

	"github.com/arstock/arstock-api/internal/domain/entity"
)

// Store agrupa las ocho colecciones del panel más los locales.
type Store struct {
	Stock       *Collection[entity.StockItem]
	Billing     *Collection[entity.Invoice]
	Debts       *Collection[entity.Debt]
	Providers   *Collection[entity.Provider]
	Employments *Collection[entity.Employee]
	Customers   *Collection[entity.Customer]
	Admins      *Collection[entity.Admin]
	Stats       *Collection[entity.Metric]
	Locations   *Collection[entity.Location]
}

// NewStore crea las colecciones vacías. Los locales se siembran siempre
// (la selección de local exige al menos uno); el resto solo si seed es true.
func NewStore(seed bool) *Store {
	s := &Store{
		Stock:       NewCollection[entity.StockItem](),
		Billing:     NewCollection[entity.Invoice](),
		Debts:       NewCollection[entity.Debt](),
		Providers:   NewCollection[entity.Provider](),
		Employments: NewCollection[entity.Employee](),
		Customers:   NewCollection[entity.Customer](),
		Admins:      NewCollection[entity.Admin](),
		Stats:       NewCollection[entity.Metric](),
		Locations:   NewCollection[entity.Location](),
	}
	s.Locations.Seed(
		entity.Location{Nombre: "Arstock Palermo"},
		entity.Location{Nombre: "Arstock Belgrano"},
		entity.Location{Nombre: "Arstock Recoleta"},
	)
	if seed {
		s.seedDemo()
	}
	return s
}

// seedDemo carga los datos de demostración del panel.
func (s *Store) seedDemo() {
	s.Stock.Seed(
		entity.StockItem{Producto: "Laptop HP 15", SKU: "LAP-HP-001", Cantidad: 45, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "Mouse Logitech M185", SKU: "MOU-LOG-185", Cantidad: 120, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "Teclado Mecánico RGB", SKU: "TEC-RGB-001", Cantidad: 8, Estado: entity.StockBajo},
		entity.StockItem{Producto: "Monitor Samsung 27\"", SKU: "MON-SAM-027", Cantidad: 2, Estado: entity.StockCritico},
		entity.StockItem{Producto: "Auriculares Sony WH-1000XM4", SKU: "AUR-SON-XM4", Cantidad: 35, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "Webcam Logitech C920", SKU: "WEB-LOG-C920", Cantidad: 15, Estado: entity.StockDisponible},
		entity.StockItem{Producto: "SSD Samsung 1TB", SKU: "SSD-SAM-1TB", Cantidad: 5, Estado: entity.StockBajo},
		entity.StockItem{Producto: "Router TP-Link AX3000", SKU: "ROU-TPL-3000", Cantidad: 22, Estado: entity.StockDisponible},
	)
	s.Billing.Seed(
		entity.Invoice{Numero: "FAC-2024-001", Cliente: "Tech Solutions SA", Fecha: "2024-01-15", Monto: decimal.NewFromInt(45000), Estado: entity.FacturaPagada},
		entity.Invoice{Numero: "FAC-2024-002", Cliente: "Distribuidora Central", Fecha: "2024-01-18", Monto: decimal.NewFromInt(32500), Estado: entity.FacturaPagada},
		entity.Invoice{Numero: "FAC-2024-003", Cliente: "Comercial Sur", Fecha: "2024-01-22", Monto: decimal.NewFromInt(18900), Estado: entity.FacturaPendiente},
		entity.Invoice{Numero: "FAC-2024-004", Cliente: "Sistemas Integrados", Fecha: "2024-01-25", Monto: decimal.NewFromInt(67000), Estado: entity.FacturaPagada},
		entity.Invoice{Numero: "FAC-2024-005", Cliente: "Digital Store", Fecha: "2024-01-28", Monto: decimal.NewFromInt(12300), Estado: entity.FacturaVencida},
		entity.Invoice{Numero: "FAC-2024-006", Cliente: "Mayorista Express", Fecha: "2024-02-02", Monto: decimal.NewFromInt(54800), Estado: entity.FacturaPendiente},
	)
	s.Debts.Seed(
		entity.Debt{Proveedor: "Distribuidora Tech", Factura: "PROV-001", Vencimiento: "2024-02-15", Monto: decimal.NewFromInt(28000), Estado: entity.DeudaAlDia},
		entity.Debt{Proveedor: "Importaciones Global", Factura: "PROV-002", Vencimiento: "2024-02-10", Monto: decimal.NewFromInt(45000), Estado: entity.DeudaProximo},
		entity.Debt{Proveedor: "Mayorista Central", Factura: "PROV-003", Vencimiento: "2024-01-30", Monto: decimal.NewFromInt(15500), Estado: entity.DeudaVencida},
		entity.Debt{Proveedor: "Electrónica SA", Factura: "PROV-004", Vencimiento: "2024-02-20", Monto: decimal.NewFromInt(32000), Estado: entity.DeudaAlDia},
		entity.Debt{Proveedor: "Tech Supplies", Factura: "PROV-005", Vencimiento: "2024-02-08", Monto: decimal.NewFromInt(19800), Estado: entity.DeudaProximo},
	)
	s.Providers.Seed(
		entity.Provider{Nombre: "Distribuidora Tech", Contacto: "+54 11 4567-8901", Email: "ventas@disttech.com", Rubro: "Computación"},
		entity.Provider{Nombre: "Importaciones Global", Contacto: "+54 11 4567-8902", Email: "info@impglobal.com", Rubro: "Electrónica"},
		entity.Provider{Nombre: "Mayorista Central", Contacto: "+54 11 4567-8903", Email: "contacto@mayorista.com", Rubro: "General"},
		entity.Provider{Nombre: "Electrónica SA", Contacto: "+54 11 4567-8904", Email: "ventas@electronicasa.com", Rubro: "Electrónica"},
		entity.Provider{Nombre: "Tech Supplies", Contacto: "+54 11 4567-8905", Email: "info@techsupplies.com", Rubro: "Accesorios"},
		entity.Provider{Nombre: "Periféricos Pro", Contacto: "+54 11 4567-8906", Email: "ventas@perifericospro.com", Rubro: "Periféricos"},
	)
	s.Employments.Seed(
		entity.Employee{Nombre: "Juan Pérez", Puesto: "Gerente", Email: "juan.perez@arstock.com", Estado: entity.EmpleadoActivo},
		entity.Employee{Nombre: "María García", Puesto: "Vendedora", Email: "maria.garcia@arstock.com", Estado: entity.EmpleadoActivo},
		entity.Employee{Nombre: "Carlos López", Puesto: "Encargado de Stock", Email: "carlos.lopez@arstock.com", Estado: entity.EmpleadoActivo},
		entity.Employee{Nombre: "Ana Martínez", Puesto: "Vendedora", Email: "ana.martinez@arstock.com", Estado: entity.EmpleadoVacaciones},
		entity.Employee{Nombre: "Roberto Sánchez", Puesto: "Cajero", Email: "roberto.sanchez@arstock.com", Estado: entity.EmpleadoActivo},
		entity.Employee{Nombre: "Laura Fernández", Puesto: "Contadora", Email: "laura.fernandez@arstock.com", Estado: entity.EmpleadoActivo},
		entity.Employee{Nombre: "Diego Romero", Puesto: "Vendedor", Email: "diego.romero@arstock.com", Estado: entity.EmpleadoInactivo},
	)
	s.Customers.Seed(
		entity.Customer{Nombre: "Martín Rodríguez", Email: "martin.r@email.com", UltimaCompra: "2024-02-01", TotalGastado: decimal.NewFromInt(125000)},
		entity.Customer{Nombre: "Sofía Gutiérrez", Email: "sofia.g@email.com", UltimaCompra: "2024-01-28", TotalGastado: decimal.NewFromInt(89000)},
		entity.Customer{Nombre: "Pablo Díaz", Email: "pablo.d@email.com", UltimaCompra: "2024-01-25", TotalGastado: decimal.NewFromInt(156000)},
		entity.Customer{Nombre: "Lucía Torres", Email: "lucia.t@email.com", UltimaCompra: "2024-02-03", TotalGastado: decimal.NewFromInt(45000)},
		entity.Customer{Nombre: "Fernando Castro", Email: "fernando.c@email.com", UltimaCompra: "2024-01-30", TotalGastado: decimal.NewFromInt(203000)},
		entity.Customer{Nombre: "Valentina Ruiz", Email: "valentina.r@email.com", UltimaCompra: "2024-02-02", TotalGastado: decimal.NewFromInt(67000)},
		entity.Customer{Nombre: "Mateo Silva", Email: "mateo.s@email.com", UltimaCompra: "2024-01-22", TotalGastado: decimal.NewFromInt(34000)},
		entity.Customer{Nombre: "Camila Morales", Email: "camila.m@email.com", UltimaCompra: "2024-02-04", TotalGastado: decimal.NewFromInt(98000)},
	)
	s.Admins.Seed(
		entity.Admin{Nombre: "Juan Pérez", Email: "juan.perez@arstock.com", Rol: entity.RolAdmin, Telefono: "+54 11 2345-6789", Departamento: "Gerencia", FechaRegistro: "2024-01-15"},
		entity.Admin{Nombre: "María García", Email: "maria.garcia@arstock.com", Rol: entity.RolAdmin},
		entity.Admin{Nombre: "Carlos López", Email: "carlos.lopez@arstock.com", Rol: entity.RolInvitado},
	)
	s.Stats.Seed(
		entity.Metric{Nombre: "Ticket Promedio", Valor: 2845, Unidad: "ARS"},
		entity.Metric{Nombre: "Tasa de Conversión", Valor: 68.5, Unidad: "%"},
	)
}
