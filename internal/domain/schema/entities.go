package schema

import "github.com/arstock/arstock-api/internal/domain/entity"

// Esquemas de las ocho pantallas del panel. El orden de los campos es el
// orden de columnas de cada tabla.

var Stock = Schema{
	Entity: "stock",
	Fields: []Field{
		{Name: "producto", Type: TypeText, Required: true},
		{Name: "sku", Type: TypeText, Required: true},
		{Name: "cantidad", Type: TypeNumber, Required: true},
		{Name: "estado", Type: TypeEnum, Required: true,
			Enum: []string{entity.StockDisponible, entity.StockBajo, entity.StockCritico}},
	},
	StatusField: "estado",
	StatusColors: map[string]string{
		entity.StockDisponible: "green",
		entity.StockBajo:       "orange",
	},
	DefaultColor: "red",
}

var Billing = Schema{
	Entity: "billing",
	Fields: []Field{
		{Name: "numero", Type: TypeText, Required: true},
		{Name: "cliente", Type: TypeText, Required: true},
		{Name: "fecha", Type: TypeText, Required: true},
		{Name: "monto", Type: TypeMoney, Required: true},
		{Name: "estado", Type: TypeEnum, Required: true,
			Enum: []string{entity.FacturaPagada, entity.FacturaPendiente, entity.FacturaVencida}},
	},
	StatusField: "estado",
	StatusColors: map[string]string{
		entity.FacturaPagada:    "green",
		entity.FacturaPendiente: "orange",
	},
	DefaultColor: "red",
}

var Debts = Schema{
	Entity: "debts",
	Fields: []Field{
		{Name: "proveedor", Type: TypeText, Required: true},
		{Name: "factura", Type: TypeText, Required: true},
		{Name: "vencimiento", Type: TypeText, Required: true},
		{Name: "monto", Type: TypeMoney, Required: true},
		{Name: "estado", Type: TypeEnum, Required: true,
			Enum: []string{entity.DeudaAlDia, entity.DeudaProximo, entity.DeudaVencida}},
	},
	StatusField: "estado",
	StatusColors: map[string]string{
		entity.DeudaAlDia:   "green",
		entity.DeudaProximo: "orange",
	},
	DefaultColor: "red",
}

var Providers = Schema{
	Entity: "providers",
	Fields: []Field{
		{Name: "nombre", Type: TypeText, Required: true},
		{Name: "contacto", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Required: true},
		{Name: "rubro", Type: TypeText, Required: true},
	},
}

var Employments = Schema{
	Entity: "employments",
	Fields: []Field{
		{Name: "nombre", Type: TypeText, Required: true},
		{Name: "puesto", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Required: true},
		{Name: "estado", Type: TypeEnum, Required: true,
			Enum: []string{entity.EmpleadoActivo, entity.EmpleadoVacaciones, entity.EmpleadoInactivo}},
	},
	StatusField: "estado",
	StatusColors: map[string]string{
		entity.EmpleadoActivo:     "green",
		entity.EmpleadoVacaciones: "blue",
	},
	DefaultColor: "red",
}

var Customers = Schema{
	Entity: "customers",
	Fields: []Field{
		{Name: "nombre", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Required: true},
		{Name: "ultimaCompra", Type: TypeText, Required: true},
		{Name: "totalGastado", Type: TypeMoney, Required: true},
	},
}

var Admins = Schema{
	Entity: "admins",
	Fields: []Field{
		{Name: "nombre", Type: TypeText, Required: true},
		{Name: "email", Type: TypeText, Required: true},
		{Name: "rol", Type: TypeEnum, Required: true,
			Enum: []string{entity.RolAdmin, entity.RolInvitado}},
		{Name: "telefono", Type: TypeText},
		{Name: "departamento", Type: TypeText},
		{Name: "fechaRegistro", Type: TypeText},
	},
	StatusField: "rol",
	StatusColors: map[string]string{
		entity.RolAdmin: "red",
	},
	DefaultColor: "blue",
}

var Stats = Schema{
	Entity: "stats",
	Fields: []Field{
		{Name: "nombre", Type: TypeText, Required: true},
		{Name: "valor", Type: TypeNumber, Required: true},
		{Name: "unidad", Type: TypeText},
	},
}
