// Package schema define el descriptor de campos de cada pantalla del panel:
// nombre, tipo, obligatoriedad y enumeración. Un único esquema por entidad
// gobierna la validación de formularios, las columnas ordenables y el color
// de presentación de los estados.
package schema

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FieldType tipo de un campo de formulario.
type FieldType string

const (
	TypeText   FieldType = "text"
	TypeNumber FieldType = "number"
	TypeMoney  FieldType = "money"
	TypeEnum   FieldType = "enum"
)

// Field descriptor de un campo: nombre de formulario, tipo, obligatoriedad
// y valores permitidos si es enumerado.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Enum     []string
}

// Issue señala un campo requerido faltante o un valor fuera de enumeración.
type Issue struct {
	Campo   string `json:"campo"`
	Mensaje string `json:"mensaje"`
}

// Schema esquema de una entidad: lista ordenada y fija de campos, más el
// mapa de colores de presentación del campo de estado (si lo hay).
type Schema struct {
	Entity       string
	Fields       []Field
	StatusField  string
	StatusColors map[string]string // valor → color; cualquier otro valor usa DefaultColor
	DefaultColor string
}

// Validate recorre el esquema contra los valores del borrador y devuelve
// todos los problemas encontrados. Lista vacía significa borrador válido;
// la validación es todo-o-nada, el guardado parcial no existe.
func (s Schema) Validate(values map[string]any) []Issue {
	var issues []Issue
	for _, f := range s.Fields {
		v, ok := values[f.Name]
		if !ok || v == nil {
			if f.Required {
				issues = append(issues, Issue{Campo: f.Name, Mensaje: "requerido"})
			}
			continue
		}
		switch f.Type {
		case TypeText:
			str, _ := v.(string)
			if f.Required && str == "" {
				issues = append(issues, Issue{Campo: f.Name, Mensaje: "requerido"})
			}
		case TypeNumber, TypeMoney:
			if f.Required && !isNumeric(v) {
				issues = append(issues, Issue{Campo: f.Name, Mensaje: "debe ser numérico"})
			}
		case TypeEnum:
			str, _ := v.(string)
			if str == "" {
				if f.Required {
					issues = append(issues, Issue{Campo: f.Name, Mensaje: "requerido"})
				}
				continue
			}
			if !contains(f.Enum, str) {
				issues = append(issues, Issue{
					Campo:   f.Name,
					Mensaje: fmt.Sprintf("valor fuera de la enumeración %v", f.Enum),
				})
			}
		}
	}
	return issues
}

// SortableField informa si el campo existe en el esquema y es numérico
// (las tablas solo ordenan por columnas numéricas como cantidad o monto).
func (s Schema) SortableField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type == TypeNumber || f.Type == TypeMoney
		}
	}
	return false
}

// StatusColor devuelve el color de presentación para un valor del campo de
// estado (ej. "Pagada"→green, "Pendiente"→orange, cualquier otro→red).
func (s Schema) StatusColor(value string) string {
	if c, ok := s.StatusColors[value]; ok {
		return c
	}
	return s.DefaultColor
}

// NumericValue convierte el valor de un campo numérico a float64 para
// comparación de orden. Devuelve false si el valor no es numérico.
func NumericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	default:
		return 0, false
	}
}

func isNumeric(v any) bool {
	_, ok := NumericValue(v)
	return ok
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
