package entity

// Record lo implementan los registros de colección del panel.
// El ID lo asigna el sistema al crear y nunca se reutiliza; WithID devuelve
// una copia con el ID asignado para conservar semántica de valor en las
// colecciones. Values expone los campos con su nombre de formulario, que es
// lo que valida el esquema y ordenan las tablas.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Values() map[string]any
}
