package entity

import "time"

// Category representa una categoría de productos. Cada producto referencia
// exactamente una; no se puede borrar mientras tenga productos asociados.
type Category struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
