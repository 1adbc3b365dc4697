package repository

import (
	"time"

	"github.com/tu-usuario/inventrack/internal/domain/entity"
)

// MovementFilter criterios de listado de movimientos.
type MovementFilter struct {
	ProductID string
	Type      string
	From      *time.Time
	To        *time.Time
	Limit     int
}

// StockMovementRepository define el puerto de persistencia para movimientos (DIP).
// El libro de movimientos es append-only: no hay Update ni Delete.
type StockMovementRepository interface {
	Create(movement *entity.StockMovement) error
	GetByID(id string) (*entity.StockMovement, error)
	// List devuelve movimientos que cumplen el filtro, más recientes primero.
	List(filter MovementFilter) ([]*entity.StockMovement, error)
	ListByProduct(productID string) ([]*entity.StockMovement, error)
}
