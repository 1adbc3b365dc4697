package repository

import (
	"time"

	"github.com/tu-usuario/inventrack/internal/domain/entity"
)

// ActivityFilter criterios de consulta de la bitácora.
type ActivityFilter struct {
	UserID string
	Action string
	Entity string
	From   *time.Time
	To     *time.Time
	Limit  int
}

// ActivityLogRepository define el puerto de la bitácora de actividad (append-only).
type ActivityLogRepository interface {
	Create(log *entity.ActivityLog) error
	// List devuelve entradas que cumplen el filtro, más recientes primero.
	List(filter ActivityFilter) ([]*entity.ActivityLog, error)
	ListByEntity(entityKind, entityID string) ([]*entity.ActivityLog, error)
	ListByUser(userID string) ([]*entity.ActivityLog, error)
}
