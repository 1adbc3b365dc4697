package repository

import "github.com/tu-usuario/inventrack/internal/domain/entity"

// NotificationFilter criterios de listado de notificaciones de un usuario.
type NotificationFilter struct {
	IsRead *bool
	Type   string
	Limit  int
}

// NotificationRepository define el puerto de persistencia para Notification (DIP).
// Las operaciones de lectura/marcado siempre están acotadas al usuario dueño.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListByUser(userID string, filter NotificationFilter) ([]*entity.Notification, error)
	CountUnread(userID string) (int64, error)
	// MarkRead marca como leída una notificación del usuario; devuelve
	// domain.ErrNotFound si no existe o pertenece a otro usuario.
	MarkRead(id, userID string) error
	MarkAllRead(userID string) error
	Delete(id, userID string) error
}
