package usecase

import (
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

// NotificationUseCase lectura y marcado de notificaciones del usuario autenticado.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// List devuelve las notificaciones del usuario junto con el conteo de no leídas.
func (uc *NotificationUseCase) List(userID string, filter repository.NotificationFilter) (*dto.NotificationListResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	notifications, err := uc.repo.ListByUser(userID, filter)
	if err != nil {
		return nil, err
	}
	unread, err := uc.repo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, dto.NotificationResponse{
			ID:               n.ID,
			Type:             n.Type,
			Title:            n.Title,
			Message:          n.Message,
			RelatedProductID: n.RelatedProductID,
			IsRead:           n.IsRead,
			CreatedAt:        n.CreatedAt,
		})
	}
	return &dto.NotificationListResponse{Items: items, UnreadCount: unread}, nil
}

// UnreadCount conteo de no leídas del usuario.
func (uc *NotificationUseCase) UnreadCount(userID string) (int64, error) {
	return uc.repo.CountUnread(userID)
}

// MarkRead marca una notificación del usuario como leída.
func (uc *NotificationUseCase) MarkRead(id, userID string) error {
	return uc.repo.MarkRead(id, userID)
}

// MarkAllRead marca todas las notificaciones del usuario como leídas.
func (uc *NotificationUseCase) MarkAllRead(userID string) error {
	return uc.repo.MarkAllRead(userID)
}

// Delete borra una notificación del usuario.
func (uc *NotificationUseCase) Delete(id, userID string) error {
	return uc.repo.Delete(id, userID)
}
