package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventrack/internal/application/usecase"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
)

func notif(id, userID string, read bool) *entity.Notification {
	return &entity.Notification{
		ID:     id,
		UserID: userID,
		Type:   entity.NotificationLowStock,
		Title:  "Stock bajo",
		IsRead: read,
	}
}

func TestNotificationList_SoloDelUsuarioConConteo(t *testing.T) {
	repo := newFakeNotificationRepo(
		notif("n1", "u1", false),
		notif("n2", "u1", true),
		notif("n3", "u2", false),
	)
	uc := usecase.NewNotificationUseCase(repo)

	out, err := uc.List("u1", repository.NotificationFilter{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 2, "las de otros usuarios no aparecen")
	assert.Equal(t, int64(1), out.UnreadCount)
}

func TestNotificationList_FiltroNoLeidas(t *testing.T) {
	repo := newFakeNotificationRepo(notif("n1", "u1", false), notif("n2", "u1", true))
	uc := usecase.NewNotificationUseCase(repo)

	unread := false
	out, err := uc.List("u1", repository.NotificationFilter{IsRead: &unread})
	require.NoError(t, err)

	require.Len(t, out.Items, 1)
	assert.Equal(t, "n1", out.Items[0].ID)
}

func TestNotificationMarkRead_DeOtroUsuarioNoExiste(t *testing.T) {
	repo := newFakeNotificationRepo(notif("n1", "u1", false))
	uc := usecase.NewNotificationUseCase(repo)

	err := uc.MarkRead("n1", "u2")
	require.ErrorIs(t, err, domain.ErrNotFound,
		"una notificación ajena se comporta como inexistente")

	require.NoError(t, uc.MarkRead("n1", "u1"))
	count, _ := uc.UnreadCount("u1")
	assert.Equal(t, int64(0), count)
}

func TestNotificationMarkAllRead(t *testing.T) {
	repo := newFakeNotificationRepo(
		notif("n1", "u1", false),
		notif("n2", "u1", false),
		notif("n3", "u2", false),
	)
	uc := usecase.NewNotificationUseCase(repo)

	require.NoError(t, uc.MarkAllRead("u1"))

	count, _ := uc.UnreadCount("u1")
	assert.Equal(t, int64(0), count)
	other, _ := uc.UnreadCount("u2")
	assert.Equal(t, int64(1), other, "solo afecta al usuario indicado")
}

func TestNotificationDelete_AcotadoAlUsuario(t *testing.T) {
	repo := newFakeNotificationRepo(notif("n1", "u1", false))
	uc := usecase.NewNotificationUseCase(repo)

	require.ErrorIs(t, uc.Delete("n1", "u2"), domain.ErrNotFound)
	require.NoError(t, uc.Delete("n1", "u1"))
}
