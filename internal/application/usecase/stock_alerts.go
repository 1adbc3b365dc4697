package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
	"github.com/tu-usuario/inventrack/pkg/logger"
)

// StockAlertService genera notificaciones low-stock / out-of-stock cuando un
// movimiento hace cruzar el umbral hacia abajo. Best-effort: los fallos se
// loguean y nunca interrumpen el flujo del movimiento.
type StockAlertService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	log              *logger.Logger
}

func NewStockAlertService(notificationRepo repository.NotificationRepository, userRepo repository.UserRepository, log *logger.Logger) *StockAlertService {
	return &StockAlertService{notificationRepo: notificationRepo, userRepo: userRepo, log: log}
}

// StockChanged evalúa el cruce de umbral tras un movimiento. Solo notifica en
// el cruce (no en cada movimiento bajo el umbral) para no inundar al usuario.
func (s *StockAlertService) StockChanged(_ context.Context, product *entity.Product, previousQuantity int64) {
	var notifType, title, message string
	switch {
	case product.Quantity == 0 && previousQuantity > 0:
		notifType = entity.NotificationOutOfStock
		title = "Producto agotado"
		message = fmt.Sprintf("%s se quedó sin stock", product.Name)
	// Mismo criterio estricto que Product.IsLowStock: quedar justo en el
	// umbral todavía no es stock bajo.
	case product.Quantity < product.LowStockThreshold && previousQuantity >= product.LowStockThreshold:
		notifType = entity.NotificationLowStock
		title = "Stock bajo"
		message = fmt.Sprintf("%s tiene %d unidades (umbral: %d)", product.Name, product.Quantity, product.LowStockThreshold)
	default:
		return
	}

	users, err := s.userRepo.List()
	if err != nil {
		s.log.Warn().Err(err).Str("product_id", product.ID).Msg("no se pudieron listar usuarios para alertas de stock")
		return
	}
	for _, u := range users {
		if !u.Notifications.LowStock {
			continue
		}
		n := &entity.Notification{
			ID:               uuid.New().String(),
			UserID:           u.ID,
			Type:             notifType,
			Title:            title,
			Message:          message,
			RelatedProductID: product.ID,
			CreatedAt:        time.Now(),
		}
		if err := s.notificationRepo.Create(n); err != nil {
			s.log.Warn().Err(err).Str("user_id", u.ID).Str("product_id", product.ID).Msg("no se pudo crear la notificación de stock")
		}
	}
}
