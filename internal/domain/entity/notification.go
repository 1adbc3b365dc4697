package entity

import "time"

// Tipos de notificación.
const (
	NotificationLowStock   = "low-stock"
	NotificationOutOfStock = "out-of-stock"
	NotificationExpiry     = "expiry"
	NotificationSystem     = "system"
)

// Notification aviso dirigido a un usuario, generado por el libro de movimientos
// cuando un producto cruza su umbral de stock.
type Notification struct {
	ID               string
	UserID           string
	Type             string
	Title            string
	Message          string
	RelatedProductID string // vacío si no aplica
	IsRead           bool
	CreatedAt        time.Time
}
