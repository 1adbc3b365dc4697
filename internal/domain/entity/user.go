package entity

import "time"

// Roles válidos para User.
const (
	RoleViewer  = "viewer"
	RoleManager = "manager"
	RoleAdmin   = "admin"
)

// NotificationPrefs preferencias de notificación del usuario.
type NotificationPrefs struct {
	Email    bool
	Browser  bool
	LowStock bool
	Expiry   bool
}

// DefaultNotificationPrefs todas las alertas activas.
func DefaultNotificationPrefs() NotificationPrefs {
	return NotificationPrefs{Email: true, Browser: true, LowStock: true, Expiry: true}
}

// User representa un usuario del sistema.
type User struct {
	ID            string
	Name          string
	Email         string
	PasswordHash  string // bcrypt hash, nunca plano en dominio después de persistir
	Role          string // viewer, manager, admin
	Theme         string // light, dark
	Notifications NotificationPrefs
	CreatedAt     time.Time
}
