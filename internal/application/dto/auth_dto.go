package dto

import "time"

// RegisterRequest body para POST /api/auth/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"` // por defecto viewer
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NotificationPrefsDTO preferencias de notificación.
type NotificationPrefsDTO struct {
	Email    bool `json:"email"`
	Browser  bool `json:"browser"`
	LowStock bool `json:"low_stock"`
	Expiry   bool `json:"expiry"`
}

// UserResponse usuario sin credenciales.
type UserResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Email         string               `json:"email"`
	Role          string               `json:"role"`
	Theme         string               `json:"theme"`
	Notifications NotificationPrefsDTO `json:"notifications"`
	CreatedAt     time.Time            `json:"created_at"`
}

// LoginResponse token JWT + usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
