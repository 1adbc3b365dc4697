package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/internal/domain/repository"
	"github.com/tu-usuario/inventrack/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y perfil.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	auditor  *audit.Recorder
}

// NewAuthUseCase construye el caso de uso de auth. auditor puede ser nil.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, auditor *audit.Recorder) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, auditor: auditor}
}

// Register crea un usuario: hashea password con bcrypt y persiste.
// Devuelve ErrEmailAlreadyExists si el email ya está registrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	role := in.Role
	if role == "" {
		role = entity.RoleViewer
	}
	if role != entity.RoleViewer && role != entity.RoleManager && role != entity.RoleAdmin {
		return nil, domain.ErrInvalidInput
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:            uuid.New().String(),
		Name:          name,
		Email:         in.Email,
		PasswordHash:  string(hash),
		Role:          role,
		Theme:         "light",
		Notifications: entity.DefaultNotificationPrefs(),
		CreatedAt:     time.Now(),
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	if uc.auditor != nil {
		uc.auditor.Record(ctx, audit.Entry{
			UserID:      user.ID,
			Action:      entity.ActionLogin,
			Entity:      entity.EntityUser,
			EntityID:    user.ID,
			Description: "Inicio de sesión",
		})
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Me devuelve el perfil del usuario autenticado.
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

// UpdatePreferences actualiza tema y preferencias de notificación del usuario.
func (uc *AuthUseCase) UpdatePreferences(userID string, theme *string, prefs *dto.NotificationPrefsDTO) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if theme != nil {
		if *theme != "light" && *theme != "dark" {
			return nil, domain.ErrInvalidInput
		}
		user.Theme = *theme
	}
	if prefs != nil {
		user.Notifications = entity.NotificationPrefs{
			Email:    prefs.Email,
			Browser:  prefs.Browser,
			LowStock: prefs.LowStock,
			Expiry:   prefs.Expiry,
		}
	}
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
		Theme: u.Theme,
		Notifications: dto.NotificationPrefsDTO{
			Email:    u.Notifications.Email,
			Browser:  u.Notifications.Browser,
			LowStock: u.Notifications.LowStock,
			Expiry:   u.Notifications.Expiry,
		},
		CreatedAt: u.CreatedAt,
	}
}
