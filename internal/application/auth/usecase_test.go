package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/inventrack/internal/application/auth"
	"github.com/tu-usuario/inventrack/internal/application/dto"
	"github.com/tu-usuario/inventrack/internal/domain"
	"github.com/tu-usuario/inventrack/internal/domain/entity"
	"github.com/tu-usuario/inventrack/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type memoryUserRepo struct {
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entity.User)}
}

func (m *memoryUserRepo) Create(u *entity.User) error {
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memoryUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (m *memoryUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memoryUserRepo) Update(u *entity.User) error {
	if _, ok := m.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memoryUserRepo) List() ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(m.users))
	for _, u := range m.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

var testJWT = auth.JWTConfig{Secret: "secret-de-test", ExpMinutes: 60, Issuer: "inventrack-test"}

func buildAuth() (*auth.AuthUseCase, *memoryUserRepo) {
	repo := newMemoryUserRepo()
	return auth.NewAuthUseCase(repo, testJWT, nil), repo
}

func TestRegister_CreaUsuarioConDefaults(t *testing.T) {
	uc, repo := buildAuth()

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "secreta123",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.RoleViewer, out.Role, "sin rol explícito el default es viewer")
	assert.Equal(t, "light", out.Theme)
	assert.True(t, out.Notifications.LowStock, "las alertas arrancan activas")
	assert.Equal(t, "ana@tienda.com", out.Name, "sin nombre se usa el email")

	stored, _ := repo.FindByEmail("ana@tienda.com")
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash, "el password nunca se guarda en claro")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta123")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "otra456"})
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInvalido(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "secreta123",
		Role:     "root",
	})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegister_SinCredencialesInvalido(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Register(dto.RegisterRequest{Email: "", Password: "x"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(dto.RegisterRequest{Email: "a@b.com", Password: ""})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_TokenValidoConClaims(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "secreta123",
		Role:     entity.RoleManager,
	})
	require.NoError(t, err)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@tienda.com",
		Password: "secreta123",
	})

	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, "ana@tienda.com", out.User.Email)

	userID, role, err := jwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleManager, role)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuth()
	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@tienda.com",
		Password: "equivocada",
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@tienda.com",
		Password: "x",
	})
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUpdatePreferences_TemaYNotificaciones(t *testing.T) {
	uc, _ := buildAuth()
	created, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	dark := "dark"
	out, err := uc.UpdatePreferences(created.ID, &dark, &dto.NotificationPrefsDTO{
		Email: true, Browser: false, LowStock: false, Expiry: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "dark", out.Theme)
	assert.False(t, out.Notifications.LowStock)
	assert.True(t, out.Notifications.Expiry)
}

func TestUpdatePreferences_TemaInvalido(t *testing.T) {
	uc, _ := buildAuth()
	created, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "secreta123"})
	require.NoError(t, err)

	rosa := "rosa"
	_, err = uc.UpdatePreferences(created.ID, &rosa, nil)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMe_UsuarioInexistente(t *testing.T) {
	uc, _ := buildAuth()

	_, err := uc.Me("no-existe")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
