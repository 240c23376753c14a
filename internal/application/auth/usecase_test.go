package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/apptest"
	"github.com/seu-usuario/gestor-deposito/internal/application/auth"
	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	pkgjwt "github.com/seu-usuario/gestor-deposito/pkg/jwt"
)

const testSecret = "segredo-de-teste-nao-usar-em-producao"

func newUseCase(t *testing.T) (*auth.UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	uc := auth.NewUseCase(&apptest.UserRepo{S: store}, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "gestor-deposito-test",
	})
	return uc, store
}

func TestRegister_HashEPapelPadrao(t *testing.T) {
	uc, store := newUseCase(t)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name:     "Ana Lima",
		Email:    "Ana@Deposito.com",
		Password: "senha-forte",
	})
	require.NoError(t, err)

	assert.Equal(t, "ana@deposito.com", resp.Email, "email normalizado para minúsculas")
	assert.Equal(t, entity.RoleOperator, resp.Role, "papel ausente vira operador")
	assert.True(t, resp.Active)

	stored := store.Users[resp.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "senha-forte", stored.PasswordHash, "a senha nunca é guardada em claro")
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana Lima", Email: "ana@deposito.com", Password: "senha-forte",
	})
	require.NoError(t, err)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Outra Ana", Email: "ANA@deposito.com", Password: "outra-senha",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_Validacao(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana", Email: "nao-e-email", Password: "senha-forte",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana", Email: "ana@deposito.com", Password: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "senha curta demais")
}

func TestLogin_EmiteTokenComPapel(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana Lima", Email: "ana@deposito.com", Password: "senha-forte", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@deposito.com", Password: "senha-forte",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	userID, role, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_SenhaErrada(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana Lima", Email: "ana@deposito.com", Password: "senha-forte",
	})
	require.NoError(t, err)

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@deposito.com", Password: "senha-errada",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email: "ninguem@deposito.com", Password: "qualquer",
	})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioDesativado(t *testing.T) {
	uc, store := newUseCase(t)

	resp, err := uc.Register(context.Background(), dto.RegisterRequest{
		Name: "Ana Lima", Email: "ana@deposito.com", Password: "senha-forte",
	})
	require.NoError(t, err)
	store.Users[resp.ID].Active = false

	_, err = uc.Login(context.Background(), dto.LoginRequest{
		Email: "ana@deposito.com", Password: "senha-forte",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
