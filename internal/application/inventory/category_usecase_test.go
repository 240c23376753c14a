package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/apptest"
	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/inventory"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
)

func newCategoryUseCase(t *testing.T) *inventory.CategoryUseCase {
	t.Helper()
	store := apptest.NewStore()
	return inventory.NewCategoryUseCase(&apptest.CategoryRepo{S: store})
}

func TestCategoryCreate_CorPadrao(t *testing.T) {
	uc := newCategoryUseCase(t)

	resp, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tintas"})
	require.NoError(t, err)
	assert.Equal(t, "#3B82F6", resp.Color)
	assert.True(t, resp.Active)
}

func TestCategoryCreate_NomeDuplicado(t *testing.T) {
	uc := newCategoryUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tintas"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "tintas"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "duplicidade de categoria ignora caixa")
}

func TestCategoryCreate_CorInvalida(t *testing.T) {
	uc := newCategoryUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tintas", Color: "azul"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCategoryUpdateEList(t *testing.T) {
	uc := newCategoryUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Tintas"})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "Básicos"})
	require.NoError(t, err)

	cor := "#EF4444"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateCategoryRequest{Color: &cor})
	require.NoError(t, err)
	assert.Equal(t, "#EF4444", updated.Color)

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Básicos", list[0].Name, "ordenação por nome")
}

func TestCategoryUpdate_InexistenteRetornaNil(t *testing.T) {
	uc := newCategoryUseCase(t)
	resp, err := uc.Update(context.Background(), "nao-existe", dto.UpdateCategoryRequest{})
	require.NoError(t, err)
	assert.Nil(t, resp)
}
