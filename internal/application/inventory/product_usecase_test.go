package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/apptest"
	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/inventory"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

func newProductUseCase(t *testing.T) (*inventory.ProductUseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	uc := inventory.NewProductUseCase(
		apptest.TxRunner{S: store},
		&apptest.ProductRepo{S: store},
		&apptest.MovementRepo{S: store},
		nil,
	)
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Cadastro com quantidade inicial gera movimentação de entrada.
func TestProductCreate_CadastroInicialGeraMovimentacao(t *testing.T) {
	uc, store := newProductUseCase(t)

	resp, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:      "Cimento 50kg",
		Quantity:  decimal.NewFromInt(30),
		SalePrice: decimal.NewFromFloat(34.90),
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Geral", resp.Category, "categoria ausente vira Geral")
	assert.Equal(t, "un", resp.Unit, "unidade ausente vira un")
	assert.True(t, resp.Active)

	require.Len(t, store.Movements, 1)
	mov := store.Movements[0]
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, "Cadastro inicial", mov.Reason)
	assert.True(t, mov.NewQty.Equal(decimal.NewFromInt(30)))
}

// Cadastro com quantidade zero não gera movimentação.
func TestProductCreate_SemEstoqueInicialSemMovimentacao(t *testing.T) {
	uc, store := newProductUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cal 20kg"})
	require.NoError(t, err)
	assert.Empty(t, store.Movements)
}

// Nome duplicado é rejeitado.
func TestProductCreate_NomeDuplicado(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cimento 50kg"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cimento 50kg"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_Validacao(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome com menos de 2 caracteres")

	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name:      "Areia m3",
		SalePrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo")
}

// ──────────────────────────────────────────────────────────────────────────────
// AdjustStock
// ──────────────────────────────────────────────────────────────────────────────

// O ajuste define a quantidade absoluta e grava a movimentação com antes/depois.
func TestAdjustStock_DefineQuantidadeAbsoluta(t *testing.T) {
	uc, store := newProductUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Tijolo milheiro",
		Quantity: decimal.NewFromInt(12),
	})
	require.NoError(t, err)

	resp, err := uc.AdjustStock(context.Background(), created.ID, dto.AdjustStockRequest{
		Quantity: decimal.NewFromInt(5),
		Reason:   "contagem física",
	})
	require.NoError(t, err)

	assert.True(t, resp.Quantity.Equal(decimal.NewFromInt(5)))
	assert.True(t, store.Products[created.ID].Quantity.Equal(decimal.NewFromInt(5)))

	require.Len(t, store.Movements, 2, "cadastro inicial + ajuste")
	mov := store.Movements[1]
	assert.Equal(t, entity.MovementTypeAdjust, mov.Type)
	assert.Equal(t, "contagem física", mov.Reason)
	assert.True(t, mov.PreviousQty.Equal(decimal.NewFromInt(12)))
	assert.True(t, mov.NewQty.Equal(decimal.NewFromInt(5)))
	assert.True(t, mov.Quantity.Equal(decimal.NewFromInt(7)), "delta absoluto")
}

func TestAdjustStock_MotivoPadrao(t *testing.T) {
	uc, store := newProductUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cal 20kg"})
	require.NoError(t, err)

	_, err = uc.AdjustStock(context.Background(), created.ID, dto.AdjustStockRequest{
		Quantity: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ajuste manual", store.Movements[0].Reason)
}

func TestAdjustStock_QuantidadeNegativa(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.AdjustStock(context.Background(), "qualquer", dto.AdjustStockRequest{
		Quantity: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdjustStock_ProdutoInexistente(t *testing.T) {
	uc, _ := newProductUseCase(t)
	_, err := uc.AdjustStock(context.Background(), "nao-existe", dto.AdjustStockRequest{
		Quantity: decimal.NewFromInt(1),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / List
// ──────────────────────────────────────────────────────────────────────────────

// Update não altera a quantidade mesmo que o produto tenha estoque.
func TestProductUpdate_NaoTocaQuantidade(t *testing.T) {
	uc, store := newProductUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Cimento 50kg",
		Quantity: decimal.NewFromInt(30),
	})
	require.NoError(t, err)

	novoPreco := decimal.NewFromFloat(36.90)
	resp, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SalePrice: &novoPreco,
	})
	require.NoError(t, err)

	assert.True(t, resp.SalePrice.Equal(novoPreco))
	assert.True(t, store.Products[created.ID].Quantity.Equal(decimal.NewFromInt(30)))
	assert.Len(t, store.Movements, 1, "nenhuma movimentação nova")
}

// Renomear para um nome já usado é rejeitado.
func TestProductUpdate_RenomearParaNomeExistente(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cimento 50kg"})
	require.NoError(t, err)
	outro, err := uc.Create(context.Background(), dto.CreateProductRequest{Name: "Cal 20kg"})
	require.NoError(t, err)

	nome := "Cimento 50kg"
	_, err = uc.Update(context.Background(), outro.ID, dto.UpdateProductRequest{Name: &nome})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// Filtros de listagem: busca por texto, categoria e estoque baixo.
func TestProductList_Filtros(t *testing.T) {
	uc, _ := newProductUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Cimento 50kg",
		Category: "Básicos",
		Quantity: decimal.NewFromInt(2),
		MinStock: decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Tinta acrílica 18L",
		Category: "Tintas",
		Quantity: decimal.NewFromInt(50),
		MinStock: decimal.NewFromInt(5),
	})
	require.NoError(t, err)

	all, err := uc.List(context.Background(), dto.ProductListFilters{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	porTexto, err := uc.List(context.Background(), dto.ProductListFilters{Search: "tinta"})
	require.NoError(t, err)
	require.Len(t, porTexto, 1)
	assert.Equal(t, "Tinta acrílica 18L", porTexto[0].Name)

	porCategoria, err := uc.List(context.Background(), dto.ProductListFilters{Category: "básicos"})
	require.NoError(t, err)
	require.Len(t, porCategoria, 1)
	assert.Equal(t, "Cimento 50kg", porCategoria[0].Name)

	baixoEstoque, err := uc.List(context.Background(), dto.ProductListFilters{LowStock: true})
	require.NoError(t, err)
	require.Len(t, baixoEstoque, 1)
	assert.Equal(t, "Cimento 50kg", baixoEstoque[0].Name)
	assert.True(t, baixoEstoque[0].LowStock)
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentações
// ──────────────────────────────────────────────────────────────────────────────

// O histórico sobrevive à exclusão do produto.
func TestMovements_SobrevivemAoProduto(t *testing.T) {
	uc, _ := newProductUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:     "Cimento 50kg",
		Quantity: decimal.NewFromInt(30),
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(context.Background(), created.ID))

	movs, err := uc.MovementsByProduct(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Len(t, movs, 1, "a movimentação de cadastro inicial permanece")
}
