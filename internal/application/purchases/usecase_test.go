package purchases_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/apptest"
	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/purchases"
	"github.com/seu-usuario/gestor-deposito/internal/application/sales"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/pkg/config"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newUseCase(t *testing.T, matchMode string) (*purchases.UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	uc := purchases.NewUseCase(apptest.TxRunner{S: store}, &apptest.PurchaseRepo{S: store}, nil, matchMode)
	return uc, store
}

func seedProduct(store *apptest.Store, id, name string, qty int64, purchasePrice float64) {
	store.Products[id] = &entity.Product{
		ID:            id,
		Name:          name,
		Category:      "Geral",
		Quantity:      decimal.NewFromInt(qty),
		PurchasePrice: decimal.NewFromFloat(purchasePrice),
		SalePrice:     decimal.NewFromFloat(purchasePrice * 2),
		Active:        true,
	}
}

func purchaseRequest(items ...dto.PurchaseItemRequest) dto.CreatePurchaseRequest {
	return dto.CreatePurchaseRequest{
		Supplier:     "Votorantim",
		PurchaseDate: time.Now(),
		Items:        items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

// Item com nome de produto já cadastrado: soma a quantidade e sobrescreve o
// preço de compra.
func TestCreate_CasaProdutoPorNome(t *testing.T) {
	uc, store := newUseCase(t, "")
	seedProduct(store, "p1", "Cimento 50kg", 10, 28)

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Cimento 50kg",
		Quantity:      decimal.NewFromInt(40),
		PurchasePrice: decimal.NewFromFloat(26.90),
		SalePrice:     decimal.NewFromFloat(34.90),
	}))
	require.NoError(t, err)
	require.NotNil(t, resp)

	p := store.Products["p1"]
	assert.True(t, p.Quantity.Equal(decimal.NewFromInt(50)), "10 + 40 = 50")
	assert.True(t, p.PurchasePrice.Equal(decimal.NewFromFloat(26.90)),
		"preço de compra deve ser sobrescrito")
	assert.True(t, p.SalePrice.Equal(decimal.NewFromFloat(34.90)),
		"preço de venda informado deve ser sobrescrito")

	require.Len(t, store.Movements, 1)
	mov := store.Movements[0]
	assert.Equal(t, entity.MovementTypeEntry, mov.Type)
	assert.Equal(t, "Compra #"+resp.Code, mov.Reason)
	assert.Equal(t, resp.ID, mov.PurchaseID)
}

// Item sem produto correspondente: a compra cria o cadastro, com categoria
// "Geral" quando não informada.
func TestCreate_PrimeiroCadastroCriaProduto(t *testing.T) {
	uc, store := newUseCase(t, "")

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Vergalhão 10mm",
		Quantity:      decimal.NewFromInt(100),
		PurchasePrice: decimal.NewFromFloat(38.50),
		SalePrice:     decimal.NewFromFloat(52.00),
	}))
	require.NoError(t, err)

	require.Len(t, store.Products, 1)
	var created *entity.Product
	for _, p := range store.Products {
		created = p
	}
	assert.Equal(t, "Vergalhão 10mm", created.Name)
	assert.Equal(t, "Geral", created.Category, "categoria ausente vira Geral")
	assert.Equal(t, "Votorantim", created.Supplier, "fornecedor vem da compra")
	assert.True(t, created.Quantity.Equal(decimal.NewFromInt(100)))
	assert.True(t, created.Active)

	require.Len(t, store.Movements, 1)
	mov := store.Movements[0]
	assert.Equal(t, "Compra #"+resp.Code+" (Primeiro cadastro)", mov.Reason)
	assert.True(t, mov.PreviousQty.IsZero())
	assert.True(t, mov.NewQty.Equal(decimal.NewFromInt(100)))
}

// O casamento por nome é por igualdade exata: variação de caixa não casa e
// gera um cadastro novo.
func TestCreate_NomeDiferenteNaoCasa(t *testing.T) {
	uc, store := newUseCase(t, "")
	seedProduct(store, "p1", "Cimento 50kg", 10, 28)

	_, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "cimento 50kg",
		Quantity:      decimal.NewFromInt(5),
		PurchasePrice: decimal.NewFromInt(27),
	}))
	require.NoError(t, err)

	assert.Len(t, store.Products, 2, "nome com caixa diferente cria outro produto")
	assert.True(t, store.Products["p1"].Quantity.Equal(decimal.NewFromInt(10)),
		"o produto original não é tocado")
}

// No modo por ID, o item com product_id casa direto pelo ID mesmo que o nome
// esteja digitado diferente.
func TestCreate_ModoPorID(t *testing.T) {
	uc, store := newUseCase(t, config.PurchaseMatchByID)
	seedProduct(store, "p1", "Cimento 50kg", 10, 28)

	_, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductID:     "p1",
		ProductName:   "Cimento CP-II 50kg",
		Quantity:      decimal.NewFromInt(20),
		PurchasePrice: decimal.NewFromInt(27),
	}))
	require.NoError(t, err)

	assert.Len(t, store.Products, 1, "não deve criar produto novo")
	assert.True(t, store.Products["p1"].Quantity.Equal(decimal.NewFromInt(30)))
}

// O total é calculado no servidor: soma de quantidade x preço de compra.
func TestCreate_TotalCalculadoDosItens(t *testing.T) {
	uc, _ := newUseCase(t, "")

	resp, err := uc.Create(context.Background(), purchaseRequest(
		dto.PurchaseItemRequest{ProductName: "Cal 20kg", Quantity: decimal.NewFromInt(10), PurchasePrice: decimal.NewFromFloat(8.50)},
		dto.PurchaseItemRequest{ProductName: "Areia m3", Quantity: decimal.NewFromInt(2), PurchasePrice: decimal.NewFromInt(60)},
	))
	require.NoError(t, err)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(205)), "10x8,50 + 2x60 = 205")
}

func TestCreate_ValidacaoDeEntrada(t *testing.T) {
	uc, _ := newUseCase(t, "")

	_, err := uc.Create(context.Background(), purchaseRequest())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "compra sem itens deve falhar")

	req := purchaseRequest(dto.PurchaseItemRequest{ProductName: "X", Quantity: decimal.NewFromInt(-1), PurchasePrice: decimal.NewFromInt(1)})
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "quantidade negativa deve falhar")

	req = purchaseRequest(dto.PurchaseItemRequest{ProductName: "X", Quantity: decimal.NewFromInt(1), PurchasePrice: decimal.NewFromInt(1)})
	req.Supplier = ""
	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fornecedor é obrigatório")
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete
// ──────────────────────────────────────────────────────────────────────────────

// Excluir a compra desfaz a entrada com clamp em zero e gera saída.
func TestDelete_DesfazEntradaComClamp(t *testing.T) {
	uc, store := newUseCase(t, "")
	seedProduct(store, "p1", "Cimento 50kg", 10, 28)

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Cimento 50kg",
		Quantity:      decimal.NewFromInt(40),
		PurchasePrice: decimal.NewFromInt(27),
	}))
	require.NoError(t, err)
	require.True(t, store.Products["p1"].Quantity.Equal(decimal.NewFromInt(50)))

	// Uma venda no meio tempo derruba o estoque abaixo da quantidade comprada.
	store.Products["p1"].Quantity = decimal.NewFromInt(30)

	require.NoError(t, uc.Delete(context.Background(), resp.ID))

	assert.True(t, store.Products["p1"].Quantity.IsZero(),
		"30 - 40 faz clamp em zero")
	assert.Empty(t, store.Purchases)
	require.Len(t, store.Movements, 2)
	estorno := store.Movements[1]
	assert.Equal(t, entity.MovementTypeExit, estorno.Type)
	assert.Equal(t, "Exclusão de Compra #"+resp.Code, estorno.Reason)
}

// Item cujo produto sumiu entre a compra e a exclusão é ignorado sem erro.
func TestDelete_ProdutoAusenteEIgnorado(t *testing.T) {
	uc, store := newUseCase(t, "")

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Telha colonial",
		Quantity:      decimal.NewFromInt(500),
		PurchasePrice: decimal.NewFromFloat(2.10),
	}))
	require.NoError(t, err)

	// Remove o produto criado pela compra.
	for id := range store.Products {
		delete(store.Products, id)
	}

	require.NoError(t, uc.Delete(context.Background(), resp.ID))
	assert.Empty(t, store.Purchases)
	assert.Len(t, store.Movements, 1, "sem produto não há movimentação de estorno")
}

func TestDelete_CompraInexistente(t *testing.T) {
	uc, _ := newUseCase(t, "")
	err := uc.Delete(context.Background(), "nao-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / List
// ──────────────────────────────────────────────────────────────────────────────

// Atualizar a compra não reprocessa o estoque.
func TestUpdate_NaoMexeNoEstoque(t *testing.T) {
	uc, store := newUseCase(t, "")
	seedProduct(store, "p1", "Cimento 50kg", 10, 28)

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Cimento 50kg",
		Quantity:      decimal.NewFromInt(40),
		PurchasePrice: decimal.NewFromInt(27),
	}))
	require.NoError(t, err)

	notas := "entrega parcial"
	updated, err := uc.Update(context.Background(), resp.ID, dto.UpdatePurchaseRequest{Notes: &notas})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "entrega parcial", updated.Notes)
	assert.True(t, store.Products["p1"].Quantity.Equal(decimal.NewFromInt(50)),
		"estoque permanece como ficou após a criação")
	assert.Len(t, store.Movements, 1)
}

// Itens reenviados recalculam o total no servidor; um total explícito enviado
// junto é ignorado. Sem itens, o total explícito vale.
func TestUpdate_ItensReenviadosIgnoramTotalDoCliente(t *testing.T) {
	uc, _ := newUseCase(t, "")

	resp, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Cal 20kg",
		Quantity:      decimal.NewFromInt(10),
		PurchasePrice: decimal.NewFromInt(8),
	}))
	require.NoError(t, err)

	totalForjado := decimal.NewFromInt(1)
	updated, err := uc.Update(context.Background(), resp.ID, dto.UpdatePurchaseRequest{
		Items: []dto.PurchaseItemRequest{
			{ProductName: "Cal 20kg", Quantity: decimal.NewFromInt(20), PurchasePrice: decimal.NewFromInt(8)},
		},
		Total: &totalForjado,
	})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(160)), "20 x 8, não o total enviado")

	ajuste := decimal.NewFromInt(150)
	updated, err = uc.Update(context.Background(), resp.ID, dto.UpdatePurchaseRequest{Total: &ajuste})
	require.NoError(t, err)
	assert.True(t, updated.Total.Equal(decimal.NewFromInt(150)), "sem itens o total explícito vale")
}

// A busca filtra por código ou fornecedor.
func TestList_FiltraPorCodigoOuFornecedor(t *testing.T) {
	uc, _ := newUseCase(t, "")

	req1 := purchaseRequest(dto.PurchaseItemRequest{ProductName: "Cal 20kg", Quantity: decimal.NewFromInt(1), PurchasePrice: decimal.NewFromInt(8)})
	req1.Supplier = "Votorantim"
	resp1, err := uc.Create(context.Background(), req1)
	require.NoError(t, err)

	req2 := purchaseRequest(dto.PurchaseItemRequest{ProductName: "Areia m3", Quantity: decimal.NewFromInt(1), PurchasePrice: decimal.NewFromInt(60)})
	req2.Supplier = "Mineradora Serra"
	_, err = uc.Create(context.Background(), req2)
	require.NoError(t, err)

	all, err := uc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	porFornecedor, err := uc.List(context.Background(), "serra")
	require.NoError(t, err)
	require.Len(t, porFornecedor, 1)
	assert.Equal(t, "Mineradora Serra", porFornecedor[0].Supplier)

	porCodigo, err := uc.List(context.Background(), resp1.Code)
	require.NoError(t, err)
	require.Len(t, porCodigo, 1)
	assert.Equal(t, resp1.ID, porCodigo[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Compra seguida de venda
// ──────────────────────────────────────────────────────────────────────────────

// Comprar Q de um produto ainda não cadastrado e vender Q em seguida deixa o
// estoque exatamente em zero, com uma entrada e uma saída registradas.
func TestCompraEntaoVendaZeraEstoque(t *testing.T) {
	uc, store := newUseCase(t, "")
	saleUC := sales.NewUseCase(apptest.TxRunner{S: store}, &apptest.SaleRepo{S: store}, nil, nil)

	_, err := uc.Create(context.Background(), purchaseRequest(dto.PurchaseItemRequest{
		ProductName:   "Argamassa AC-III",
		Quantity:      decimal.NewFromInt(7),
		PurchasePrice: decimal.NewFromFloat(18.90),
		SalePrice:     decimal.NewFromFloat(27.90),
	}))
	require.NoError(t, err)

	var produto *entity.Product
	for _, p := range store.Products {
		produto = p
	}
	require.NotNil(t, produto, "a compra deve ter criado o produto")
	require.True(t, produto.Quantity.Equal(decimal.NewFromInt(7)))

	_, err = saleUC.Create(context.Background(), dto.CreateSaleRequest{
		CustomerID:   "cli-1",
		CustomerName: "João da Silva",
		SaleDate:     time.Now(),
		Status:       entity.SaleStatusCompleted,
		Items: []dto.SaleItemRequest{
			{ProductID: produto.ID, Quantity: decimal.NewFromInt(7), UnitPrice: decimal.NewFromFloat(27.90)},
		},
	})
	require.NoError(t, err)

	assert.True(t, store.Products[produto.ID].Quantity.IsZero(),
		"compra de 7 seguida de venda de 7 termina em zero")
	require.Len(t, store.Movements, 2)
	assert.Equal(t, entity.MovementTypeEntry, store.Movements[0].Type)
	assert.Equal(t, entity.MovementTypeExit, store.Movements[1].Type)
}
