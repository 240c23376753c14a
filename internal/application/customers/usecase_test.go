package customers_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/apptest"
	"github.com/seu-usuario/gestor-deposito/internal/application/customers"
	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

func newUseCase(t *testing.T) (*customers.UseCase, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	uc := customers.NewUseCase(&apptest.CustomerRepo{S: store}, &apptest.SaleRepo{S: store})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

// Máscaras de telefone, CPF e CEP são descartadas; fica só o dígito.
func TestCreate_NormalizaMascaras(t *testing.T) {
	uc, _ := newUseCase(t)

	resp, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:    "João da Silva",
		Phone:   "(74) 99123-4567",
		TaxID:   "123.456.789-09",
		ZipCode: "44900-000",
		State:   "ba",
	})
	require.NoError(t, err)

	assert.Equal(t, "74991234567", resp.Phone)
	assert.Equal(t, "12345678909", resp.TaxID)
	assert.Equal(t, "44900000", resp.ZipCode)
	assert.Equal(t, "BA", resp.State)
}

func TestCreate_TelefoneInvalido(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:  "João da Silva",
		Phone: "1234",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_CPFInvalido(t *testing.T) {
	uc, _ := newUseCase(t)
	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:  "João da Silva",
		TaxID: "123",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// CNPJ com 14 dígitos também é aceito.
func TestCreate_CNPJValido(t *testing.T) {
	uc, _ := newUseCase(t)
	resp, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name:  "Construtora Serra LTDA",
		TaxID: "12.345.678/0001-95",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345678000195", resp.TaxID)
}

func TestUpdate_NormalizaEValida(t *testing.T) {
	uc, _ := newUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Maria Souza"})
	require.NoError(t, err)

	telefone := "(74) 3641-1234"
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateCustomerRequest{Phone: &telefone})
	require.NoError(t, err)
	assert.Equal(t, "7436411234", updated.Phone)

	invalido := "99"
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateCustomerRequest{Phone: &invalido})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / History
// ──────────────────────────────────────────────────────────────────────────────

func TestList_BuscaPorNomeApelidoOuTelefone(t *testing.T) {
	uc, _ := newUseCase(t)

	_, err := uc.Create(context.Background(), dto.CreateCustomerRequest{
		Name: "João da Silva", Nickname: "Joca", Phone: "74991234567",
	})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "Maria Souza"})
	require.NoError(t, err)

	porApelido, err := uc.List(context.Background(), "joca")
	require.NoError(t, err)
	require.Len(t, porApelido, 1)
	assert.Equal(t, "João da Silva", porApelido[0].Name)

	porTelefone, err := uc.List(context.Background(), "99123")
	require.NoError(t, err)
	require.Len(t, porTelefone, 1)
}

// O histórico devolve no máximo 10 vendas, mais recentes primeiro.
func TestHistory_LimiteDezMaisRecentes(t *testing.T) {
	uc, store := newUseCase(t)

	created, err := uc.Create(context.Background(), dto.CreateCustomerRequest{Name: "João da Silva"})
	require.NoError(t, err)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		id := fmt.Sprintf("venda-%02d", i)
		store.Sales[id] = &entity.Sale{
			ID:         id,
			Code:       fmt.Sprintf("10%03d", i),
			CustomerID: created.ID,
			SaleDate:   base.AddDate(0, 0, i),
			Total:      decimal.NewFromInt(int64(100 + i)),
			Status:     entity.SaleStatusCompleted,
		}
	}

	hist, err := uc.History(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, hist)

	assert.Len(t, hist.Sales, 10, "histórico limitado a 10 vendas")
	assert.Equal(t, "venda-11", hist.Sales[0].ID, "a mais recente vem primeiro")
	assert.Equal(t, "venda-02", hist.Sales[9].ID)
}

func TestHistory_ClienteInexistente(t *testing.T) {
	uc, _ := newUseCase(t)
	hist, err := uc.History(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.Nil(t, hist)
}
