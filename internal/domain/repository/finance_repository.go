package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// ReceivableRepository define a porta de persistência para contas a receber.
// List devolve a coleção ordenada por vencimento crescente.
type ReceivableRepository interface {
	Create(ctx context.Context, receivable *entity.Receivable) error
	GetByID(ctx context.Context, id string) (*entity.Receivable, error)
	Update(ctx context.Context, receivable *entity.Receivable) error
	List(ctx context.Context) ([]*entity.Receivable, error)
	Delete(ctx context.Context, id string) error
}

// PayableRepository define a porta de persistência para contas a pagar.
type PayableRepository interface {
	Create(ctx context.Context, payable *entity.Payable) error
	GetByID(ctx context.Context, id string) (*entity.Payable, error)
	Update(ctx context.Context, payable *entity.Payable) error
	List(ctx context.Context) ([]*entity.Payable, error)
	Delete(ctx context.Context, id string) error
}

// CashFlowRepository define a porta de persistência do fluxo de caixa.
// Append-only: lançamentos não são alterados nem removidos.
type CashFlowRepository interface {
	Create(ctx context.Context, entry *entity.CashFlowEntry) error
	List(ctx context.Context) ([]*entity.CashFlowEntry, error)
}
