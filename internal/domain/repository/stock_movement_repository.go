package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// StockMovementRepository define a porta de persistência para o histórico de
// movimentações. Somente inserção e leitura: movimentos nunca são alterados.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	List(ctx context.Context) ([]*entity.StockMovement, error)
	ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error)
}
