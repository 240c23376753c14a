package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// PurchaseRepository define a porta de persistência para Purchase.
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id string) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	List(ctx context.Context) ([]*entity.Purchase, error)
	Delete(ctx context.Context, id string) error
}
