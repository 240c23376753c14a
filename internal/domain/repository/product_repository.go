package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// ProductRepository define a porta de persistência para Product (DIP).
// Os métodos *ForUpdate só fazem sentido dentro de uma transação: bloqueiam a
// linha (SELECT ... FOR UPDATE) para o fluxo de ajuste de estoque.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByName(ctx context.Context, name string) (*entity.Product, error)
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetByNameForUpdate(ctx context.Context, name string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	UpdateQuantity(ctx context.Context, id string, quantity decimal.Decimal) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
