package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// CustomerRepository define a porta de persistência para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	List(ctx context.Context) ([]*entity.Customer, error)
	Delete(ctx context.Context, id string) error
}
