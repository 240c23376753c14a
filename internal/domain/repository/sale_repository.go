package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// SaleRepository define a porta de persistência para Sale.
// List devolve a coleção completa ordenada por data de venda decrescente;
// filtros de busca são aplicados em memória pelo caso de uso.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id string) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	List(ctx context.Context) ([]*entity.Sale, error)
	ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entity.Sale, error)
	Delete(ctx context.Context, id string) error
}
