package repository

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// CategoryRepository define a porta de persistência para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}
