package postgres

import (
	"context"
	"fmt"

	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

const movementColumns = `id, product_id, product_name, type, quantity, previous_qty, new_qty, reason, sale_id, purchase_id, occurred_at, created_at`

// StockMovementRepo implementação do porto StockMovementRepository sobre
// PostgreSQL. Append-only: só INSERT e SELECT.
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository constrói o adaptador de persistência de
// movimentações.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create persiste uma movimentação. sale_id/purchase_id vazios viram NULL.
func (r *StockMovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), NULLIF($10, ''), $11, $12)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.ProductID, m.ProductName, m.Type, m.Quantity, m.PreviousQty, m.NewQty,
		m.Reason, m.SaleID, m.PurchaseID, m.OccurredAt, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// List lista todas as movimentações, mais recentes primeiro.
func (r *StockMovementRepo) List(ctx context.Context) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, product_name, type, quantity, previous_qty, new_qty,
		       reason, COALESCE(sale_id, ''), COALESCE(purchase_id, ''), occurred_at, created_at
		FROM stock_movements ORDER BY occurred_at DESC, created_at DESC`
	return r.list(ctx, query)
}

// ListByProduct lista as movimentações de um produto.
func (r *StockMovementRepo) ListByProduct(ctx context.Context, productID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, product_id, product_name, type, quantity, previous_qty, new_qty,
		       reason, COALESCE(sale_id, ''), COALESCE(purchase_id, ''), occurred_at, created_at
		FROM stock_movements WHERE product_id = $1 ORDER BY occurred_at DESC, created_at DESC`
	return r.list(ctx, query, productID)
}

func (r *StockMovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(&m.ID, &m.ProductID, &m.ProductName, &m.Type, &m.Quantity,
			&m.PreviousQty, &m.NewQty, &m.Reason, &m.SaleID, &m.PurchaseID, &m.OccurredAt, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
