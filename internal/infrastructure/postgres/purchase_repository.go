package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementação do porto PurchaseRepository sobre PostgreSQL.
// Itens como JSONB, mesma modelagem das vendas.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository constrói o adaptador de persistência de compras.
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste uma compra nova.
func (r *PurchaseRepo) Create(ctx context.Context, purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal purchase items: %w", err)
	}
	query := `
		INSERT INTO purchases (id, code, supplier, purchase_date, items, total, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.q.Exec(ctx, query,
		purchase.ID, purchase.Code, purchase.Supplier, purchase.PurchaseDate,
		items, purchase.Total, purchase.PaymentMethod, purchase.Notes,
		purchase.CreatedAt, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtém uma compra por ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id string) (*entity.Purchase, error) {
	query := `
		SELECT id, code, supplier, purchase_date, items, total, payment_method, notes, created_at, updated_at
		FROM purchases WHERE id = $1`
	var p entity.Purchase
	var items []byte
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Code, &p.Supplier, &p.PurchaseDate, &items,
		&p.Total, &p.PaymentMethod, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	if err := json.Unmarshal(items, &p.Items); err != nil {
		return nil, fmt.Errorf("unmarshal purchase items: %w", err)
	}
	return &p, nil
}

// Update atualiza uma compra existente.
func (r *PurchaseRepo) Update(ctx context.Context, purchase *entity.Purchase) error {
	items, err := json.Marshal(purchase.Items)
	if err != nil {
		return fmt.Errorf("marshal purchase items: %w", err)
	}
	query := `
		UPDATE purchases
		SET supplier = $2, purchase_date = $3, items = $4, total = $5,
		    payment_method = $6, notes = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		purchase.ID, purchase.Supplier, purchase.PurchaseDate, items,
		purchase.Total, purchase.PaymentMethod, purchase.Notes, purchase.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas as compras, mais recentes primeiro.
func (r *PurchaseRepo) List(ctx context.Context) ([]*entity.Purchase, error) {
	query := `
		SELECT id, code, supplier, purchase_date, items, total, payment_method, notes, created_at, updated_at
		FROM purchases ORDER BY purchase_date DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var items []byte
		if err := rows.Scan(&p.ID, &p.Code, &p.Supplier, &p.PurchaseDate, &items,
			&p.Total, &p.PaymentMethod, &p.Notes, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if err := json.Unmarshal(items, &p.Items); err != nil {
			return nil, fmt.Errorf("unmarshal purchase items: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove a compra.
func (r *PurchaseRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
