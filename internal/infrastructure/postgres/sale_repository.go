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

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementação do porto SaleRepository sobre PostgreSQL.
// Os itens da venda são persistidos como JSONB na própria linha: a venda é um
// documento fechado, os itens não existem fora dela.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository constrói o adaptador de persistência de vendas.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste uma venda nova.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		INSERT INTO sales (id, code, customer_id, customer_name, sale_date, items, total, status, payment_method, notes, created_at, updated_at)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = r.q.Exec(ctx, query,
		sale.ID, sale.Code, sale.CustomerID, sale.CustomerName, sale.SaleDate,
		items, sale.Total, sale.Status, sale.PaymentMethod, sale.Notes,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtém uma venda por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `
		SELECT id, code, COALESCE(customer_id, ''), customer_name, sale_date, items, total, status, payment_method, notes, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	var items []byte
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.Code, &s.CustomerID, &s.CustomerName, &s.SaleDate, &items,
		&s.Total, &s.Status, &s.PaymentMethod, &s.Notes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := json.Unmarshal(items, &s.Items); err != nil {
		return nil, fmt.Errorf("unmarshal sale items: %w", err)
	}
	return &s, nil
}

// Update atualiza uma venda existente.
func (r *SaleRepo) Update(ctx context.Context, sale *entity.Sale) error {
	items, err := json.Marshal(sale.Items)
	if err != nil {
		return fmt.Errorf("marshal sale items: %w", err)
	}
	query := `
		UPDATE sales
		SET customer_id = NULLIF($2, ''), customer_name = $3, sale_date = $4, items = $5,
		    total = $6, status = $7, payment_method = $8, notes = $9, updated_at = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		sale.ID, sale.CustomerID, sale.CustomerName, sale.SaleDate, items,
		sale.Total, sale.Status, sale.PaymentMethod, sale.Notes, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista todas as vendas, mais recentes primeiro.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	query := `
		SELECT id, code, COALESCE(customer_id, ''), customer_name, sale_date, items, total, status, payment_method, notes, created_at, updated_at
		FROM sales ORDER BY sale_date DESC, created_at DESC`
	return r.list(ctx, query)
}

// ListByCustomer lista as vendas de um cliente, mais recentes primeiro,
// limitadas a limit.
func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entity.Sale, error) {
	query := `
		SELECT id, code, COALESCE(customer_id, ''), customer_name, sale_date, items, total, status, payment_method, notes, created_at, updated_at
		FROM sales WHERE customer_id = $1 ORDER BY sale_date DESC, created_at DESC LIMIT $2`
	return r.list(ctx, query, customerID, limit)
}

func (r *SaleRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var items []byte
		if err := rows.Scan(&s.ID, &s.Code, &s.CustomerID, &s.CustomerName, &s.SaleDate, &items,
			&s.Total, &s.Status, &s.PaymentMethod, &s.Notes, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if err := json.Unmarshal(items, &s.Items); err != nil {
			return nil, fmt.Errorf("unmarshal sale items: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete remove a venda.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
