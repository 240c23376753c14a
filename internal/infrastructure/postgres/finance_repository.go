package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

var (
	_ repository.ReceivableRepository = (*ReceivableRepo)(nil)
	_ repository.PayableRepository    = (*PayableRepo)(nil)
	_ repository.CashFlowRepository   = (*CashFlowRepo)(nil)
)

const receivableColumns = `id, description, customer_id, customer_name, amount, received_amount, due_date, received_date, payment_method, status, notes, created_at, updated_at`

// ReceivableRepo implementação do porto ReceivableRepository sobre PostgreSQL.
type ReceivableRepo struct {
	q Querier
}

// NewReceivableRepository constrói o adaptador de contas a receber.
func NewReceivableRepository(q Querier) *ReceivableRepo {
	return &ReceivableRepo{q: q}
}

// Create persiste uma conta a receber nova.
func (r *ReceivableRepo) Create(ctx context.Context, rec *entity.Receivable) error {
	query := `
		INSERT INTO receivables (` + receivableColumns + `)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.Description, rec.CustomerID, rec.CustomerName, rec.Amount,
		rec.ReceivedAmount, rec.DueDate, rec.ReceivedDate, rec.PaymentMethod,
		rec.Status, rec.Notes, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert receivable: %w", err)
	}
	return nil
}

// GetByID obtém uma conta a receber por ID.
func (r *ReceivableRepo) GetByID(ctx context.Context, id string) (*entity.Receivable, error) {
	query := `
		SELECT id, description, COALESCE(customer_id, ''), customer_name, amount, received_amount,
		       due_date, received_date, payment_method, status, notes, created_at, updated_at
		FROM receivables WHERE id = $1`
	var rec entity.Receivable
	err := r.q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.Description, &rec.CustomerID, &rec.CustomerName, &rec.Amount,
		&rec.ReceivedAmount, &rec.DueDate, &rec.ReceivedDate, &rec.PaymentMethod,
		&rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receivable: %w", err)
	}
	return &rec, nil
}

// Update atualiza uma conta a receber existente.
func (r *ReceivableRepo) Update(ctx context.Context, rec *entity.Receivable) error {
	query := `
		UPDATE receivables
		SET description = $2, customer_id = NULLIF($3, ''), customer_name = $4, amount = $5,
		    received_amount = $6, due_date = $7, received_date = $8, payment_method = $9,
		    status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		rec.ID, rec.Description, rec.CustomerID, rec.CustomerName, rec.Amount,
		rec.ReceivedAmount, rec.DueDate, rec.ReceivedDate, rec.PaymentMethod,
		rec.Status, rec.Notes, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update receivable: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista as contas a receber por vencimento crescente.
func (r *ReceivableRepo) List(ctx context.Context) ([]*entity.Receivable, error) {
	query := `
		SELECT id, description, COALESCE(customer_id, ''), customer_name, amount, received_amount,
		       due_date, received_date, payment_method, status, notes, created_at, updated_at
		FROM receivables ORDER BY due_date ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list receivables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receivable
	for rows.Next() {
		var rec entity.Receivable
		if err := rows.Scan(&rec.ID, &rec.Description, &rec.CustomerID, &rec.CustomerName,
			&rec.Amount, &rec.ReceivedAmount, &rec.DueDate, &rec.ReceivedDate,
			&rec.PaymentMethod, &rec.Status, &rec.Notes, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receivable: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete remove a conta a receber.
func (r *ReceivableRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM receivables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receivable: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

const payableColumns = `id, description, supplier, category, amount, paid_amount, due_date, paid_date, payment_method, status, notes, created_at, updated_at`

// PayableRepo implementação do porto PayableRepository sobre PostgreSQL.
type PayableRepo struct {
	q Querier
}

// NewPayableRepository constrói o adaptador de contas a pagar.
func NewPayableRepository(q Querier) *PayableRepo {
	return &PayableRepo{q: q}
}

// Create persiste uma conta a pagar nova.
func (r *PayableRepo) Create(ctx context.Context, pay *entity.Payable) error {
	query := `
		INSERT INTO payables (` + payableColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		pay.ID, pay.Description, pay.Supplier, pay.Category, pay.Amount,
		pay.PaidAmount, pay.DueDate, pay.PaidDate, pay.PaymentMethod,
		pay.Status, pay.Notes, pay.CreatedAt, pay.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payable: %w", err)
	}
	return nil
}

// GetByID obtém uma conta a pagar por ID.
func (r *PayableRepo) GetByID(ctx context.Context, id string) (*entity.Payable, error) {
	var pay entity.Payable
	err := r.q.QueryRow(ctx, `SELECT `+payableColumns+` FROM payables WHERE id = $1`, id).Scan(
		&pay.ID, &pay.Description, &pay.Supplier, &pay.Category, &pay.Amount,
		&pay.PaidAmount, &pay.DueDate, &pay.PaidDate, &pay.PaymentMethod,
		&pay.Status, &pay.Notes, &pay.CreatedAt, &pay.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payable: %w", err)
	}
	return &pay, nil
}

// Update atualiza uma conta a pagar existente.
func (r *PayableRepo) Update(ctx context.Context, pay *entity.Payable) error {
	query := `
		UPDATE payables
		SET description = $2, supplier = $3, category = $4, amount = $5, paid_amount = $6,
		    due_date = $7, paid_date = $8, payment_method = $9, status = $10, notes = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		pay.ID, pay.Description, pay.Supplier, pay.Category, pay.Amount, pay.PaidAmount,
		pay.DueDate, pay.PaidDate, pay.PaymentMethod, pay.Status, pay.Notes, pay.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payable: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lista as contas a pagar por vencimento crescente.
func (r *PayableRepo) List(ctx context.Context) ([]*entity.Payable, error) {
	query := `SELECT ` + payableColumns + ` FROM payables ORDER BY due_date ASC, created_at ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list payables: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payable
	for rows.Next() {
		var pay entity.Payable
		if err := rows.Scan(&pay.ID, &pay.Description, &pay.Supplier, &pay.Category,
			&pay.Amount, &pay.PaidAmount, &pay.DueDate, &pay.PaidDate,
			&pay.PaymentMethod, &pay.Status, &pay.Notes, &pay.CreatedAt, &pay.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan payable: %w", err)
		}
		list = append(list, &pay)
	}
	return list, rows.Err()
}

// Delete remove a conta a pagar.
func (r *PayableRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM payables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payable: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CashFlowRepo implementação do porto CashFlowRepository sobre PostgreSQL.
// Append-only, como as movimentações de estoque.
type CashFlowRepo struct {
	q Querier
}

// NewCashFlowRepository constrói o adaptador do fluxo de caixa.
func NewCashFlowRepository(q Querier) *CashFlowRepo {
	return &CashFlowRepo{q: q}
}

// Create persiste um lançamento de caixa.
func (r *CashFlowRepo) Create(ctx context.Context, entry *entity.CashFlowEntry) error {
	query := `
		INSERT INTO cash_flow_entries (id, type, amount, description, category, receivable_id, payable_id, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.Type, entry.Amount, entry.Description, entry.Category,
		entry.ReceivableID, entry.PayableID, entry.OccurredAt, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cash flow entry: %w", err)
	}
	return nil
}

// List lista os lançamentos, mais recentes primeiro.
func (r *CashFlowRepo) List(ctx context.Context) ([]*entity.CashFlowEntry, error) {
	query := `
		SELECT id, type, amount, description, category, COALESCE(receivable_id, ''), COALESCE(payable_id, ''), occurred_at, created_at
		FROM cash_flow_entries ORDER BY occurred_at DESC, created_at DESC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cash flow entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.CashFlowEntry
	for rows.Next() {
		var e entity.CashFlowEntry
		if err := rows.Scan(&e.ID, &e.Type, &e.Amount, &e.Description, &e.Category,
			&e.ReceivableID, &e.PayableID, &e.OccurredAt, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cash flow entry: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
