// Package apptest fornece implementações em memória dos repositórios de
// domínio para os testes dos casos de uso. Não é usado em produção.
package apptest

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

// Store banco em memória compartilhado pelos repositórios fake.
type Store struct {
	mu          sync.Mutex
	Products    map[string]*entity.Product
	Movements   []*entity.StockMovement
	Sales       map[string]*entity.Sale
	Purchases   map[string]*entity.Purchase
	Customers   map[string]*entity.Customer
	Categories  map[string]*entity.Category
	Receivables map[string]*entity.Receivable
	Payables    map[string]*entity.Payable
	CashFlow    []*entity.CashFlowEntry
	Users       map[string]*entity.User
}

// NewStore cria um Store vazio.
func NewStore() *Store {
	return &Store{
		Products:    map[string]*entity.Product{},
		Sales:       map[string]*entity.Sale{},
		Purchases:   map[string]*entity.Purchase{},
		Customers:   map[string]*entity.Customer{},
		Categories:  map[string]*entity.Category{},
		Receivables: map[string]*entity.Receivable{},
		Payables:    map[string]*entity.Payable{},
		Users:       map[string]*entity.User{},
	}
}

// TxRunner fake: executa fn diretamente sobre o Store, sem transação real.
type TxRunner struct{ S *Store }

// Run implementa ports.TxRunner.
func (r TxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	movementRepo repository.StockMovementRepository,
	saleRepo repository.SaleRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	return fn(
		&ProductRepo{S: r.S},
		&MovementRepo{S: r.S},
		&SaleRepo{S: r.S},
		&PurchaseRepo{S: r.S},
	)
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos
// ──────────────────────────────────────────────────────────────────────────────

// ProductRepo implementação em memória de repository.ProductRepository.
type ProductRepo struct{ S *Store }

func (r *ProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existing := range r.S.Products {
		if existing.Name == p.Name {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.S.Products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *ProductRepo) GetByName(_ context.Context, name string) (*entity.Product, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, p := range r.S.Products {
		if p.Name == name {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProductRepo) GetForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *ProductRepo) GetByNameForUpdate(ctx context.Context, name string) (*entity.Product, error) {
	return r.GetByName(ctx, name)
}

func (r *ProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.S.Products[p.ID] = &cp
	return nil
}

func (r *ProductRepo) UpdateQuantity(_ context.Context, id string, quantity decimal.Decimal) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *ProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Product, 0, len(r.S.Products))
	for _, p := range r.S.Products {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *ProductRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Products, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Movimentações de estoque
// ──────────────────────────────────────────────────────────────────────────────

// MovementRepo implementação em memória de repository.StockMovementRepository.
type MovementRepo struct{ S *Store }

func (r *MovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *m
	r.S.Movements = append(r.S.Movements, &cp)
	return nil
}

func (r *MovementRepo) List(_ context.Context) ([]*entity.StockMovement, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.StockMovement, 0, len(r.S.Movements))
	for _, m := range r.S.Movements {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

func (r *MovementRepo) ListByProduct(_ context.Context, productID string) ([]*entity.StockMovement, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	var out []*entity.StockMovement
	for _, m := range r.S.Movements {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Vendas
// ──────────────────────────────────────────────────────────────────────────────

// SaleRepo implementação em memória de repository.SaleRepository.
type SaleRepo struct{ S *Store }

func (r *SaleRepo) Create(_ context.Context, s *entity.Sale) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	r.S.Sales[s.ID] = &cp
	return nil
}

func (r *SaleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	s, ok := r.S.Sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cp, nil
}

func (r *SaleRepo) Update(_ context.Context, s *entity.Sale) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Sales[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	r.S.Sales[s.ID] = &cp
	return nil
}

func (r *SaleRepo) List(_ context.Context) ([]*entity.Sale, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Sale, 0, len(r.S.Sales))
	for _, s := range r.S.Sales {
		cp := *s
		cp.Items = append([]entity.SaleItem(nil), s.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (r *SaleRepo) ListByCustomer(ctx context.Context, customerID string, limit int) ([]*entity.Sale, error) {
	all, _ := r.List(ctx)
	var out []*entity.Sale
	for _, s := range all {
		if s.CustomerID == customerID {
			out = append(out, s)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SaleRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Sales, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Compras
// ──────────────────────────────────────────────────────────────────────────────

// PurchaseRepo implementação em memória de repository.PurchaseRepository.
type PurchaseRepo struct{ S *Store }

func (r *PurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *p
	cp.Items = append([]entity.PurchaseItem(nil), p.Items...)
	r.S.Purchases[p.ID] = &cp
	return nil
}

func (r *PurchaseRepo) GetByID(_ context.Context, id string) (*entity.Purchase, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Purchases[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	cp.Items = append([]entity.PurchaseItem(nil), p.Items...)
	return &cp, nil
}

func (r *PurchaseRepo) Update(_ context.Context, p *entity.Purchase) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Purchases[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	cp.Items = append([]entity.PurchaseItem(nil), p.Items...)
	r.S.Purchases[p.ID] = &cp
	return nil
}

func (r *PurchaseRepo) List(_ context.Context) ([]*entity.Purchase, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Purchase, 0, len(r.S.Purchases))
	for _, p := range r.S.Purchases {
		cp := *p
		cp.Items = append([]entity.PurchaseItem(nil), p.Items...)
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out, nil
}

func (r *PurchaseRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Purchases[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Purchases, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

// CustomerRepo implementação em memória de repository.CustomerRepository.
type CustomerRepo struct{ S *Store }

func (r *CustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *c
	r.S.Customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Customers[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.S.Customers[c.ID] = &cp
	return nil
}

func (r *CustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Customer, 0, len(r.S.Customers))
	for _, c := range r.S.Customers {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CustomerRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Customers[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Customers, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorias
// ──────────────────────────────────────────────────────────────────────────────

// CategoryRepo implementação em memória de repository.CategoryRepository.
type CategoryRepo struct{ S *Store }

func (r *CategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existing := range r.S.Categories {
		if strings.EqualFold(existing.Name, c.Name) {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.S.Categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	c, ok := r.S.Categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *CategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.S.Categories[c.ID] = &cp
	return nil
}

func (r *CategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Category, 0, len(r.S.Categories))
	for _, c := range r.S.Categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CategoryRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Categories, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Financeiro
// ──────────────────────────────────────────────────────────────────────────────

// ReceivableRepo implementação em memória de repository.ReceivableRepository.
type ReceivableRepo struct{ S *Store }

func (r *ReceivableRepo) Create(_ context.Context, rec *entity.Receivable) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *rec
	r.S.Receivables[rec.ID] = &cp
	return nil
}

func (r *ReceivableRepo) GetByID(_ context.Context, id string) (*entity.Receivable, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	rec, ok := r.S.Receivables[id]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (r *ReceivableRepo) Update(_ context.Context, rec *entity.Receivable) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Receivables[rec.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *rec
	r.S.Receivables[rec.ID] = &cp
	return nil
}

func (r *ReceivableRepo) List(_ context.Context) ([]*entity.Receivable, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Receivable, 0, len(r.S.Receivables))
	for _, rec := range r.S.Receivables {
		cp := *rec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *ReceivableRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Receivables[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Receivables, id)
	return nil
}

// PayableRepo implementação em memória de repository.PayableRepository.
type PayableRepo struct{ S *Store }

func (r *PayableRepo) Create(_ context.Context, p *entity.Payable) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *p
	r.S.Payables[p.ID] = &cp
	return nil
}

func (r *PayableRepo) GetByID(_ context.Context, id string) (*entity.Payable, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	p, ok := r.S.Payables[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *PayableRepo) Update(_ context.Context, p *entity.Payable) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Payables[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.S.Payables[p.ID] = &cp
	return nil
}

func (r *PayableRepo) List(_ context.Context) ([]*entity.Payable, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.Payable, 0, len(r.S.Payables))
	for _, p := range r.S.Payables {
		cp := *p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out, nil
}

func (r *PayableRepo) Delete(_ context.Context, id string) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	if _, ok := r.S.Payables[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.S.Payables, id)
	return nil
}

// CashFlowRepo implementação em memória de repository.CashFlowRepository.
type CashFlowRepo struct{ S *Store }

func (r *CashFlowRepo) Create(_ context.Context, e *entity.CashFlowEntry) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	cp := *e
	r.S.CashFlow = append(r.S.CashFlow, &cp)
	return nil
}

func (r *CashFlowRepo) List(_ context.Context) ([]*entity.CashFlowEntry, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	out := make([]*entity.CashFlowEntry, 0, len(r.S.CashFlow))
	for _, e := range r.S.CashFlow {
		cp := *e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OccurredAt.After(out[j].OccurredAt) })
	return out, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Usuários
// ──────────────────────────────────────────────────────────────────────────────

// UserRepo implementação em memória de repository.UserRepository.
type UserRepo struct{ S *Store }

func (r *UserRepo) Create(_ context.Context, u *entity.User) error {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, existing := range r.S.Users {
		if strings.EqualFold(existing.Email, u.Email) {
			return domain.ErrDuplicate
		}
	}
	cp := *u
	r.S.Users[u.ID] = &cp
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	u, ok := r.S.Users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.S.mu.Lock()
	defer r.S.mu.Unlock()
	for _, u := range r.S.Users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}
