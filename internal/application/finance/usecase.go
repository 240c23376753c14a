// Package finance implementa os casos de uso do financeiro: contas a receber,
// contas a pagar e fluxo de caixa. Recebimentos e pagamentos geram lançamento
// automático no fluxo de caixa.
package finance

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

// UseCase casos de uso do financeiro.
type UseCase struct {
	receivableRepo repository.ReceivableRepository
	payableRepo    repository.PayableRepository
	cashFlowRepo   repository.CashFlowRepository
	now            func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(receivableRepo repository.ReceivableRepository, payableRepo repository.PayableRepository, cashFlowRepo repository.CashFlowRepository) *UseCase {
	return &UseCase{
		receivableRepo: receivableRepo,
		payableRepo:    payableRepo,
		cashFlowRepo:   cashFlowRepo,
		now:            time.Now,
	}
}

// WithClock troca a fonte de tempo. Usado nos testes de vencimento.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// ──────────────────────────────────────────────────────────────────────────────
// Contas a receber
// ──────────────────────────────────────────────────────────────────────────────

// CreateReceivable cadastra uma conta a receber com status pendente.
func (uc *UseCase) CreateReceivable(ctx context.Context, in dto.CreateReceivableRequest) (*dto.ReceivableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	rec := &entity.Receivable{
		ID:             uuid.New().String(),
		Description:    in.Description,
		CustomerID:     in.CustomerID,
		CustomerName:   in.CustomerName,
		Amount:         in.Amount,
		ReceivedAmount: decimal.Zero,
		DueDate:        in.DueDate,
		Status:         entity.BillStatusPending,
		Notes:          in.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.receivableRepo.Create(ctx, rec); err != nil {
		return nil, err
	}
	return uc.toReceivableResponse(rec), nil
}

// GetReceivable obtém uma conta a receber. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetReceivable(ctx context.Context, id string) (*dto.ReceivableResponse, error) {
	rec, err := uc.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return uc.toReceivableResponse(rec), nil
}

// ListReceivables lista contas a receber por vencimento crescente.
// onlyOpen restringe a pendentes e parciais.
func (uc *UseCase) ListReceivables(ctx context.Context, onlyOpen bool) ([]dto.ReceivableResponse, error) {
	recs, err := uc.receivableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReceivableResponse, 0, len(recs))
	for _, rec := range recs {
		if onlyOpen && rec.Status == entity.BillStatusReceived {
			continue
		}
		out = append(out, *uc.toReceivableResponse(rec))
	}
	return out, nil
}

// UpdateReceivable atualiza os dados cadastrais de uma conta a receber.
// Contas já recebidas não são editáveis.
func (uc *UseCase) UpdateReceivable(ctx context.Context, id string, in dto.UpdateReceivableRequest) (*dto.ReceivableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	rec, err := uc.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	if rec.Status == entity.BillStatusReceived {
		return nil, domain.ErrConflict
	}
	if in.Description != nil {
		rec.Description = *in.Description
	}
	if in.CustomerID != nil {
		rec.CustomerID = *in.CustomerID
	}
	if in.CustomerName != nil {
		rec.CustomerName = *in.CustomerName
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) || in.Amount.LessThan(rec.ReceivedAmount) {
			return nil, domain.ErrInvalidInput
		}
		rec.Amount = *in.Amount
	}
	if in.DueDate != nil {
		rec.DueDate = *in.DueDate
	}
	if in.Notes != nil {
		rec.Notes = *in.Notes
	}
	rec.UpdatedAt = uc.now()
	if err := uc.receivableRepo.Update(ctx, rec); err != nil {
		return nil, err
	}
	return uc.toReceivableResponse(rec), nil
}

// DeleteReceivable remove uma conta a receber. Lançamentos de fluxo de caixa
// já gerados permanecem.
func (uc *UseCase) DeleteReceivable(ctx context.Context, id string) error {
	return uc.receivableRepo.Delete(ctx, id)
}

// Receive registra o recebimento, total ou parcial, de uma conta a receber e
// lança a entrada correspondente no fluxo de caixa. Valor ausente ou zero
// quita o saldo restante; valor acima do saldo é rejeitado.
func (uc *UseCase) Receive(ctx context.Context, id string, in dto.ReceivePaymentRequest) (*dto.ReceivableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	rec, err := uc.receivableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if rec.Status == entity.BillStatusReceived {
		return nil, domain.ErrConflict
	}
	remaining := rec.Amount.Sub(rec.ReceivedAmount)
	amount := in.Amount
	if !amount.GreaterThan(decimal.Zero) {
		amount = remaining
	}
	if amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: valor acima do saldo em aberto", domain.ErrInvalidInput)
	}

	now := uc.now()
	occurredAt := now
	if in.ReceivedAt != nil {
		occurredAt = *in.ReceivedAt
	}
	rec.ReceivedAmount = rec.ReceivedAmount.Add(amount)
	rec.PaymentMethod = in.PaymentMethod
	if rec.ReceivedAmount.GreaterThanOrEqual(rec.Amount) {
		rec.Status = entity.BillStatusReceived
		rec.ReceivedDate = &occurredAt
	} else {
		rec.Status = entity.BillStatusPartial
	}
	rec.UpdatedAt = now
	if err := uc.receivableRepo.Update(ctx, rec); err != nil {
		return nil, err
	}

	entry := &entity.CashFlowEntry{
		ID:           uuid.New().String(),
		Type:         entity.CashFlowIn,
		Amount:       amount,
		Description:  "Recebimento: " + rec.Description,
		Category:     "recebimento",
		ReceivableID: rec.ID,
		OccurredAt:   occurredAt,
		CreatedAt:    now,
	}
	if err := uc.cashFlowRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return uc.toReceivableResponse(rec), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Contas a pagar
// ──────────────────────────────────────────────────────────────────────────────

// CreatePayable cadastra uma conta a pagar com status pendente. Categoria
// ausente vira "outros".
func (uc *UseCase) CreatePayable(ctx context.Context, in dto.CreatePayableRequest) (*dto.PayableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	p := &entity.Payable{
		ID:          uuid.New().String(),
		Description: in.Description,
		Supplier:    in.Supplier,
		Category:    in.Category,
		Amount:      in.Amount,
		PaidAmount:  decimal.Zero,
		DueDate:     in.DueDate,
		Status:      entity.BillStatusPending,
		Notes:       in.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.Category == "" {
		p.Category = "outros"
	}
	if err := uc.payableRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return uc.toPayableResponse(p), nil
}

// GetPayable obtém uma conta a pagar. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetPayable(ctx context.Context, id string) (*dto.PayableResponse, error) {
	p, err := uc.payableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return uc.toPayableResponse(p), nil
}

// ListPayables lista contas a pagar por vencimento crescente.
func (uc *UseCase) ListPayables(ctx context.Context, onlyOpen bool) ([]dto.PayableResponse, error) {
	payables, err := uc.payableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PayableResponse, 0, len(payables))
	for _, p := range payables {
		if onlyOpen && p.Status == entity.BillStatusPaid {
			continue
		}
		out = append(out, *uc.toPayableResponse(p))
	}
	return out, nil
}

// UpdatePayable atualiza os dados cadastrais de uma conta a pagar.
// Contas já pagas não são editáveis.
func (uc *UseCase) UpdatePayable(ctx context.Context, id string, in dto.UpdatePayableRequest) (*dto.PayableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p, err := uc.payableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if p.Status == entity.BillStatusPaid {
		return nil, domain.ErrConflict
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Supplier != nil {
		p.Supplier = *in.Supplier
	}
	if in.Category != nil {
		p.Category = *in.Category
	}
	if in.Amount != nil {
		if !in.Amount.GreaterThan(decimal.Zero) || in.Amount.LessThan(p.PaidAmount) {
			return nil, domain.ErrInvalidInput
		}
		p.Amount = *in.Amount
	}
	if in.DueDate != nil {
		p.DueDate = *in.DueDate
	}
	if in.Notes != nil {
		p.Notes = *in.Notes
	}
	p.UpdatedAt = uc.now()
	if err := uc.payableRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return uc.toPayableResponse(p), nil
}

// DeletePayable remove uma conta a pagar.
func (uc *UseCase) DeletePayable(ctx context.Context, id string) error {
	return uc.payableRepo.Delete(ctx, id)
}

// Pay registra o pagamento, total ou parcial, de uma conta a pagar e lança a
// saída correspondente no fluxo de caixa.
func (uc *UseCase) Pay(ctx context.Context, id string, in dto.PayBillRequest) (*dto.PayableResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	p, err := uc.payableRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if p.Status == entity.BillStatusPaid {
		return nil, domain.ErrConflict
	}
	remaining := p.Amount.Sub(p.PaidAmount)
	amount := in.Amount
	if !amount.GreaterThan(decimal.Zero) {
		amount = remaining
	}
	if amount.GreaterThan(remaining) {
		return nil, fmt.Errorf("%w: valor acima do saldo em aberto", domain.ErrInvalidInput)
	}

	now := uc.now()
	occurredAt := now
	if in.PaidAt != nil {
		occurredAt = *in.PaidAt
	}
	p.PaidAmount = p.PaidAmount.Add(amount)
	p.PaymentMethod = in.PaymentMethod
	if p.PaidAmount.GreaterThanOrEqual(p.Amount) {
		p.Status = entity.BillStatusPaid
		p.PaidDate = &occurredAt
	} else {
		p.Status = entity.BillStatusPartial
	}
	p.UpdatedAt = now
	if err := uc.payableRepo.Update(ctx, p); err != nil {
		return nil, err
	}

	entry := &entity.CashFlowEntry{
		ID:          uuid.New().String(),
		Type:        entity.CashFlowOut,
		Amount:      amount,
		Description: "Pagamento: " + p.Description,
		Category:    p.Category,
		PayableID:   p.ID,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	}
	if err := uc.cashFlowRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return uc.toPayableResponse(p), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo de caixa
// ──────────────────────────────────────────────────────────────────────────────

// CreateCashFlowEntry registra um lançamento manual no fluxo de caixa.
func (uc *UseCase) CreateCashFlowEntry(ctx context.Context, in dto.CreateCashFlowEntryRequest) (*dto.CashFlowEntryResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if !in.Amount.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	occurredAt := now
	if in.OccurredAt != nil {
		occurredAt = *in.OccurredAt
	}
	entry := &entity.CashFlowEntry{
		ID:          uuid.New().String(),
		Type:        in.Type,
		Amount:      in.Amount,
		Description: in.Description,
		Category:    in.Category,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
	}
	if err := uc.cashFlowRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return toCashFlowResponse(entry), nil
}

// ListCashFlow lista os lançamentos, mais recentes primeiro.
func (uc *UseCase) ListCashFlow(ctx context.Context) ([]dto.CashFlowEntryResponse, error) {
	entries, err := uc.cashFlowRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CashFlowEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, *toCashFlowResponse(e))
	}
	return out, nil
}

func (uc *UseCase) toReceivableResponse(r *entity.Receivable) *dto.ReceivableResponse {
	return &dto.ReceivableResponse{
		ID:             r.ID,
		Description:    r.Description,
		CustomerID:     r.CustomerID,
		CustomerName:   r.CustomerName,
		Amount:         r.Amount,
		ReceivedAmount: r.ReceivedAmount,
		DueDate:        r.DueDate,
		ReceivedDate:   r.ReceivedDate,
		PaymentMethod:  r.PaymentMethod,
		Status:         r.Status,
		Overdue:        r.Overdue(uc.now()),
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func (uc *UseCase) toPayableResponse(p *entity.Payable) *dto.PayableResponse {
	return &dto.PayableResponse{
		ID:            p.ID,
		Description:   p.Description,
		Supplier:      p.Supplier,
		Category:      p.Category,
		Amount:        p.Amount,
		PaidAmount:    p.PaidAmount,
		DueDate:       p.DueDate,
		PaidDate:      p.PaidDate,
		PaymentMethod: p.PaymentMethod,
		Status:        p.Status,
		Overdue:       p.Overdue(uc.now()),
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toCashFlowResponse(e *entity.CashFlowEntry) *dto.CashFlowEntryResponse {
	return &dto.CashFlowEntryResponse{
		ID:           e.ID,
		Type:         e.Type,
		Amount:       e.Amount,
		Description:  e.Description,
		Category:     e.Category,
		ReceivableID: e.ReceivableID,
		PayableID:    e.PayableID,
		OccurredAt:   e.OccurredAt,
		CreatedAt:    e.CreatedAt,
	}
}
