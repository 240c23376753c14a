package reports

import (
	"context"
	"time"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

// Limite padrão dos rankings quando o chamador não informa.
const defaultTopLimit = 10

// UseCase carrega os dados e delega o cálculo aos redutores puros deste
// pacote.
type UseCase struct {
	saleRepo       repository.SaleRepository
	productRepo    repository.ProductRepository
	receivableRepo repository.ReceivableRepository
	payableRepo    repository.PayableRepository
	cashFlowRepo   repository.CashFlowRepository
	now            func() time.Time
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	receivableRepo repository.ReceivableRepository,
	payableRepo repository.PayableRepository,
	cashFlowRepo repository.CashFlowRepository,
) *UseCase {
	return &UseCase{
		saleRepo:       saleRepo,
		productRepo:    productRepo,
		receivableRepo: receivableRepo,
		payableRepo:    payableRepo,
		cashFlowRepo:   cashFlowRepo,
		now:            time.Now,
	}
}

// WithClock troca a fonte de tempo. Usado nos testes.
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// SalesSummary resumo de vendas do período.
func (uc *UseCase) SalesSummary(ctx context.Context, from, to time.Time) (*dto.SalesSummaryResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := SalesSummary(sales, from, to)
	return &out, nil
}

// TopProducts ranking de produtos mais vendidos no período.
func (uc *UseCase) TopProducts(ctx context.Context, from, to time.Time, limit int) ([]dto.TopProductEntry, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return TopProducts(sales, from, to, limit), nil
}

// TopCustomers ranking de melhores clientes no período.
func (uc *UseCase) TopCustomers(ctx context.Context, from, to time.Time, limit int) ([]dto.TopCustomerEntry, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultTopLimit
	}
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return TopCustomers(sales, from, to, limit), nil
}

// CashFlow relatório de fluxo de caixa agrupado por dia ou por mês.
func (uc *UseCase) CashFlow(ctx context.Context, from, to time.Time, groupBy string) (*dto.CashFlowReportResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	if groupBy == "" {
		groupBy = GroupByDay
	}
	if groupBy != GroupByDay && groupBy != GroupByMonth {
		return nil, domain.ErrInvalidInput
	}
	entries, err := uc.cashFlowRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := CashFlowReport(entries, from, to, groupBy)
	return &out, nil
}

// Stock relatório de posição de estoque.
func (uc *UseCase) Stock(ctx context.Context) (*dto.StockReportResponse, error) {
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := StockReport(products)
	return &out, nil
}

// Dashboard indicadores consolidados da tela inicial.
func (uc *UseCase) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	receivables, err := uc.receivableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	payables, err := uc.payableRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := Dashboard(sales, products, receivables, payables, uc.now())
	return &out, nil
}
