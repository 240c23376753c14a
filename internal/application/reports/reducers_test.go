package reports_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/gestor-deposito/internal/application/reports"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

var (
	from = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to   = time.Date(2026, 8, 31, 23, 59, 59, 0, time.UTC)
)

func venda(id string, day int, total int64, status, payment, customerID, customerName string, items ...entity.SaleItem) *entity.Sale {
	return &entity.Sale{
		ID:            id,
		SaleDate:      time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC),
		Total:         decimal.NewFromInt(total),
		Status:        status,
		PaymentMethod: payment,
		CustomerID:    customerID,
		CustomerName:  customerName,
		Items:         items,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// SalesSummary
// ──────────────────────────────────────────────────────────────────────────────

func TestSalesSummary_EntradaVaziaZeraTudo(t *testing.T) {
	out := reports.SalesSummary(nil, from, to)
	assert.Zero(t, out.TotalSales)
	assert.True(t, out.TotalRevenue.IsZero())
	assert.True(t, out.AverageTicket.IsZero())
	assert.Empty(t, out.ByPayment)
	assert.Empty(t, out.ByStatus)
}

func TestSalesSummary_CanceladasForaDosTotais(t *testing.T) {
	sales := []*entity.Sale{
		venda("v1", 5, 100, entity.SaleStatusCompleted, entity.PaymentPix, "c1", "João"),
		venda("v2", 10, 200, entity.SaleStatusCompleted, entity.PaymentCash, "c1", "João"),
		venda("v3", 12, 999, entity.SaleStatusCancelled, entity.PaymentPix, "c2", "Maria"),
		venda("v4", 12, 300, entity.SaleStatusCompleted, entity.PaymentPix, "c2", "Maria"),
	}
	out := reports.SalesSummary(sales, from, to)

	assert.Equal(t, 3, out.TotalSales, "cancelada não conta")
	assert.True(t, out.TotalRevenue.Equal(decimal.NewFromInt(600)))
	assert.True(t, out.AverageTicket.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.ByPayment[entity.PaymentPix].Equal(decimal.NewFromInt(400)))
	assert.Equal(t, 1, out.ByStatus[entity.SaleStatusCancelled], "mas aparece no mapa de status")
}

func TestSalesSummary_ForaDoPeriodoNaoConta(t *testing.T) {
	sales := []*entity.Sale{
		{SaleDate: from.AddDate(0, 0, -1), Total: decimal.NewFromInt(100), Status: entity.SaleStatusCompleted},
		{SaleDate: to.AddDate(0, 0, 1), Total: decimal.NewFromInt(100), Status: entity.SaleStatusCompleted},
	}
	out := reports.SalesSummary(sales, from, to)
	assert.Zero(t, out.TotalSales)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rankings
// ──────────────────────────────────────────────────────────────────────────────

func TestTopProducts_OrdenaPorQuantidade(t *testing.T) {
	sales := []*entity.Sale{
		venda("v1", 5, 0, entity.SaleStatusCompleted, "", "c1", "João",
			entity.SaleItem{ProductID: "p1", ProductName: "Cimento 50kg", Quantity: decimal.NewFromInt(10), UnitPrice: decimal.NewFromInt(32)},
			entity.SaleItem{ProductID: "p2", ProductName: "Cal 20kg", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(12)},
		),
		venda("v2", 8, 0, entity.SaleStatusCompleted, "", "c2", "Maria",
			entity.SaleItem{ProductID: "p1", ProductName: "Cimento 50kg", Quantity: decimal.NewFromInt(5), UnitPrice: decimal.NewFromInt(32)},
		),
		venda("v3", 9, 0, entity.SaleStatusCancelled, "", "c2", "Maria",
			entity.SaleItem{ProductID: "p2", ProductName: "Cal 20kg", Quantity: decimal.NewFromInt(50), UnitPrice: decimal.NewFromInt(12)},
		),
	}
	out := reports.TopProducts(sales, from, to, 10)

	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ProductID)
	assert.True(t, out[0].Quantity.Equal(decimal.NewFromInt(15)))
	assert.True(t, out[0].Revenue.Equal(decimal.NewFromInt(480)))
	assert.True(t, out[1].Quantity.Equal(decimal.NewFromInt(3)), "a venda cancelada não soma")
}

func TestTopProducts_RespeitaLimite(t *testing.T) {
	sale := venda("v1", 5, 0, entity.SaleStatusCompleted, "", "c1", "João",
		entity.SaleItem{ProductID: "p1", ProductName: "A", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(1)},
		entity.SaleItem{ProductID: "p2", ProductName: "B", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1)},
		entity.SaleItem{ProductID: "p3", ProductName: "C", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1)},
	)
	out := reports.TopProducts([]*entity.Sale{sale}, from, to, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "p1", out[0].ProductID)
}

func TestTopCustomers_OrdenaPorTotal(t *testing.T) {
	sales := []*entity.Sale{
		venda("v1", 5, 100, entity.SaleStatusCompleted, "", "c1", "João"),
		venda("v2", 6, 400, entity.SaleStatusCompleted, "", "c2", "Maria"),
		venda("v3", 7, 50, entity.SaleStatusCompleted, "", "c1", "João"),
		venda("v4", 8, 300, entity.SaleStatusCompleted, "", "", ""),
	}
	out := reports.TopCustomers(sales, from, to, 10)

	require.Len(t, out, 2, "venda sem cliente fica de fora")
	assert.Equal(t, "c2", out[0].CustomerID)
	assert.Equal(t, "c1", out[1].CustomerID)
	assert.Equal(t, 2, out[1].Purchases)
	assert.True(t, out[1].Total.Equal(decimal.NewFromInt(150)))
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo de caixa
// ──────────────────────────────────────────────────────────────────────────────

func lancamento(day int, typ string, amount int64) *entity.CashFlowEntry {
	return &entity.CashFlowEntry{
		Type:       typ,
		Amount:     decimal.NewFromInt(amount),
		OccurredAt: time.Date(2026, 8, day, 10, 0, 0, 0, time.UTC),
	}
}

func TestCashFlowReport_AgrupaPorDia(t *testing.T) {
	entries := []*entity.CashFlowEntry{
		lancamento(5, entity.CashFlowIn, 500),
		lancamento(5, entity.CashFlowOut, 120),
		lancamento(7, entity.CashFlowIn, 300),
	}
	out := reports.CashFlowReport(entries, from, to, reports.GroupByDay)

	assert.True(t, out.TotalInflow.Equal(decimal.NewFromInt(800)))
	assert.True(t, out.TotalOutflow.Equal(decimal.NewFromInt(120)))
	assert.True(t, out.Balance.Equal(decimal.NewFromInt(680)))

	require.Len(t, out.Groups, 2)
	assert.Equal(t, "2026-08-05", out.Groups[0].Key)
	assert.True(t, out.Groups[0].Balance.Equal(decimal.NewFromInt(380)))
	assert.Equal(t, "2026-08-07", out.Groups[1].Key)
}

func TestCashFlowReport_AgrupaPorMes(t *testing.T) {
	janeiro := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dezembro := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	entries := []*entity.CashFlowEntry{
		{Type: entity.CashFlowIn, Amount: decimal.NewFromInt(100), OccurredAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)},
		{Type: entity.CashFlowIn, Amount: decimal.NewFromInt(200), OccurredAt: time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)},
		{Type: entity.CashFlowOut, Amount: decimal.NewFromInt(50), OccurredAt: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}
	out := reports.CashFlowReport(entries, janeiro, dezembro, reports.GroupByMonth)

	require.Len(t, out.Groups, 2)
	assert.Equal(t, "2026-03", out.Groups[0].Key)
	assert.True(t, out.Groups[0].Inflow.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, "2026-04", out.Groups[1].Key)
}

func TestCashFlowReport_AgrupaPorCategoria(t *testing.T) {
	entries := []*entity.CashFlowEntry{
		{Type: entity.CashFlowIn, Amount: decimal.NewFromInt(500), Category: "recebimento",
			OccurredAt: time.Date(2026, 8, 5, 10, 0, 0, 0, time.UTC)},
		{Type: entity.CashFlowOut, Amount: decimal.NewFromInt(120), Category: "fornecedores",
			OccurredAt: time.Date(2026, 8, 5, 11, 0, 0, 0, time.UTC)},
		{Type: entity.CashFlowOut, Amount: decimal.NewFromInt(80), Category: "fornecedores",
			OccurredAt: time.Date(2026, 8, 9, 11, 0, 0, 0, time.UTC)},
	}
	out := reports.CashFlowReport(entries, from, to, reports.GroupByDay)

	require.Len(t, out.ByCategory, 2)
	assert.Equal(t, "fornecedores", out.ByCategory[0].Key)
	assert.True(t, out.ByCategory[0].Outflow.Equal(decimal.NewFromInt(200)))
	assert.True(t, out.ByCategory[0].Balance.Equal(decimal.NewFromInt(-200)))
	assert.Equal(t, "recebimento", out.ByCategory[1].Key)
	assert.True(t, out.ByCategory[1].Inflow.Equal(decimal.NewFromInt(500)))
}

func TestCashFlowReport_VazioNaoENil(t *testing.T) {
	out := reports.CashFlowReport(nil, from, to, reports.GroupByDay)
	assert.NotNil(t, out.Groups)
	assert.Empty(t, out.Groups)
	assert.NotNil(t, out.ByCategory)
	assert.Empty(t, out.ByCategory)
	assert.True(t, out.Balance.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque e dashboard
// ──────────────────────────────────────────────────────────────────────────────

func TestStockReport_TotaisEAlertas(t *testing.T) {
	products := []*entity.Product{
		{ID: "p1", Name: "Cimento 50kg", Quantity: decimal.NewFromInt(10), MinStock: decimal.NewFromInt(20),
			PurchasePrice: decimal.NewFromInt(28), SalePrice: decimal.NewFromInt(35), Active: true},
		{ID: "p2", Name: "Cal 20kg", Quantity: decimal.NewFromInt(100), MinStock: decimal.NewFromInt(10),
			PurchasePrice: decimal.NewFromInt(8), SalePrice: decimal.NewFromInt(12), Active: true},
		{ID: "p3", Name: "Descontinuado", Quantity: decimal.NewFromInt(5), Active: false},
	}
	out := reports.StockReport(products)

	require.Len(t, out.Items, 2, "inativo fica de fora")
	assert.True(t, out.TotalCostValue.Equal(decimal.NewFromInt(1080)), "10x28 + 100x8")
	assert.True(t, out.TotalSaleValue.Equal(decimal.NewFromInt(1550)), "10x35 + 100x12")
	assert.Equal(t, 1, out.LowStockCount)
	assert.True(t, out.Items[0].LowStock)
}

func TestDashboard_Indicadores(t *testing.T) {
	now := time.Date(2026, 8, 15, 18, 0, 0, 0, time.UTC)
	sales := []*entity.Sale{
		venda("hoje", 15, 200, entity.SaleStatusCompleted, "", "c1", "João"),
		venda("mes", 3, 300, entity.SaleStatusCompleted, "", "c1", "João"),
		venda("cancelada", 15, 999, entity.SaleStatusCancelled, "", "c1", "João"),
	}
	products := []*entity.Product{
		{Quantity: decimal.NewFromInt(1), MinStock: decimal.NewFromInt(5), Active: true},
	}
	receivables := []*entity.Receivable{
		{Amount: decimal.NewFromInt(100), ReceivedAmount: decimal.NewFromInt(40),
			DueDate: now.AddDate(0, 0, -2), Status: entity.BillStatusPartial},
	}
	payables := []*entity.Payable{
		{Amount: decimal.NewFromInt(500), PaidAmount: decimal.Zero,
			DueDate: now.AddDate(0, 0, 10), Status: entity.BillStatusPending},
	}

	out := reports.Dashboard(sales, products, receivables, payables, now)

	assert.Equal(t, 1, out.SalesToday)
	assert.True(t, out.RevenueToday.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, out.SalesMonth)
	assert.True(t, out.RevenueMonth.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 1, out.LowStockCount)
	assert.True(t, out.ReceivablesOpen.Equal(decimal.NewFromInt(60)), "saldo em aberto, não o valor cheio")
	assert.Equal(t, 1, out.ReceivablesOverdue)
	assert.True(t, out.PayablesOpen.Equal(decimal.NewFromInt(500)))
	assert.Zero(t, out.PayablesOverdue)
}
