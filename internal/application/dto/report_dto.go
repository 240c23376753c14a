package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod intervalo fechado de datas dos relatórios.
type ReportPeriod struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// SalesSummaryResponse resumo de vendas do período.
type SalesSummaryResponse struct {
	Period        ReportPeriod               `json:"period"`
	TotalSales    int                        `json:"total_sales"`
	TotalRevenue  decimal.Decimal            `json:"total_revenue"`
	AverageTicket decimal.Decimal            `json:"average_ticket"`
	ByPayment     map[string]decimal.Decimal `json:"by_payment"`
	ByStatus      map[string]int             `json:"by_status"`
}

// TopProductEntry posição do ranking de produtos mais vendidos.
type TopProductEntry struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopCustomerEntry posição do ranking de melhores clientes.
type TopCustomerEntry struct {
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Purchases    int             `json:"purchases"`
	Total        decimal.Decimal `json:"total"`
}

// CashFlowGroup agregação do fluxo de caixa por dia ou por mês.
type CashFlowGroup struct {
	Key     string          `json:"key"` // "2006-01-02" por dia, "2006-01" por mês
	Inflow  decimal.Decimal `json:"inflow"`
	Outflow decimal.Decimal `json:"outflow"`
	Balance decimal.Decimal `json:"balance"`
}

// CashFlowReportResponse relatório de fluxo de caixa do período.
// Groups agrega por dia/mês; ByCategory agrega por categoria de lançamento.
type CashFlowReportResponse struct {
	Period       ReportPeriod    `json:"period"`
	TotalInflow  decimal.Decimal `json:"total_inflow"`
	TotalOutflow decimal.Decimal `json:"total_outflow"`
	Balance      decimal.Decimal `json:"balance"`
	Groups       []CashFlowGroup `json:"groups"`
	ByCategory   []CashFlowGroup `json:"by_category"`
}

// StockReportItem linha do relatório de estoque.
type StockReportItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Quantity  decimal.Decimal `json:"quantity"`
	MinStock  decimal.Decimal `json:"min_stock"`
	CostValue decimal.Decimal `json:"cost_value"` // quantidade * preço de compra
	SaleValue decimal.Decimal `json:"sale_value"` // quantidade * preço de venda
	LowStock  bool            `json:"low_stock"`
}

// StockReportResponse relatório de posição de estoque.
type StockReportResponse struct {
	Items          []StockReportItem `json:"items"`
	TotalCostValue decimal.Decimal   `json:"total_cost_value"`
	TotalSaleValue decimal.Decimal   `json:"total_sale_value"`
	LowStockCount  int               `json:"low_stock_count"`
}

// DashboardResponse indicadores da tela inicial.
type DashboardResponse struct {
	SalesToday         int             `json:"sales_today"`
	RevenueToday       decimal.Decimal `json:"revenue_today"`
	SalesMonth         int             `json:"sales_month"`
	RevenueMonth       decimal.Decimal `json:"revenue_month"`
	LowStockCount      int             `json:"low_stock_count"`
	ReceivablesOpen    decimal.Decimal `json:"receivables_open"`
	PayablesOpen       decimal.Decimal `json:"payables_open"`
	ReceivablesOverdue int             `json:"receivables_overdue"`
	PayablesOverdue    int             `json:"payables_overdue"`
}
