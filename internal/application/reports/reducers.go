// Package reports implementa os relatórios gerenciais como funções puras
// sobre os dados já carregados: sem consultas próprias, sem estado. Entrada
// vazia produz totais zerados e listas vazias, nunca nil.
package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// Agrupamentos aceitos no relatório de fluxo de caixa.
const (
	GroupByDay   = "day"
	GroupByMonth = "month"
)

// inPeriod informa se t cai no intervalo fechado [from, to].
func inPeriod(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// SalesSummary resume as vendas do período. Vendas canceladas contam no mapa
// de status mas ficam de fora do total, da receita e do rateio por pagamento.
func SalesSummary(sales []*entity.Sale, from, to time.Time) dto.SalesSummaryResponse {
	out := dto.SalesSummaryResponse{
		Period:        dto.ReportPeriod{From: from, To: to},
		TotalRevenue:  decimal.Zero,
		AverageTicket: decimal.Zero,
		ByPayment:     map[string]decimal.Decimal{},
		ByStatus:      map[string]int{},
	}
	for _, s := range sales {
		if !inPeriod(s.SaleDate, from, to) {
			continue
		}
		out.ByStatus[s.Status]++
		if s.Status == entity.SaleStatusCancelled {
			continue
		}
		out.TotalSales++
		out.TotalRevenue = out.TotalRevenue.Add(s.Total)
		method := s.PaymentMethod
		if method == "" {
			method = "nao_informado"
		}
		out.ByPayment[method] = out.ByPayment[method].Add(s.Total)
	}
	if out.TotalSales > 0 {
		out.AverageTicket = out.TotalRevenue.DivRound(decimal.NewFromInt(int64(out.TotalSales)), 2)
	}
	return out
}

// TopProducts ranqueia os produtos mais vendidos no período por quantidade,
// com a receita como desempate. Vendas canceladas ficam de fora. Itens sem
// product_id são agregados pelo nome.
func TopProducts(sales []*entity.Sale, from, to time.Time, limit int) []dto.TopProductEntry {
	type acc struct {
		id       string
		name     string
		quantity decimal.Decimal
		revenue  decimal.Decimal
	}
	byKey := map[string]*acc{}
	for _, s := range sales {
		if !inPeriod(s.SaleDate, from, to) || s.Status == entity.SaleStatusCancelled {
			continue
		}
		for _, it := range s.Items {
			key := it.ProductID
			if key == "" {
				key = "name:" + it.ProductName
			}
			a, ok := byKey[key]
			if !ok {
				a = &acc{id: it.ProductID, name: it.ProductName, quantity: decimal.Zero, revenue: decimal.Zero}
				byKey[key] = a
			}
			a.quantity = a.quantity.Add(it.Quantity)
			a.revenue = a.revenue.Add(it.Quantity.Mul(it.UnitPrice))
		}
	}
	entries := make([]dto.TopProductEntry, 0, len(byKey))
	for _, a := range byKey {
		entries = append(entries, dto.TopProductEntry{
			ProductID:   a.id,
			ProductName: a.name,
			Quantity:    a.quantity,
			Revenue:     a.revenue,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Quantity.Equal(entries[j].Quantity) {
			return entries[i].Quantity.GreaterThan(entries[j].Quantity)
		}
		return entries[i].Revenue.GreaterThan(entries[j].Revenue)
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// TopCustomers ranqueia os clientes do período pelo total gasto.
// Vendas canceladas ficam de fora; vendas sem cliente também.
func TopCustomers(sales []*entity.Sale, from, to time.Time, limit int) []dto.TopCustomerEntry {
	type acc struct {
		name      string
		purchases int
		total     decimal.Decimal
	}
	byID := map[string]*acc{}
	for _, s := range sales {
		if !inPeriod(s.SaleDate, from, to) || s.Status == entity.SaleStatusCancelled || s.CustomerID == "" {
			continue
		}
		a, ok := byID[s.CustomerID]
		if !ok {
			a = &acc{name: s.CustomerName, total: decimal.Zero}
			byID[s.CustomerID] = a
		}
		a.purchases++
		a.total = a.total.Add(s.Total)
	}
	entries := make([]dto.TopCustomerEntry, 0, len(byID))
	for id, a := range byID {
		entries = append(entries, dto.TopCustomerEntry{
			CustomerID:   id,
			CustomerName: a.name,
			Purchases:    a.purchases,
			Total:        a.total,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Total.Equal(entries[j].Total) {
			return entries[i].Total.GreaterThan(entries[j].Total)
		}
		return entries[i].Purchases > entries[j].Purchases
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// CashFlowReport agrega os lançamentos do período por dia ou por mês, em
// ordem cronológica, com totais, saldo e a quebra por categoria.
func CashFlowReport(entries []*entity.CashFlowEntry, from, to time.Time, groupBy string) dto.CashFlowReportResponse {
	layout := "2006-01-02"
	if groupBy == GroupByMonth {
		layout = "2006-01"
	}
	out := dto.CashFlowReportResponse{
		Period:       dto.ReportPeriod{From: from, To: to},
		TotalInflow:  decimal.Zero,
		TotalOutflow: decimal.Zero,
		Balance:      decimal.Zero,
		Groups:       []dto.CashFlowGroup{},
		ByCategory:   []dto.CashFlowGroup{},
	}
	byKey := map[string]*dto.CashFlowGroup{}
	byCategory := map[string]*dto.CashFlowGroup{}
	bump := func(m map[string]*dto.CashFlowGroup, key string, e *entity.CashFlowEntry) {
		g, ok := m[key]
		if !ok {
			g = &dto.CashFlowGroup{Key: key, Inflow: decimal.Zero, Outflow: decimal.Zero, Balance: decimal.Zero}
			m[key] = g
		}
		if e.Type == entity.CashFlowIn {
			g.Inflow = g.Inflow.Add(e.Amount)
		} else {
			g.Outflow = g.Outflow.Add(e.Amount)
		}
	}
	for _, e := range entries {
		if !inPeriod(e.OccurredAt, from, to) {
			continue
		}
		bump(byKey, e.OccurredAt.Format(layout), e)
		bump(byCategory, e.Category, e)
		if e.Type == entity.CashFlowIn {
			out.TotalInflow = out.TotalInflow.Add(e.Amount)
		} else {
			out.TotalOutflow = out.TotalOutflow.Add(e.Amount)
		}
	}
	collect := func(m map[string]*dto.CashFlowGroup) []dto.CashFlowGroup {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		groups := make([]dto.CashFlowGroup, 0, len(keys))
		for _, k := range keys {
			g := m[k]
			g.Balance = g.Inflow.Sub(g.Outflow)
			groups = append(groups, *g)
		}
		return groups
	}
	out.Groups = collect(byKey)
	out.ByCategory = collect(byCategory)
	out.Balance = out.TotalInflow.Sub(out.TotalOutflow)
	return out
}

// StockReport calcula a posição de estoque: valor a preço de compra e de
// venda por produto e os totais. Produtos inativos ficam de fora.
func StockReport(products []*entity.Product) dto.StockReportResponse {
	out := dto.StockReportResponse{
		Items:          []dto.StockReportItem{},
		TotalCostValue: decimal.Zero,
		TotalSaleValue: decimal.Zero,
	}
	for _, p := range products {
		if !p.Active {
			continue
		}
		cost := p.Quantity.Mul(p.PurchasePrice)
		sale := p.Quantity.Mul(p.SalePrice)
		low := p.LowStock()
		out.Items = append(out.Items, dto.StockReportItem{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  p.Quantity,
			MinStock:  p.MinStock,
			CostValue: cost,
			SaleValue: sale,
			LowStock:  low,
		})
		out.TotalCostValue = out.TotalCostValue.Add(cost)
		out.TotalSaleValue = out.TotalSaleValue.Add(sale)
		if low {
			out.LowStockCount++
		}
	}
	return out
}

// Dashboard consolida os indicadores da tela inicial a partir do estado
// atual: vendas de hoje e do mês, alertas de estoque e posição do financeiro.
func Dashboard(sales []*entity.Sale, products []*entity.Product, receivables []*entity.Receivable, payables []*entity.Payable, now time.Time) dto.DashboardResponse {
	out := dto.DashboardResponse{
		RevenueToday:    decimal.Zero,
		RevenueMonth:    decimal.Zero,
		ReceivablesOpen: decimal.Zero,
		PayablesOpen:    decimal.Zero,
	}
	year, month, day := now.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())

	for _, s := range sales {
		if s.Status == entity.SaleStatusCancelled {
			continue
		}
		if !s.SaleDate.Before(startOfMonth) && !s.SaleDate.After(now) {
			out.SalesMonth++
			out.RevenueMonth = out.RevenueMonth.Add(s.Total)
		}
		if !s.SaleDate.Before(startOfDay) && !s.SaleDate.After(now) {
			out.SalesToday++
			out.RevenueToday = out.RevenueToday.Add(s.Total)
		}
	}
	for _, p := range products {
		if p.Active && p.LowStock() {
			out.LowStockCount++
		}
	}
	for _, r := range receivables {
		if r.Status == entity.BillStatusReceived {
			continue
		}
		out.ReceivablesOpen = out.ReceivablesOpen.Add(r.Amount.Sub(r.ReceivedAmount))
		if r.Overdue(now) {
			out.ReceivablesOverdue++
		}
	}
	for _, p := range payables {
		if p.Status == entity.BillStatusPaid {
			continue
		}
		out.PayablesOpen = out.PayablesOpen.Add(p.Amount.Sub(p.PaidAmount))
		if p.Overdue(now) {
			out.PayablesOverdue++
		}
	}
	return out
}
