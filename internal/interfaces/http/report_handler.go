package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/reports"
)

// ReportHandler trata as requisições HTTP de relatórios (protegido).
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler constrói o handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// parsePeriod lê from/to (formato 2006-01-02) da query string. Sem parâmetros,
// o período são os últimos 30 dias. "to" cobre o dia inteiro (fim às 23:59:59).
func parsePeriod(c *fiber.Ctx) (time.Time, time.Time, error) {
	now := time.Now()
	from := now.AddDate(0, 0, -30)
	to := now

	if s := c.Query("from"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if s := c.Query("to"); s != "" {
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.Add(24*time.Hour - time.Second)
	}
	return from, to, nil
}

func invalidPeriod(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from/to devem estar no formato 2006-01-02"})
}

// SalesSummary godoc
// @Summary      Resumo de vendas do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from  query  string  false  "Início (2006-01-02)"
// @Param        to    query  string  false  "Fim (2006-01-02)"
// @Success      200  {object}  dto.SalesSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/sales-summary [get]
func (h *ReportHandler) SalesSummary(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return invalidPeriod(c)
	}
	out, err := h.uc.SalesSummary(c.UserContext(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopProducts godoc
// @Summary      Produtos mais vendidos do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Início (2006-01-02)"
// @Param        to     query  string  false  "Fim (2006-01-02)"
// @Param        limit  query  int     false  "Tamanho do ranking"  default(10)
// @Success      200  {array}  dto.TopProductEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/top-products [get]
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return invalidPeriod(c)
	}
	out, err := h.uc.TopProducts(c.UserContext(), from, to, c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// TopCustomers godoc
// @Summary      Melhores clientes do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from   query  string  false  "Início (2006-01-02)"
// @Param        to     query  string  false  "Fim (2006-01-02)"
// @Param        limit  query  int     false  "Tamanho do ranking"  default(10)
// @Success      200  {array}  dto.TopCustomerEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/top-customers [get]
func (h *ReportHandler) TopCustomers(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return invalidPeriod(c)
	}
	out, err := h.uc.TopCustomers(c.UserContext(), from, to, c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CashFlow godoc
// @Summary      Fluxo de caixa do período
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from      query  string  false  "Início (2006-01-02)"
// @Param        to        query  string  false  "Fim (2006-01-02)"
// @Param        group_by  query  string  false  "Agrupamento: day ou month"  default(day)
// @Success      200  {object}  dto.CashFlowReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/cashflow [get]
func (h *ReportHandler) CashFlow(c *fiber.Ctx) error {
	from, to, err := parsePeriod(c)
	if err != nil {
		return invalidPeriod(c)
	}
	out, err := h.uc.CashFlow(c.UserContext(), from, to, c.Query("group_by", "day"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Posição de estoque (valores e itens abaixo do mínimo)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockReportResponse
// @Router       /api/reports/stock [get]
func (h *ReportHandler) Stock(c *fiber.Ctx) error {
	out, err := h.uc.Stock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Dashboard godoc
// @Summary      Indicadores da tela inicial
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardResponse
// @Router       /api/reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
