package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/finance"
)

// FinanceHandler trata as requisições HTTP do financeiro: contas a receber,
// contas a pagar e fluxo de caixa (protegido).
type FinanceHandler struct {
	uc *finance.UseCase
}

// NewFinanceHandler constrói o handler.
func NewFinanceHandler(uc *finance.UseCase) *FinanceHandler {
	return &FinanceHandler{uc: uc}
}

// ── Contas a receber ──────────────────────────────────────────────────────────

// CreateReceivable godoc
// @Summary      Cadastrar conta a receber
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceivableRequest  true  "Dados da conta"
// @Success      201   {object}  dto.ReceivableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/receivables [post]
func (h *FinanceHandler) CreateReceivable(c *fiber.Ctx) error {
	var in dto.CreateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateReceivable(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListReceivables godoc
// @Summary      Listar contas a receber (vencimento crescente)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        open  query  bool  false  "Somente contas em aberto"
// @Success      200  {array}  dto.ReceivableResponse
// @Router       /api/finance/receivables [get]
func (h *FinanceHandler) ListReceivables(c *fiber.Ctx) error {
	out, err := h.uc.ListReceivables(c.UserContext(), c.QueryBool("open", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetReceivable godoc
// @Summary      Obter conta a receber por ID
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.ReceivableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/receivables/{id} [get]
func (h *FinanceHandler) GetReceivable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetReceivable(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "conta a receber não encontrada")
	}
	return c.JSON(out)
}

// UpdateReceivable godoc
// @Summary      Atualizar conta a receber
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.UpdateReceivableRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ReceivableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/receivables/{id} [put]
func (h *FinanceHandler) UpdateReceivable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdateReceivableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdateReceivable(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "conta a receber não encontrada")
	}
	return c.JSON(out)
}

// DeleteReceivable godoc
// @Summary      Excluir conta a receber
// @Tags         finance
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/receivables/{id} [delete]
func (h *FinanceHandler) DeleteReceivable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeleteReceivable(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Receive godoc
// @Summary      Registrar recebimento (parcial ou total)
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.ReceivePaymentRequest  true  "Valor recebido"
// @Success      200   {object}  dto.ReceivableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/receivables/{id}/receive [post]
func (h *FinanceHandler) Receive(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.ReceivePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Receive(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Contas a pagar ────────────────────────────────────────────────────────────

// CreatePayable godoc
// @Summary      Cadastrar conta a pagar
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePayableRequest  true  "Dados da conta"
// @Success      201   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/payables [post]
func (h *FinanceHandler) CreatePayable(c *fiber.Ctx) error {
	var in dto.CreatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreatePayable(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPayables godoc
// @Summary      Listar contas a pagar (vencimento crescente)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        open  query  bool  false  "Somente contas em aberto"
// @Success      200  {array}  dto.PayableResponse
// @Router       /api/finance/payables [get]
func (h *FinanceHandler) ListPayables(c *fiber.Ctx) error {
	out, err := h.uc.ListPayables(c.UserContext(), c.QueryBool("open", false))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetPayable godoc
// @Summary      Obter conta a pagar por ID
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da conta"
// @Success      200  {object}  dto.PayableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/payables/{id} [get]
func (h *FinanceHandler) GetPayable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	out, err := h.uc.GetPayable(c.UserContext(), id)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "conta a pagar não encontrada")
	}
	return c.JSON(out)
}

// UpdatePayable godoc
// @Summary      Atualizar conta a pagar
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.UpdatePayableRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/payables/{id} [put]
func (h *FinanceHandler) UpdatePayable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.UpdatePayableRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.UpdatePayable(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "conta a pagar não encontrada")
	}
	return c.JSON(out)
}

// DeletePayable godoc
// @Summary      Excluir conta a pagar
// @Tags         finance
// @Security     Bearer
// @Param        id  path  string  true  "ID da conta"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/finance/payables/{id} [delete]
func (h *FinanceHandler) DeletePayable(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	if err := h.uc.DeletePayable(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pay godoc
// @Summary      Registrar pagamento (parcial ou total)
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da conta"
// @Param        body  body  dto.PayBillRequest  true  "Valor pago"
// @Success      200   {object}  dto.PayableResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/finance/payables/{id}/pay [post]
func (h *FinanceHandler) Pay(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return missingID(c)
	}
	var in dto.PayBillRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Pay(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Fluxo de caixa ────────────────────────────────────────────────────────────

// CreateCashFlowEntry godoc
// @Summary      Lançar entrada ou saída manual no caixa
// @Tags         finance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCashFlowEntryRequest  true  "Dados do lançamento"
// @Success      201   {object}  dto.CashFlowEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/finance/cashflow [post]
func (h *FinanceHandler) CreateCashFlowEntry(c *fiber.Ctx) error {
	var in dto.CreateCashFlowEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.CreateCashFlowEntry(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListCashFlow godoc
// @Summary      Listar lançamentos do caixa (mais recentes primeiro)
// @Tags         finance
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.CashFlowEntryResponse
// @Router       /api/finance/cashflow [get]
func (h *FinanceHandler) ListCashFlow(c *fiber.Ctx) error {
	out, err := h.uc.ListCashFlow(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
