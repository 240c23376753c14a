package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateReceivableRequest dados para cadastro de conta a receber.
type CreateReceivableRequest struct {
	Description  string          `json:"description" validate:"required,max=200"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name" validate:"max=100"`
	Amount       decimal.Decimal `json:"amount"`
	DueDate      time.Time       `json:"due_date" validate:"required"`
	Notes        string          `json:"notes" validate:"max=500"`
}

// UpdateReceivableRequest atualização parcial de conta a receber.
type UpdateReceivableRequest struct {
	Description  *string          `json:"description" validate:"omitempty,max=200"`
	CustomerID   *string          `json:"customer_id"`
	CustomerName *string          `json:"customer_name" validate:"omitempty,max=100"`
	Amount       *decimal.Decimal `json:"amount"`
	DueDate      *time.Time       `json:"due_date"`
	Notes        *string          `json:"notes" validate:"omitempty,max=500"`
}

// ReceivePaymentRequest recebimento (total ou parcial) de uma conta a receber.
// Amount ausente ou zero quita o saldo restante.
type ReceivePaymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	ReceivedAt    *time.Time      `json:"received_at"`
}

// ReceivableResponse representação de conta a receber nas respostas.
type ReceivableResponse struct {
	ID             string          `json:"id"`
	Description    string          `json:"description"`
	CustomerID     string          `json:"customer_id,omitempty"`
	CustomerName   string          `json:"customer_name,omitempty"`
	Amount         decimal.Decimal `json:"amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	DueDate        time.Time       `json:"due_date"`
	ReceivedDate   *time.Time      `json:"received_date,omitempty"`
	PaymentMethod  string          `json:"payment_method,omitempty"`
	Status         string          `json:"status"`
	Overdue        bool            `json:"overdue"`
	Notes          string          `json:"notes,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CreatePayableRequest dados para cadastro de conta a pagar.
type CreatePayableRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	Supplier    string          `json:"supplier" validate:"max=100"`
	Category    string          `json:"category" validate:"max=100"`
	Amount      decimal.Decimal `json:"amount"`
	DueDate     time.Time       `json:"due_date" validate:"required"`
	Notes       string          `json:"notes" validate:"max=500"`
}

// UpdatePayableRequest atualização parcial de conta a pagar.
type UpdatePayableRequest struct {
	Description *string          `json:"description" validate:"omitempty,max=200"`
	Supplier    *string          `json:"supplier" validate:"omitempty,max=100"`
	Category    *string          `json:"category" validate:"omitempty,max=100"`
	Amount      *decimal.Decimal `json:"amount"`
	DueDate     *time.Time       `json:"due_date"`
	Notes       *string          `json:"notes" validate:"omitempty,max=500"`
}

// PayBillRequest pagamento (total ou parcial) de uma conta a pagar.
// Amount ausente ou zero quita o saldo restante.
type PayBillRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	PaidAt        *time.Time      `json:"paid_at"`
}

// PayableResponse representação de conta a pagar nas respostas.
type PayableResponse struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Supplier      string          `json:"supplier,omitempty"`
	Category      string          `json:"category,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
	DueDate       time.Time       `json:"due_date"`
	PaidDate      *time.Time      `json:"paid_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Status        string          `json:"status"`
	Overdue       bool            `json:"overdue"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// CreateCashFlowEntryRequest lançamento manual no fluxo de caixa.
type CreateCashFlowEntryRequest struct {
	Type        string          `json:"type" validate:"required,oneof=entrada saida"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description" validate:"required,max=200"`
	Category    string          `json:"category" validate:"max=100"`
	OccurredAt  *time.Time      `json:"occurred_at"`
}

// CashFlowEntryResponse lançamento do fluxo de caixa nas respostas.
type CashFlowEntryResponse struct {
	ID           string          `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Category     string          `json:"category,omitempty"`
	ReceivableID string          `json:"receivable_id,omitempty"`
	PayableID    string          `json:"payable_id,omitempty"`
	OccurredAt   time.Time       `json:"occurred_at"`
	CreatedAt    time.Time       `json:"created_at"`
}
