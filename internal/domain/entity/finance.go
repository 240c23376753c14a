package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de contas a receber e a pagar.
const (
	BillStatusPending  = "pendente"
	BillStatusPartial  = "parcial"
	BillStatusReceived = "recebida" // contas a receber
	BillStatusPaid     = "paga"     // contas a pagar
)

// Tipos de lançamento no fluxo de caixa.
const (
	CashFlowIn  = "entrada"
	CashFlowOut = "saida"
)

// Receivable é uma conta a receber de um cliente.
type Receivable struct {
	ID             string
	Description    string
	CustomerID     string
	CustomerName   string
	Amount         decimal.Decimal
	ReceivedAmount decimal.Decimal
	DueDate        time.Time
	ReceivedDate   *time.Time
	PaymentMethod  string
	Status         string // pendente | parcial | recebida
	Notes          string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Overdue informa se a conta está vencida e ainda não quitada.
func (r *Receivable) Overdue(now time.Time) bool {
	return r.Status != BillStatusReceived && r.DueDate.Before(now)
}

// Payable é uma conta a pagar a um fornecedor.
type Payable struct {
	ID            string
	Description   string
	Supplier      string
	Category      string // "outros" quando não informada
	Amount        decimal.Decimal
	PaidAmount    decimal.Decimal
	DueDate       time.Time
	PaidDate      *time.Time
	PaymentMethod string
	Status        string // pendente | parcial | paga
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Overdue informa se a conta está vencida e ainda não quitada.
func (p *Payable) Overdue(now time.Time) bool {
	return p.Status != BillStatusPaid && p.DueDate.Before(now)
}

// CashFlowEntry é um lançamento do fluxo de caixa. Append-only.
type CashFlowEntry struct {
	ID           string
	Type         string // entrada | saida
	Amount       decimal.Decimal
	Description  string
	Category     string // recebimento, despesa, outros, ...
	ReceivableID string // referência opcional à conta a receber quitada
	PayableID    string // referência opcional à conta a pagar quitada
	OccurredAt   time.Time
	CreatedAt    time.Time
}
