package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de venda.
const (
	SaleStatusCompleted  = "concluida"
	SaleStatusInProgress = "em_andamento"
	SaleStatusCancelled  = "cancelada"
)

// Formas de pagamento aceitas em vendas e no financeiro.
const (
	PaymentCash       = "dinheiro"
	PaymentPix        = "pix"
	PaymentDebitCard  = "cartao_debito"
	PaymentCreditCard = "cartao_credito"
	PaymentTransfer   = "transferencia"
	PaymentOnCredit   = "fiado"
)

// SaleItem é uma linha da venda: referência ao produto por ID, quantidade e
// preço unitário praticado. Persistido como JSONB dentro da venda.
type SaleItem struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Sale representa uma venda. Code é um código de exibição de 5 dígitos gerado
// na criação (colisões não são verificadas, comportamento herdado do original).
type Sale struct {
	ID            string
	Code          string
	CustomerID    string
	CustomerName  string // denormalizado para busca e exibição
	SaleDate      time.Time
	Items         []SaleItem
	Total         decimal.Decimal
	Status        string // concluida | em_andamento | cancelada
	PaymentMethod string // opcional
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
