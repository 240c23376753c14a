package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimentação de estoque.
const (
	MovementTypeEntry  = "entrada"
	MovementTypeExit   = "saida"
	MovementTypeAdjust = "ajuste"
)

// StockMovement é o registro de auditoria de uma alteração de estoque.
// Append-only: nunca é alterado nem removido; o estorno de uma operação
// insere um movimento compensatório do tipo oposto.
type StockMovement struct {
	ID          string
	ProductID   string
	ProductName string
	Type        string // entrada | saida | ajuste
	Quantity    decimal.Decimal
	PreviousQty decimal.Decimal
	NewQty      decimal.Decimal
	Reason      string // ex.: "Venda #12345", "Compra #54321", "Ajuste manual"
	SaleID      string // referência opcional à venda de origem
	PurchaseID  string // referência opcional à compra de origem
	OccurredAt  time.Time
	CreatedAt   time.Time
}
