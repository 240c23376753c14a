package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque do depósito.
// Quantity nunca é persistida negativa: as baixas de venda fazem clamp em zero.
// As compras casam o produto pelo nome exato (herança do modelo original),
// por isso Name tem índice único.
type Product struct {
	ID            string
	Name          string
	Category      string // "Geral" quando não informada
	Unit          string // unidade de medida: "un", "kg", "m", ...
	Quantity      decimal.Decimal
	MinStock      decimal.Decimal // limite para alerta de estoque baixo
	PurchasePrice decimal.Decimal
	SalePrice     decimal.Decimal
	Supplier      string
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// LowStock informa se o produto está no limite ou abaixo do estoque mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity.LessThanOrEqual(p.MinStock)
}
