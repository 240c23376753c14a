package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItem é uma linha da compra. O produto é identificado pelo nome
// (texto livre, não chave estrangeira): o casamento é por igualdade exata.
type PurchaseItem struct {
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// Purchase representa uma compra de mercadoria junto a um fornecedor.
// Criar uma compra também dá entrada no estoque: produtos casados pelo nome
// têm a quantidade somada e o preço de compra sobrescrito; nomes sem produto
// correspondente geram um cadastro novo.
type Purchase struct {
	ID            string
	Code          string
	Supplier      string // texto livre
	PurchaseDate  time.Time
	Items         []PurchaseItem
	Total         decimal.Decimal
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
