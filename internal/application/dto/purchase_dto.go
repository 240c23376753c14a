package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemRequest uma linha da compra. O produto é identificado pelo nome
// (casamento por igualdade exata, salvo modo "id" na configuração).
type PurchaseItemRequest struct {
	ProductName   string          `json:"product_name" validate:"required,max=100"`
	ProductID     string          `json:"product_id"` // usado apenas no modo de casamento por ID
	Category      string          `json:"category" validate:"max=100"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// CreatePurchaseRequest dados para registro de compra.
type CreatePurchaseRequest struct {
	Supplier      string                `json:"supplier" validate:"required,max=100"`
	PurchaseDate  time.Time             `json:"purchase_date" validate:"required"`
	Items         []PurchaseItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         decimal.Decimal       `json:"total"`
	PaymentMethod string                `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	Notes         string                `json:"notes" validate:"max=500"`
}

// UpdatePurchaseRequest atualização de compra (sem efeito sobre o estoque).
type UpdatePurchaseRequest struct {
	Supplier      *string               `json:"supplier" validate:"omitempty,max=100"`
	PurchaseDate  *time.Time            `json:"purchase_date"`
	Items         []PurchaseItemRequest `json:"items" validate:"omitempty,dive"`
	Total         *decimal.Decimal      `json:"total"`
	PaymentMethod *string               `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	Notes         *string               `json:"notes" validate:"omitempty,max=500"`
}

// PurchaseItemResponse uma linha da compra nas respostas.
type PurchaseItemResponse struct {
	ProductName   string          `json:"product_name"`
	Category      string          `json:"category"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
}

// PurchaseResponse representação de compra nas respostas.
type PurchaseResponse struct {
	ID            string                 `json:"id"`
	Code          string                 `json:"code"`
	Supplier      string                 `json:"supplier"`
	PurchaseDate  time.Time              `json:"purchase_date"`
	Items         []PurchaseItemResponse `json:"items"`
	Total         decimal.Decimal        `json:"total"`
	PaymentMethod string                 `json:"payment_method,omitempty"`
	Notes         string                 `json:"notes,omitempty"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}
