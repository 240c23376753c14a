package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest uma linha da venda.
type SaleItemRequest struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name" validate:"max=100"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest dados para registro de venda.
type CreateSaleRequest struct {
	CustomerID    string            `json:"customer_id" validate:"required"`
	CustomerName  string            `json:"customer_name" validate:"max=100"`
	SaleDate      time.Time         `json:"sale_date" validate:"required"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status" validate:"required,oneof=concluida em_andamento cancelada"`
	PaymentMethod string            `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	Notes         string            `json:"notes" validate:"max=500"`
}

// UpdateSaleRequest atualização de venda. Não mexe no estoque: a baixa
// acontece só na criação e o estorno só na exclusão.
type UpdateSaleRequest struct {
	CustomerID    *string           `json:"customer_id"`
	CustomerName  *string           `json:"customer_name" validate:"omitempty,max=100"`
	SaleDate      *time.Time        `json:"sale_date"`
	Items         []SaleItemRequest `json:"items" validate:"omitempty,dive"`
	Total         *decimal.Decimal  `json:"total"`
	Status        *string           `json:"status" validate:"omitempty,oneof=concluida em_andamento cancelada"`
	PaymentMethod *string           `json:"payment_method" validate:"omitempty,oneof=dinheiro pix cartao_debito cartao_credito transferencia fiado"`
	Notes         *string           `json:"notes" validate:"omitempty,max=500"`
}

// SaleItemResponse uma linha da venda nas respostas.
type SaleItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// SaleResponse representação de venda nas respostas.
type SaleResponse struct {
	ID            string             `json:"id"`
	Code          string             `json:"code"`
	CustomerID    string             `json:"customer_id"`
	CustomerName  string             `json:"customer_name"`
	SaleDate      time.Time          `json:"sale_date"`
	Items         []SaleItemResponse `json:"items"`
	Total         decimal.Decimal    `json:"total"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"payment_method,omitempty"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}
