package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest dados para cadastro de produto.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=2,max=100"`
	Category      string          `json:"category" validate:"max=100"`
	Unit          string          `json:"unit" validate:"max=10"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinStock      decimal.Decimal `json:"min_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Supplier      string          `json:"supplier" validate:"max=100"`
	Active        *bool           `json:"active"`
}

// UpdateProductRequest dados para atualização parcial de produto.
// Quantity não é atualizável por aqui: use o ajuste de estoque, que registra
// a movimentação de auditoria.
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=2,max=100"`
	Category      *string          `json:"category" validate:"omitempty,max=100"`
	Unit          *string          `json:"unit" validate:"omitempty,max=10"`
	MinStock      *decimal.Decimal `json:"min_stock"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	Supplier      *string          `json:"supplier" validate:"omitempty,max=100"`
	Active        *bool            `json:"active"`
}

// ProductResponse representação de produto nas respostas.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	Quantity      decimal.Decimal `json:"quantity"`
	MinStock      decimal.Decimal `json:"min_stock"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Supplier      string          `json:"supplier"`
	Active        bool            `json:"active"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListFilters filtros de listagem de produtos.
type ProductListFilters struct {
	Search   string // substring sobre nome, categoria e fornecedor (case-insensitive)
	Category string // igualdade exata
	LowStock bool   // apenas produtos no limite do estoque mínimo
}

// AdjustStockRequest ajuste manual de estoque: define a quantidade absoluta.
type AdjustStockRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
	Reason   string          `json:"reason" validate:"max=200"`
}

// StockMovementResponse representação de movimentação nas respostas.
type StockMovementResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Type        string          `json:"type"`
	Quantity    decimal.Decimal `json:"quantity"`
	PreviousQty decimal.Decimal `json:"previous_qty"`
	NewQty      decimal.Decimal `json:"new_qty"`
	Reason      string          `json:"reason"`
	SaleID      string          `json:"sale_id,omitempty"`
	PurchaseID  string          `json:"purchase_id,omitempty"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// CreateCategoryRequest dados para cadastro de categoria.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=200"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Active      *bool  `json:"active"`
}

// UpdateCategoryRequest dados para atualização parcial de categoria.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description" validate:"omitempty,max=200"`
	Color       *string `json:"color" validate:"omitempty,hexcolor"`
	Active      *bool   `json:"active"`
}

// CategoryResponse representação de categoria nas respostas.
type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
