package dto

import (
	"time"
)

// CreateCustomerRequest dados para cadastro de cliente.
// Phone e ZipCode aceitam máscara; o caso de uso normaliza para dígitos.
type CreateCustomerRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Nickname string `json:"nickname" validate:"max=50"`
	Phone    string `json:"phone" validate:"max=20"`
	TaxID    string `json:"tax_id" validate:"max=20"`
	Email    string `json:"email" validate:"omitempty,email"`
	Address  string `json:"address" validate:"max=200"`
	City     string `json:"city" validate:"max=100"`
	State    string `json:"state" validate:"omitempty,len=2"`
	ZipCode  string `json:"zip_code" validate:"max=10"`
	Notes    string `json:"notes" validate:"max=500"`
}

// UpdateCustomerRequest dados para atualização parcial de cliente.
type UpdateCustomerRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=2,max=100"`
	Nickname *string `json:"nickname" validate:"omitempty,max=50"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	TaxID    *string `json:"tax_id" validate:"omitempty,max=20"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Address  *string `json:"address" validate:"omitempty,max=200"`
	City     *string `json:"city" validate:"omitempty,max=100"`
	State    *string `json:"state" validate:"omitempty,len=2"`
	ZipCode  *string `json:"zip_code" validate:"omitempty,max=10"`
	Notes    *string `json:"notes" validate:"omitempty,max=500"`
}

// CustomerResponse representação de cliente nas respostas.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Nickname  string    `json:"nickname,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	TaxID     string    `json:"tax_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CustomerHistoryResponse cliente com as últimas compras dele.
type CustomerHistoryResponse struct {
	Customer CustomerResponse `json:"customer"`
	Sales    []SaleResponse   `json:"sales"`
}
