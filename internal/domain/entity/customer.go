package entity

import "time"

// Customer representa um cliente do depósito.
type Customer struct {
	ID        string
	Name      string
	Nickname  string // apelido usado no balcão
	Phone     string
	TaxID     string // CPF (11 dígitos) ou CNPJ (14 dígitos)
	Email     string
	Address   string
	City      string
	State     string // sigla UF, 2 caracteres
	ZipCode   string // CEP
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
