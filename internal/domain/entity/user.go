package entity

import "time"

// User representa um usuário do sistema (acesso ao painel).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | operador
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Papéis de usuário.
const (
	RoleAdmin    = "admin"
	RoleOperator = "operador"
)
