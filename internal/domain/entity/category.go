package entity

import "time"

// Category representa uma categoria de produto.
type Category struct {
	ID          string
	Name        string
	Description string
	Color       string // cor de exibição, hex (#3B82F6 por padrão)
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
