package ports

import "github.com/seu-usuario/gestor-deposito/internal/domain/entity"

// ReceiptGenerator gera o recibo de venda em PDF.
type ReceiptGenerator interface {
	Generate(sale *entity.Sale) ([]byte, error)
}
