// Package ports declara as portas de infraestrutura compartilhadas pelos
// casos de uso, mantendo a camada de aplicação livre de dependências concretas.
package ports

import (
	"context"

	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados a essa transação. Garante atomicidade para os fluxos
// venda↔estoque e compra↔estoque (documento + baixa/entrada + movimentações
// gravados juntos ou nada).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
