// Package inventory implementa os casos de uso de estoque: cadastro de
// produtos, ajuste manual com auditoria, histórico de movimentações e
// categorias.
package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/application/ports"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

const cacheEntity = "products"

// ProductUseCase casos de uso CRUD de produtos e ajuste manual de estoque.
// Alterações de quantidade passam sempre por movimentação: ou pelos fluxos de
// venda/compra, ou pelo AdjustStock daqui.
type ProductUseCase struct {
	txRunner     ports.TxRunner
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	cache        ports.ListCache
}

// NewProductUseCase constrói o caso de uso. cache pode ser nil.
func NewProductUseCase(txRunner ports.TxRunner, productRepo repository.ProductRepository, movementRepo repository.StockMovementRepository, cache ports.ListCache) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo, movementRepo: movementRepo, cache: cache}
}

// Create cadastra um produto. Nome duplicado é rejeitado. Quantidade inicial
// maior que zero gera uma movimentação de entrada "Cadastro inicial".
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Quantity.IsNegative() || in.MinStock.IsNegative() || in.PurchasePrice.IsNegative() || in.SalePrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Unit:          in.Unit,
		Quantity:      in.Quantity,
		MinStock:      in.MinStock,
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		Supplier:      in.Supplier,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if product.Category == "" {
		product.Category = "Geral"
	}
	if product.Unit == "" {
		product.Unit = "un"
	}
	if in.Active != nil {
		product.Active = *in.Active
	}

	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if !product.Quantity.GreaterThan(decimal.Zero) {
			return nil
		}
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        entity.MovementTypeEntry,
			Quantity:    product.Quantity,
			PreviousQty: decimal.Zero,
			NewQty:      product.Quantity,
			Reason:      "Cadastro inicial",
			OccurredAt:  now,
			CreatedAt:   now,
		}
		return movementRepo.Create(ctx, mov)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(product), nil
}

// GetByID obtém um produto por ID. Retorna (nil, nil) quando não existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// List lista produtos ordenados por nome, com filtros aplicados em memória e
// cache por combinação de filtros.
func (uc *ProductUseCase) List(ctx context.Context, filters dto.ProductListFilters) ([]dto.ProductResponse, error) {
	term := strings.ToLower(strings.TrimSpace(filters.Search))
	key := fmt.Sprintf("%s|%s|%t", term, strings.ToLower(filters.Category), filters.LowStock)
	if uc.cache != nil {
		var cached []dto.ProductResponse
		if uc.cache.Get(ctx, cacheEntity, key, &cached) {
			return cached, nil
		}
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Name), term) &&
			!strings.Contains(strings.ToLower(p.Category), term) &&
			!strings.Contains(strings.ToLower(p.Supplier), term) {
			continue
		}
		if filters.Category != "" && !strings.EqualFold(p.Category, filters.Category) {
			continue
		}
		if filters.LowStock && !p.LowStock() {
			continue
		}
		out = append(out, *toProductResponse(p))
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, cacheEntity, key, out)
	}
	return out, nil
}

// Update atualiza os dados cadastrais do produto. A quantidade não passa por
// aqui: use AdjustStock, que grava a movimentação de auditoria.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil && *in.Name != product.Name {
		existing, err := uc.productRepo.GetByName(ctx, *in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.MinStock != nil {
		if in.MinStock.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.MinStock = *in.MinStock
	}
	if in.PurchasePrice != nil {
		if in.PurchasePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		if in.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.SalePrice = *in.SalePrice
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.Active != nil {
		product.Active = *in.Active
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(product), nil
}

// AdjustStock define a quantidade absoluta do produto, com bloqueio de linha
// e movimentação de ajuste gravada na mesma transação.
func (uc *ProductUseCase) AdjustStock(ctx context.Context, id string, in dto.AdjustStockRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	var adjusted *entity.Product
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		product, err := productRepo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		prev := product.Quantity
		if err := productRepo.UpdateQuantity(ctx, id, in.Quantity); err != nil {
			return err
		}
		reason := in.Reason
		if reason == "" {
			reason = "Ajuste manual"
		}
		now := time.Now()
		mov := &entity.StockMovement{
			ID:          uuid.New().String(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Type:        entity.MovementTypeAdjust,
			Quantity:    in.Quantity.Sub(prev).Abs(),
			PreviousQty: prev,
			NewQty:      in.Quantity,
			Reason:      reason,
			OccurredAt:  now,
			CreatedAt:   now,
		}
		if err := movementRepo.Create(ctx, mov); err != nil {
			return err
		}
		product.Quantity = in.Quantity
		product.UpdatedAt = now
		adjusted = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toProductResponse(adjusted), nil
}

// Delete remove o produto. As movimentações ficam: o histórico sobrevive ao
// cadastro.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// Movements lista todas as movimentações de estoque, mais recentes primeiro.
func (uc *ProductUseCase) Movements(ctx context.Context) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

// MovementsByProduct lista as movimentações de um produto.
func (uc *ProductUseCase) MovementsByProduct(ctx context.Context, productID string) ([]dto.StockMovementResponse, error) {
	movements, err := uc.movementRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	return toMovementResponses(movements), nil
}

func (uc *ProductUseCase) invalidate(ctx context.Context) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, cacheEntity)
	}
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Category:      p.Category,
		Unit:          p.Unit,
		Quantity:      p.Quantity,
		MinStock:      p.MinStock,
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		Supplier:      p.Supplier,
		Active:        p.Active,
		LowStock:      p.LowStock(),
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func toMovementResponses(movements []*entity.StockMovement) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.StockMovementResponse{
			ID:          m.ID,
			ProductID:   m.ProductID,
			ProductName: m.ProductName,
			Type:        m.Type,
			Quantity:    m.Quantity,
			PreviousQty: m.PreviousQty,
			NewQty:      m.NewQty,
			Reason:      m.Reason,
			SaleID:      m.SaleID,
			PurchaseID:  m.PurchaseID,
			OccurredAt:  m.OccurredAt,
		})
	}
	return out
}
