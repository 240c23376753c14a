// Package purchases implementa os casos de uso de compras: registro com
// entrada transacional de estoque (casando produtos pelo nome ou criando o
// cadastro), exclusão com estorno, atualização e listagem.
package purchases

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
	"github.com/seu-usuario/gestor-deposito/pkg/config"
)

const cacheEntity = "purchases"

// UseCase casos de uso de compras. matchMode decide como o item da compra
// encontra o produto: por nome exato (padrão, compatível com a base antiga)
// ou por ID quando o item informa product_id.
type UseCase struct {
	txRunner     ports.TxRunner
	purchaseRepo repository.PurchaseRepository
	cache        ports.ListCache
	matchMode    string
}

// NewUseCase constrói o caso de uso. cache pode ser nil.
func NewUseCase(txRunner ports.TxRunner, purchaseRepo repository.PurchaseRepository, cache ports.ListCache, matchMode string) *UseCase {
	if matchMode == "" {
		matchMode = config.PurchaseMatchByName
	}
	return &UseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, cache: cache, matchMode: matchMode}
}

// Create registra a compra e dá entrada no estoque na mesma transação.
// Item casado com produto existente: soma a quantidade e sobrescreve os preços
// de compra e de venda informados. Item sem produto correspondente: cria o
// cadastro (categoria "Geral" quando não informada) já com a quantidade da
// compra. Toda entrada gera movimentação.
func (uc *UseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	items := make([]entity.PurchaseItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) || it.PurchasePrice.IsNegative() || it.SalePrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.PurchaseItem{
			ProductName:   it.ProductName,
			Category:      it.Category,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
			SalePrice:     it.SalePrice,
		})
		total = total.Add(it.Quantity.Mul(it.PurchasePrice))
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:            uuid.New().String(),
		Code:          entity.NewDisplayCode(),
		Supplier:      in.Supplier,
		PurchaseDate:  in.PurchaseDate,
		Items:         items,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		for i, it := range purchase.Items {
			product, err := uc.matchProduct(ctx, productRepo, it, in.Items[i].ProductID)
			if err != nil {
				return err
			}
			if product != nil {
				prev := product.Quantity
				product.Quantity = prev.Add(it.Quantity)
				product.PurchasePrice = it.PurchasePrice
				if it.SalePrice.GreaterThan(decimal.Zero) {
					product.SalePrice = it.SalePrice
				}
				product.UpdatedAt = now
				if err := productRepo.Update(ctx, product); err != nil {
					return err
				}
				mov := &entity.StockMovement{
					ID:          uuid.New().String(),
					ProductID:   product.ID,
					ProductName: product.Name,
					Type:        entity.MovementTypeEntry,
					Quantity:    it.Quantity,
					PreviousQty: prev,
					NewQty:      product.Quantity,
					Reason:      "Compra #" + purchase.Code,
					PurchaseID:  purchase.ID,
					OccurredAt:  now,
					CreatedAt:   now,
				}
				if err := movementRepo.Create(ctx, mov); err != nil {
					return err
				}
				continue
			}

			// Primeiro cadastro: a compra cria o produto.
			category := it.Category
			if category == "" {
				category = "Geral"
			}
			newProduct := &entity.Product{
				ID:            uuid.New().String(),
				Name:          it.ProductName,
				Category:      category,
				Unit:          "un",
				Quantity:      it.Quantity,
				MinStock:      decimal.Zero,
				PurchasePrice: it.PurchasePrice,
				SalePrice:     it.SalePrice,
				Supplier:      purchase.Supplier,
				Active:        true,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err := productRepo.Create(ctx, newProduct); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   newProduct.ID,
				ProductName: newProduct.Name,
				Type:        entity.MovementTypeEntry,
				Quantity:    it.Quantity,
				PreviousQty: decimal.Zero,
				NewQty:      it.Quantity,
				Reason:      "Compra #" + purchase.Code + " (Primeiro cadastro)",
				PurchaseID:  purchase.ID,
				OccurredAt:  now,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return purchaseRepo.Create(ctx, purchase)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPurchaseResponse(purchase), nil
}

// matchProduct localiza o produto de um item da compra conforme o modo
// configurado. No modo por ID, itens sem product_id caem no casamento por
// nome. Retorna (nil, nil) quando não há produto correspondente.
func (uc *UseCase) matchProduct(ctx context.Context, productRepo repository.ProductRepository, it entity.PurchaseItem, productID string) (*entity.Product, error) {
	if uc.matchMode == config.PurchaseMatchByID && productID != "" {
		return productRepo.GetForUpdate(ctx, productID)
	}
	return productRepo.GetByNameForUpdate(ctx, it.ProductName)
}

// GetByID obtém uma compra por ID. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return toPurchaseResponse(purchase), nil
}

// List lista compras ordenadas por data decrescente. search filtra em memória
// por código ou fornecedor (case-insensitive), com cache por termo.
func (uc *UseCase) List(ctx context.Context, search string) ([]dto.PurchaseResponse, error) {
	term := strings.ToLower(strings.TrimSpace(search))
	if uc.cache != nil {
		var cached []dto.PurchaseResponse
		if uc.cache.Get(ctx, cacheEntity, term, &cached) {
			return cached, nil
		}
	}
	purchases, err := uc.purchaseRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		if term != "" && !matchesPurchase(p, term) {
			continue
		}
		out = append(out, *toPurchaseResponse(p))
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, cacheEntity, term, out)
	}
	return out, nil
}

// matchesPurchase: o termo casa com código, fornecedor ou nome de qualquer
// item da compra.
func matchesPurchase(p *entity.Purchase, term string) bool {
	if strings.Contains(strings.ToLower(p.Code), term) ||
		strings.Contains(strings.ToLower(p.Supplier), term) {
		return true
	}
	for _, it := range p.Items {
		if strings.Contains(strings.ToLower(it.ProductName), term) {
			return true
		}
	}
	return false
}

// Update atualiza os dados da compra sem reprocessar o estoque.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	purchase, err := uc.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	if in.Supplier != nil {
		purchase.Supplier = *in.Supplier
	}
	if in.PurchaseDate != nil {
		purchase.PurchaseDate = *in.PurchaseDate
	}
	if len(in.Items) > 0 {
		items := make([]entity.PurchaseItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			if !it.Quantity.GreaterThan(decimal.Zero) || it.PurchasePrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			items = append(items, entity.PurchaseItem{
				ProductName:   it.ProductName,
				Category:      it.Category,
				Quantity:      it.Quantity,
				PurchasePrice: it.PurchasePrice,
				SalePrice:     it.SalePrice,
			})
			total = total.Add(it.Quantity.Mul(it.PurchasePrice))
		}
		purchase.Items = items
		purchase.Total = total
	}
	// Total explícito só vale quando os itens não foram reenviados; com
	// itens o total é sempre o recalculado no servidor.
	if in.Total != nil && len(in.Items) == 0 {
		purchase.Total = *in.Total
	}
	if in.PaymentMethod != nil {
		purchase.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		purchase.Notes = *in.Notes
	}
	purchase.UpdatedAt = time.Now()
	if err := uc.purchaseRepo.Update(ctx, purchase); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toPurchaseResponse(purchase), nil
}

// Delete exclui a compra e desfaz a entrada de estoque na mesma transação:
// cada item casado tem a quantidade subtraída com clamp em zero e gera uma
// movimentação de saída. Itens sem produto correspondente são ignorados.
// O produto criado pela compra não é removido, só tem o estoque zerado.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		_ repository.SaleRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		purchase, err := purchaseRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		for _, it := range purchase.Items {
			product, err := productRepo.GetByNameForUpdate(ctx, it.ProductName)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			prev := product.Quantity
			newQty := prev.Sub(it.Quantity)
			if newQty.IsNegative() {
				newQty = decimal.Zero
			}
			if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Type:        entity.MovementTypeExit,
				Quantity:    it.Quantity,
				PreviousQty: prev,
				NewQty:      newQty,
				Reason:      "Exclusão de Compra #" + purchase.Code,
				PurchaseID:  purchase.ID,
				OccurredAt:  now,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return purchaseRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *UseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Invalidate(ctx, cacheEntity)
	uc.cache.Invalidate(ctx, "products")
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductName:   it.ProductName,
			Category:      it.Category,
			Quantity:      it.Quantity,
			PurchasePrice: it.PurchasePrice,
			SalePrice:     it.SalePrice,
		})
	}
	return &dto.PurchaseResponse{
		ID:            p.ID,
		Code:          p.Code,
		Supplier:      p.Supplier,
		PurchaseDate:  p.PurchaseDate,
		Items:         items,
		Total:         p.Total,
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
