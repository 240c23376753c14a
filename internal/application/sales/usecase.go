// Package sales implementa os casos de uso de vendas: registro com baixa
// transacional de estoque, exclusão com estorno, atualização e listagem.
package sales

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

const cacheEntity = "sales"

// UseCase casos de uso de vendas. A criação e a exclusão rodam dentro de uma
// transação: o documento da venda e os ajustes de estoque são gravados juntos
// ou nada é gravado.
type UseCase struct {
	txRunner   ports.TxRunner
	saleRepo   repository.SaleRepository
	cache      ports.ListCache
	receiptGen ports.ReceiptGenerator
}

// NewUseCase constrói o caso de uso. cache e receiptGen podem ser nil.
func NewUseCase(txRunner ports.TxRunner, saleRepo repository.SaleRepository, cache ports.ListCache, receiptGen ports.ReceiptGenerator) *UseCase {
	return &UseCase{txRunner: txRunner, saleRepo: saleRepo, cache: cache, receiptGen: receiptGen}
}

// Create registra a venda e dá baixa no estoque dos itens, tudo na mesma
// transação. Para cada item, a linha do produto é bloqueada
// (SELECT FOR UPDATE), a quantidade é decrementada com clamp em zero e uma
// movimentação de saída é gravada. Itens cujo produto não existe mais são
// ignorados sem erro: a venda vale mesmo sem a baixa correspondente.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	items := make([]entity.SaleItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		items = append(items, entity.SaleItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
		total = total.Add(it.Quantity.Mul(it.UnitPrice))
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Code:          entity.NewDisplayCode(),
		CustomerID:    in.CustomerID,
		CustomerName:  in.CustomerName,
		SaleDate:      in.SaleDate,
		Items:         items,
		Total:         total,
		Status:        in.Status,
		PaymentMethod: in.PaymentMethod,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		for i, it := range sale.Items {
			if it.ProductID == "" {
				continue
			}
			product, err := productRepo.GetForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// Produto removido depois de montada a venda: segue sem baixa.
				continue
			}
			if sale.Items[i].ProductName == "" {
				sale.Items[i].ProductName = product.Name
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
				Reason:      "Venda #" + sale.Code,
				SaleID:      sale.ID,
				OccurredAt:  now,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return saleRepo.Create(ctx, sale)
	})
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toSaleResponse(sale), nil
}

// GetByID obtém uma venda por ID. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// List lista vendas ordenadas por data decrescente. search filtra em memória
// por código ou nome do cliente (case-insensitive). O resultado fica em cache
// por termo de busca até a próxima escrita.
func (uc *UseCase) List(ctx context.Context, search string) ([]dto.SaleResponse, error) {
	term := strings.ToLower(strings.TrimSpace(search))
	if uc.cache != nil {
		var cached []dto.SaleResponse
		if uc.cache.Get(ctx, cacheEntity, term, &cached) {
			return cached, nil
		}
	}
	sales, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		if term != "" && !matchesSale(s, term) {
			continue
		}
		out = append(out, *toSaleResponse(s))
	}
	if uc.cache != nil {
		uc.cache.Set(ctx, cacheEntity, term, out)
	}
	return out, nil
}

// matchesSale: o termo casa com código, nome do cliente ou nome de qualquer
// item da venda.
func matchesSale(s *entity.Sale, term string) bool {
	if strings.Contains(strings.ToLower(s.Code), term) ||
		strings.Contains(strings.ToLower(s.CustomerName), term) {
		return true
	}
	for _, it := range s.Items {
		if strings.Contains(strings.ToLower(it.ProductName), term) {
			return true
		}
	}
	return false
}

// Update atualiza os dados da venda sem tocar no estoque: a baixa acontece na
// criação e o estorno na exclusão, editar a venda não reprocessa itens.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateSaleRequest) (*dto.SaleResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	if in.CustomerID != nil {
		sale.CustomerID = *in.CustomerID
	}
	if in.CustomerName != nil {
		sale.CustomerName = *in.CustomerName
	}
	if in.SaleDate != nil {
		sale.SaleDate = *in.SaleDate
	}
	if len(in.Items) > 0 {
		items := make([]entity.SaleItem, 0, len(in.Items))
		total := decimal.Zero
		for _, it := range in.Items {
			if !it.Quantity.GreaterThan(decimal.Zero) || it.UnitPrice.IsNegative() {
				return nil, domain.ErrInvalidInput
			}
			items = append(items, entity.SaleItem{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
			total = total.Add(it.Quantity.Mul(it.UnitPrice))
		}
		sale.Items = items
		sale.Total = total
	}
	// Total explícito só vale quando os itens não foram reenviados; com
	// itens o total é sempre o recalculado no servidor.
	if in.Total != nil && len(in.Items) == 0 {
		sale.Total = *in.Total
	}
	if in.Status != nil {
		sale.Status = *in.Status
	}
	if in.PaymentMethod != nil {
		sale.PaymentMethod = *in.PaymentMethod
	}
	if in.Notes != nil {
		sale.Notes = *in.Notes
	}
	sale.UpdatedAt = time.Now()
	if err := uc.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return toSaleResponse(sale), nil
}

// Delete exclui a venda e estorna o estoque na mesma transação: cada item com
// produto existente recebe de volta a quantidade vendida (sem teto) e uma
// movimentação de entrada de cancelamento é gravada. Itens cujo produto não
// existe mais são ignorados.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		movementRepo repository.StockMovementRepository,
		saleRepo repository.SaleRepository,
		_ repository.PurchaseRepository,
	) error {
		sale, err := saleRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}
		now := time.Now()
		for _, it := range sale.Items {
			if it.ProductID == "" {
				continue
			}
			product, err := productRepo.GetForUpdate(ctx, it.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				continue
			}
			prev := product.Quantity
			newQty := prev.Add(it.Quantity)
			if err := productRepo.UpdateQuantity(ctx, product.ID, newQty); err != nil {
				return err
			}
			mov := &entity.StockMovement{
				ID:          uuid.New().String(),
				ProductID:   product.ID,
				ProductName: product.Name,
				Type:        entity.MovementTypeEntry,
				Quantity:    it.Quantity,
				PreviousQty: prev,
				NewQty:      newQty,
				Reason:      "Cancelamento de Venda #" + sale.Code,
				SaleID:      sale.ID,
				OccurredAt:  now,
				CreatedAt:   now,
			}
			if err := movementRepo.Create(ctx, mov); err != nil {
				return err
			}
		}
		return saleRepo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// Receipt gera o recibo da venda em PDF.
func (uc *UseCase) Receipt(ctx context.Context, id string) ([]byte, error) {
	if uc.receiptGen == nil {
		return nil, fmt.Errorf("gerador de recibo não configurado")
	}
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	return uc.receiptGen.Generate(sale)
}

// invalidate descarta as listagens em cache afetadas por escritas de venda.
// Vendas mexem no estoque, então a listagem de produtos também cai.
func (uc *UseCase) invalidate(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	uc.cache.Invalidate(ctx, cacheEntity)
	uc.cache.Invalidate(ctx, "products")
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		Code:          s.Code,
		CustomerID:    s.CustomerID,
		CustomerName:  s.CustomerName,
		SaleDate:      s.SaleDate,
		Items:         items,
		Total:         s.Total,
		Status:        s.Status,
		PaymentMethod: s.PaymentMethod,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}
