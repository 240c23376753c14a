// Package customers implementa os casos de uso de clientes: cadastro com
// normalização de telefone/CPF/CEP e histórico das últimas compras.
package customers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/gestor-deposito/internal/application/dto"
	"github.com/seu-usuario/gestor-deposito/internal/domain"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
	"github.com/seu-usuario/gestor-deposito/internal/domain/repository"
)

// Limite de vendas devolvidas no histórico do cliente.
const historyLimit = 10

// UseCase casos de uso de clientes.
type UseCase struct {
	customerRepo repository.CustomerRepository
	saleRepo     repository.SaleRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(customerRepo repository.CustomerRepository, saleRepo repository.SaleRepository) *UseCase {
	return &UseCase{customerRepo: customerRepo, saleRepo: saleRepo}
}

// Create cadastra um cliente. Telefone, CPF/CNPJ e CEP são normalizados para
// dígitos (a máscara de entrada é descartada); a UF vira maiúscula.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	phone := onlyDigits(in.Phone)
	taxID := onlyDigits(in.TaxID)
	zip := onlyDigits(in.ZipCode)
	if err := checkDigits(phone, taxID, zip); err != nil {
		return nil, err
	}

	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Nickname:  strings.TrimSpace(in.Nickname),
		Phone:     phone,
		TaxID:     taxID,
		Email:     strings.TrimSpace(in.Email),
		Address:   strings.TrimSpace(in.Address),
		City:      strings.TrimSpace(in.City),
		State:     strings.ToUpper(strings.TrimSpace(in.State)),
		ZipCode:   zip,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// GetByID obtém um cliente por ID. Retorna (nil, nil) quando não existe.
func (uc *UseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	return toCustomerResponse(customer), nil
}

// List lista clientes ordenados por nome. search filtra em memória por nome,
// apelido, email ou telefone (só os dígitos).
func (uc *UseCase) List(ctx context.Context, search string) ([]dto.CustomerResponse, error) {
	customers, err := uc.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	term := strings.ToLower(strings.TrimSpace(search))
	digits := onlyDigits(term)
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		if term != "" && !matchesCustomer(c, term, digits) {
			continue
		}
		out = append(out, *toCustomerResponse(c))
	}
	return out, nil
}

func matchesCustomer(c *entity.Customer, term, digits string) bool {
	if strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Nickname), term) ||
		strings.Contains(strings.ToLower(c.Email), term) {
		return true
	}
	return digits != "" && strings.Contains(c.Phone, digits)
}

// Update atualiza um cliente, com a mesma normalização do cadastro.
func (uc *UseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if err := dto.Validate(&in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	if in.Name != nil {
		customer.Name = strings.TrimSpace(*in.Name)
	}
	if in.Nickname != nil {
		customer.Nickname = strings.TrimSpace(*in.Nickname)
	}
	if in.Phone != nil {
		customer.Phone = onlyDigits(*in.Phone)
	}
	if in.TaxID != nil {
		customer.TaxID = onlyDigits(*in.TaxID)
	}
	if in.Email != nil {
		customer.Email = strings.TrimSpace(*in.Email)
	}
	if in.Address != nil {
		customer.Address = strings.TrimSpace(*in.Address)
	}
	if in.City != nil {
		customer.City = strings.TrimSpace(*in.City)
	}
	if in.State != nil {
		customer.State = strings.ToUpper(strings.TrimSpace(*in.State))
	}
	if in.ZipCode != nil {
		customer.ZipCode = onlyDigits(*in.ZipCode)
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}
	if err := checkDigits(customer.Phone, customer.TaxID, customer.ZipCode); err != nil {
		return nil, err
	}
	customer.UpdatedAt = time.Now()
	if err := uc.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

// Delete remove o cliente. As vendas dele permanecem, com o nome
// denormalizado que tinham no momento da venda.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.customerRepo.Delete(ctx, id)
}

// History devolve o cliente com as últimas compras dele (no máximo 10, mais
// recentes primeiro).
func (uc *UseCase) History(ctx context.Context, id string) (*dto.CustomerHistoryResponse, error) {
	customer, err := uc.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, nil
	}
	sales, err := uc.saleRepo.ListByCustomer(ctx, id, historyLimit)
	if err != nil {
		return nil, err
	}
	out := &dto.CustomerHistoryResponse{
		Customer: *toCustomerResponse(customer),
		Sales:    make([]dto.SaleResponse, 0, len(sales)),
	}
	for _, s := range sales {
		items := make([]dto.SaleItemResponse, 0, len(s.Items))
		for _, it := range s.Items {
			items = append(items, dto.SaleItemResponse{
				ProductID:   it.ProductID,
				ProductName: it.ProductName,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
			})
		}
		out.Sales = append(out.Sales, dto.SaleResponse{
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
		})
	}
	return out, nil
}

// onlyDigits remove tudo que não for dígito (máscaras de telefone, CPF, CEP).
func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// checkDigits valida os campos normalizados: telefone com 10 ou 11 dígitos,
// CPF com 11 ou CNPJ com 14, CEP com 8. Campos vazios passam.
func checkDigits(phone, taxID, zip string) error {
	if phone != "" && (len(phone) < 10 || len(phone) > 11) {
		return fmt.Errorf("%w: telefone deve ter 10 ou 11 dígitos", domain.ErrInvalidInput)
	}
	if taxID != "" && len(taxID) != 11 && len(taxID) != 14 {
		return fmt.Errorf("%w: CPF deve ter 11 dígitos ou CNPJ 14", domain.ErrInvalidInput)
	}
	if zip != "" && len(zip) != 8 {
		return fmt.Errorf("%w: CEP deve ter 8 dígitos", domain.ErrInvalidInput)
	}
	return nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Nickname:  c.Nickname,
		Phone:     c.Phone,
		TaxID:     c.TaxID,
		Email:     c.Email,
		Address:   c.Address,
		City:      c.City,
		State:     c.State,
		ZipCode:   c.ZipCode,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
