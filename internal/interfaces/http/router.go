package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/seu-usuario/gestor-deposito/internal/application/auth"
	"github.com/seu-usuario/gestor-deposito/internal/application/customers"
	"github.com/seu-usuario/gestor-deposito/internal/application/finance"
	"github.com/seu-usuario/gestor-deposito/internal/application/inventory"
	"github.com/seu-usuario/gestor-deposito/internal/application/purchases"
	"github.com/seu-usuario/gestor-deposito/internal/application/reports"
	"github.com/seu-usuario/gestor-deposito/internal/application/sales"
	"github.com/seu-usuario/gestor-deposito/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC     *auth.UseCase
	ProductUC  *inventory.ProductUseCase
	CategoryUC *inventory.CategoryUseCase
	SaleUC     *sales.UseCase
	PurchaseUC *purchases.UseCase
	CustomerUC *customers.UseCase
	FinanceUC  *finance.UseCase
	ReportUC   *reports.UseCase
	JWTSecret  string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Exclusões são restritas ao admin.
	adminOnly := RequireRole(entity.RoleAdmin)

	// Produtos e estoque
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/adjust-stock", productHandler.AdjustStock)
	products.Get("/:id/movements", productHandler.MovementsByProduct)
	protected.Get("/stock-movements", productHandler.Movements)

	// Categorias
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", adminOnly, categoryHandler.Delete)

	// Vendas
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)
	salesGroup.Get("/:id/receipt", saleHandler.Receipt)

	// Compras
	purchasesGroup := protected.Group("/purchases")
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchasesGroup.Post("/", purchaseHandler.Create)
	purchasesGroup.Get("/", purchaseHandler.List)
	purchasesGroup.Get("/:id", purchaseHandler.GetByID)
	purchasesGroup.Put("/:id", purchaseHandler.Update)
	purchasesGroup.Delete("/:id", adminOnly, purchaseHandler.Delete)

	// Clientes
	customersGroup := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customersGroup.Post("/", customerHandler.Create)
	customersGroup.Get("/", customerHandler.List)
	customersGroup.Get("/:id", customerHandler.GetByID)
	customersGroup.Put("/:id", customerHandler.Update)
	customersGroup.Delete("/:id", adminOnly, customerHandler.Delete)
	customersGroup.Get("/:id/history", customerHandler.History)

	// Financeiro
	financeGroup := protected.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	financeGroup.Post("/receivables", financeHandler.CreateReceivable)
	financeGroup.Get("/receivables", financeHandler.ListReceivables)
	financeGroup.Get("/receivables/:id", financeHandler.GetReceivable)
	financeGroup.Put("/receivables/:id", financeHandler.UpdateReceivable)
	financeGroup.Delete("/receivables/:id", adminOnly, financeHandler.DeleteReceivable)
	financeGroup.Post("/receivables/:id/receive", financeHandler.Receive)
	financeGroup.Post("/payables", financeHandler.CreatePayable)
	financeGroup.Get("/payables", financeHandler.ListPayables)
	financeGroup.Get("/payables/:id", financeHandler.GetPayable)
	financeGroup.Put("/payables/:id", financeHandler.UpdatePayable)
	financeGroup.Delete("/payables/:id", adminOnly, financeHandler.DeletePayable)
	financeGroup.Post("/payables/:id/pay", financeHandler.Pay)
	financeGroup.Post("/cashflow", financeHandler.CreateCashFlowEntry)
	financeGroup.Get("/cashflow", financeHandler.ListCashFlow)

	// Relatórios
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/sales-summary", reportHandler.SalesSummary)
	reportsGroup.Get("/top-products", reportHandler.TopProducts)
	reportsGroup.Get("/top-customers", reportHandler.TopCustomers)
	reportsGroup.Get("/cashflow", reportHandler.CashFlow)
	reportsGroup.Get("/stock", reportHandler.Stock)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
}
