package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/seu-usuario/gestor-deposito/internal/application/auth"
	"github.com/seu-usuario/gestor-deposito/internal/application/customers"
	"github.com/seu-usuario/gestor-deposito/internal/application/finance"
	"github.com/seu-usuario/gestor-deposito/internal/application/inventory"
	"github.com/seu-usuario/gestor-deposito/internal/application/ports"
	"github.com/seu-usuario/gestor-deposito/internal/application/purchases"
	"github.com/seu-usuario/gestor-deposito/internal/application/reports"
	"github.com/seu-usuario/gestor-deposito/internal/application/sales"
	infracache "github.com/seu-usuario/gestor-deposito/internal/infrastructure/cache"
	infrapdf "github.com/seu-usuario/gestor-deposito/internal/infrastructure/pdf"
	"github.com/seu-usuario/gestor-deposito/internal/infrastructure/postgres"
	httpRouter "github.com/seu-usuario/gestor-deposito/internal/interfaces/http"
	"github.com/seu-usuario/gestor-deposito/pkg/config"
	"github.com/seu-usuario/gestor-deposito/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com o PostgreSQL")
	}
	defer pool.Close()

	// Cache de listagens (Redis). Sem REDIS_ADDR o cache fica desligado e as
	// listagens passam direto ao banco.
	redisCache := infracache.New(cfg.Cache, log)
	var listCache ports.ListCache
	if redisCache != nil {
		listCache = redisCache
		defer func() { _ = redisCache.Close() }()
		log.Info().Str("addr", cfg.Cache.RedisAddr).Msg("cache de listagens ativo")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	receivableRepo := postgres.NewReceivableRepository(pool)
	payableRepo := postgres.NewPayableRepository(pool)
	cashFlowRepo := postgres.NewCashFlowRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	receiptGen := infrapdf.NewMarotoReceiptGenerator(cfg.App.Name)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := inventory.NewProductUseCase(txRunner, productRepo, movementRepo, listCache)
	categoryUC := inventory.NewCategoryUseCase(categoryRepo)
	saleUC := sales.NewUseCase(txRunner, saleRepo, listCache, receiptGen)
	purchaseUC := purchases.NewUseCase(txRunner, purchaseRepo, listCache, cfg.Inventory.PurchaseMatchMode)
	customerUC := customers.NewUseCase(customerRepo, saleRepo)
	financeUC := finance.NewUseCase(receivableRepo, payableRepo, cashFlowRepo)
	reportUC := reports.NewUseCase(saleRepo, productRepo, receivableRepo, payableRepo, cashFlowRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor Depósito API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		ProductUC:  productUC,
		CategoryUC: categoryUC,
		SaleUC:     saleUC,
		PurchaseUC: purchaseUC,
		CustomerUC: customerUC,
		FinanceUC:  financeUC,
		ReportUC:   reportUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
