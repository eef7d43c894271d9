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
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productTypeRepo := postgres.NewProductTypeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	productTypeUC := usecase.NewProductTypeUseCase(productTypeRepo)
	createProductUC := usecase.NewCreateProductUseCase(txRunner, productRepo)
	lowStockUC := usecase.NewLowStockAlertUseCase(companyRepo, alertRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		WarehouseUC:   warehouseUC,
		SupplierUC:    supplierUC,
		ProductTypeUC: productTypeUC,
		CreateProduct: createProductUC,
		LowStockUC:    lowStockUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
