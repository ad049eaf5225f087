package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/gastrostock/gastrostock-api/internal/application/analytics"
	"github.com/gastrostock/gastrostock-api/internal/application/inventory"
	"github.com/gastrostock/gastrostock-api/internal/application/usecase"
	"github.com/gastrostock/gastrostock-api/internal/infrastructure/postgres"
	httpRouter "github.com/gastrostock/gastrostock-api/internal/interfaces/http"
	"github.com/gastrostock/gastrostock-api/pkg/config"
	"github.com/gastrostock/gastrostock-api/pkg/logger"
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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	generalRepo := postgres.NewGeneralProductRepository(pool)
	detailedRepo := postgres.NewDetailedProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	nameCache := inventory.NewNameCache()
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, log)

	stockUC := inventory.NewStockUseCase(txRunner, notificationUC)
	movementUC := inventory.NewMovementUseCase(txRunner, movementRepo, notificationUC, nameCache)
	transferUC := inventory.NewTransferUseCase(txRunner, notificationUC, nameCache)

	productUC := usecase.NewProductUseCase(generalRepo, detailedRepo, locationRepo, notificationUC, nameCache)
	locationUC := usecase.NewLocationUseCase(locationRepo, txRunner, notificationUC)
	dashboardUC := appanalytics.NewDashboardUseCase(generalRepo, detailedRepo, movementRepo, settingsRepo, nameCache)
	reportsUC := appanalytics.NewReportsUseCase(generalRepo, detailedRepo, movementRepo)

	// Feed de cambios del inventario general (LISTEN/NOTIFY) para el SSE.
	listener := postgres.NewListener(pool, log)
	go func() {
		if err := listener.Run(ctx); err != nil {
			log.Error().Err(err).Msg("listener de cambios finalizado")
		}
	}()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GastroStock API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:      productUC,
		LocationUC:     locationUC,
		NotificationUC: notificationUC,
		StockUC:        stockUC,
		MovementUC:     movementUC,
		TransferUC:     transferUC,
		DashboardUC:    dashboardUC,
		ReportsUC:      reportsUC,
		Feed:           listener,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop() // restaura el manejo de señales: una segunda señal corta en seco

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
