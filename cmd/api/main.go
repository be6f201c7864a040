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
	"github.com/robfig/cron/v3"
	"github.com/tu-usuario/fiado-api/internal/application/auth"
	"github.com/tu-usuario/fiado-api/internal/application/inventory"
	"github.com/tu-usuario/fiado-api/internal/application/ledger"
	"github.com/tu-usuario/fiado-api/internal/application/maintenance"
	"github.com/tu-usuario/fiado-api/internal/application/usecase"
	"github.com/tu-usuario/fiado-api/internal/infrastructure/bolt"
	httpRouter "github.com/tu-usuario/fiado-api/internal/interfaces/http"
	"github.com/tu-usuario/fiado-api/pkg/config"
	"github.com/tu-usuario/fiado-api/pkg/logger"
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

	store, err := bolt.Open(cfg.Store.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén local")
	}
	defer store.Close()

	q := store.Querier()
	customerRepo := bolt.NewCustomerRepository(q)
	productRepo := bolt.NewProductRepository(q)
	purchaseRepo := bolt.NewPurchaseRepository(q)
	movementRepo := bolt.NewStockMovementRepository(q)
	settingsRepo := bolt.NewSettingsRepository(q)
	secretStore := bolt.NewSecretStore(q)
	txRunner := bolt.NewTxRunner(store)

	customerUC := usecase.NewCustomerUseCase(customerRepo, txRunner)
	productUC := usecase.NewProductUseCase(productRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	purchaseUC := ledger.NewPurchaseUseCase(txRunner, purchaseRepo, customerRepo)
	receiptUC := ledger.NewReceiptUseCase(purchaseRepo, customerRepo, settingsRepo)
	ledgerUC := ledger.NewLedgerUseCase(customerRepo, purchaseRepo)
	adjustStockUC := inventory.NewAdjustStockUseCase(txRunner, movementRepo)
	maintenanceUC := maintenance.NewMaintenanceUseCase(txRunner, settingsRepo)
	authUC := auth.NewAuthUseCase(secretStore, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	// Limpieza automática: corre según el cron configurado y decide por sí
	// misma si los ajustes la tienen activada.
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Clean.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		result, err := maintenanceUC.RunAutoClean(ctx)
		if err != nil {
			log.Error().Err(err).Msg("limpieza automática")
			return
		}
		if result.ArchivedPurchases > 0 || result.PrunedMovements > 0 {
			log.Info().
				Int("archived", result.ArchivedPurchases).
				Int("pruned", result.PrunedMovements).
				Msg("limpieza automática completada")
		}
	}); err != nil {
		log.Fatal().Err(err).Str("schedule", cfg.Clean.Schedule).Msg("programar limpieza")
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	// swagger.New entra en pánico si el archivo no existe, así que solo se
	// registra cuando está presente (p. ej. al correr fuera de la raíz del repo).
	const swaggerFile = "./docs/swagger.json"
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Fiado API",
		}))
	} else {
		log.Warn().Str("path", swaggerFile).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC:    customerUC,
		ProductUC:     productUC,
		SettingsUC:    settingsUC,
		PurchaseUC:    purchaseUC,
		ReceiptUC:     receiptUC,
		LedgerUC:      ledgerUC,
		AdjustStock:   adjustStockUC,
		MaintenanceUC: maintenanceUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
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
