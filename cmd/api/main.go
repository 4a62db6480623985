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

	appkardex "github.com/jcastro/kardex-api/internal/application/kardex"
	infrapdf "github.com/jcastro/kardex-api/internal/infrastructure/pdf"
	"github.com/jcastro/kardex-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcastro/kardex-api/internal/interfaces/http"
	"github.com/jcastro/kardex-api/internal/scheduler"
	"github.com/jcastro/kardex-api/pkg/config"
	"github.com/jcastro/kardex-api/pkg/logger"
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

	productRepo := postgres.NewProductRepository(pool)
	unitRepo := postgres.NewUnitRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := appkardex.NewLedgerUseCase(
		txRunner, productRepo, unitRepo, warehouseRepo, lotRepo, movementRepo,
	)

	// PDF: reporte de kardex por lote
	pdfGenerator := infrapdf.NewMarotoKardexGenerator()

	// Vigilancia diaria de lotes por vencer
	if cfg.Kardex.SchedulerEnabled {
		sched := scheduler.New(lotRepo, log, cfg.Kardex.ExpiryCron, cfg.Kardex.ExpiryAlertDays)
		if err := sched.Start(); err != nil {
			log.Fatal().Err(err).Msg("arranque del scheduler")
		}
		defer sched.Stop()
	}

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
		Title:    "Kardex API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LedgerUC:  ledgerUC,
		PDFGen:    pdfGenerator,
		JWTSecret: cfg.JWT.Secret,
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
