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
	appanalytics "github.com/tu-usuario/inventrack/internal/application/analytics"
	"github.com/tu-usuario/inventrack/internal/application/audit"
	"github.com/tu-usuario/inventrack/internal/application/auth"
	"github.com/tu-usuario/inventrack/internal/application/inventory"
	"github.com/tu-usuario/inventrack/internal/application/usecase"
	"github.com/tu-usuario/inventrack/internal/infrastructure/export"
	infrapdf "github.com/tu-usuario/inventrack/internal/infrastructure/pdf"
	"github.com/tu-usuario/inventrack/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/inventrack/internal/interfaces/http"
	"github.com/tu-usuario/inventrack/pkg/config"
	"github.com/tu-usuario/inventrack/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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

	// Repositorios (atados al pool; los casos de uso transaccionales
	// reciben repos atados a tx vía TxRunner)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	auditor := audit.NewRecorder(activityRepo, log)
	alerts := usecase.NewStockAlertService(notificationRepo, userRepo, log)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, auditor)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo, auditor)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, auditor)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	ledgerUC := inventory.NewLedgerUseCase(txRunner, movementRepo, analyticsRepo, auditor, alerts)
	bulkUC := inventory.NewBulkUseCase(productRepo, categoryRepo, auditor, export.NewCSVRenderer())
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, categoryRepo, analyticsRepo)
	reportsUC := appanalytics.NewReportsUseCase(productRepo, categoryRepo, infrapdf.NewMarotoValuationRenderer(), auditor)
	restockUC := appanalytics.NewRestockUseCase(productRepo, categoryRepo, analyticsRepo)
	activityUC := audit.NewUseCase(activityRepo)

	loginLimiter := httpRouter.NewLoginRateLimiter(1, 3)
	go loginLimiter.StartCleanupLoop()

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
		Title:    "Inventrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		NotificationUC: notificationUC,
		LedgerUC:       ledgerUC,
		BulkUC:         bulkUC,
		DashboardUC:    dashboardUC,
		ReportsUC:      reportsUC,
		RestockUC:      restockUC,
		ActivityUC:     activityUC,
		LoginLimiter:   loginLimiter,
		JWTSecret:      cfg.JWT.Secret,
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
