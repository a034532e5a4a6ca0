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

	_ "github.com/YudheerRM/bidding-insights/docs"
	"github.com/YudheerRM/bidding-insights/internal/application/analytics"
	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/documents"
	"github.com/YudheerRM/bidding-insights/internal/application/tendering"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	infrapdf "github.com/YudheerRM/bidding-insights/internal/infrastructure/pdf"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/postgres"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/storage"
	httpRouter "github.com/YudheerRM/bidding-insights/internal/interfaces/http"
	"github.com/YudheerRM/bidding-insights/pkg/config"
	"github.com/YudheerRM/bidding-insights/pkg/logger"
)

// @title                       Bidding Insights API
// @version                     1.0
// @description                 Tender publishing, bidder applications and user administration.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting")

	ctx := context.Background()

	if cfg.DB.MigrateOnStart {
		if err := migrateUp(cfg.DB.ConnectionString()); err != nil {
			log.Fatal().Err(err).Msg("database migrations")
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	tenderRepo := postgres.NewTenderRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	tenderUC := usecase.NewTenderUseCase(tenderRepo)
	userUC := usecase.NewUserDirectoryUseCase(userRepo, txRunner)
	applicationUC := tendering.NewApplicationUseCase(
		applicationRepo, tenderRepo, userRepo, txRunner,
		infrapdf.NewReceiptGenerator(cfg.App.Name),
	)
	statsUC := analytics.NewStatsUseCase(statsRepo)

	// Uploads are only served when object storage is configured.
	var uploadUC *documents.UploadUseCase
	if cfg.Storage.Enabled() {
		store, err := storage.NewS3Storage(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Msg("object storage client")
		}
		uploadUC = documents.NewUploadUseCase(store, tenderUC)
	} else {
		log.Warn().Msg("object storage not configured, upload routes disabled")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    int(documents.MaxFileSize) + 1<<20,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Zerolog()))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bidding Insights API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		TenderUC:      tenderUC,
		ApplicationUC: applicationUC,
		UserUC:        userUC,
		StatsUC:       statsUC,
		UploadUC:      uploadUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("stopped")
}

func migrateUp(dsn string) error {
	m, err := postgres.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer m.Close()
	return m.Up()
}
