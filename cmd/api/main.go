package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/michellealmonte/marketing-api/internal/auth"
	"github.com/michellealmonte/marketing-api/internal/config"
	"github.com/michellealmonte/marketing-api/internal/database"
	"github.com/michellealmonte/marketing-api/internal/handler"
	"github.com/michellealmonte/marketing-api/internal/mailer"
	middlewarepkg "github.com/michellealmonte/marketing-api/internal/middleware"
	"github.com/michellealmonte/marketing-api/internal/repository"
	"github.com/michellealmonte/marketing-api/internal/router"
	"github.com/michellealmonte/marketing-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to connect database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool); err != nil {
		logger.Fatal("failed to apply schema", zap.Error(err))
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	contactsRepo := repository.NewPGXContactsRepository(pool)
	newsletterRepo := repository.NewPGXNewsletterRepository(pool)
	adminsRepo := repository.NewPGXAdminUsersRepository(pool)

	mailService := mailer.NewService(logger, mailer.NewSMTPSender(cfg.SMTP), cfg.OwnerEmail)

	contactsService := service.NewContactsService(contactsRepo, mailService)
	newsletterService := service.NewNewsletterService(newsletterRepo, mailService)
	authService := service.NewAuthService(adminsRepo, jwtManager, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middlewarepkg.RequestID())
	e.Use(middlewarepkg.Logging(logger))
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.BodyLimit("64K"))
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
	}))

	router.Register(e, cfg, jwtManager, pool, router.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Contact:    handler.NewContactHandler(contactsService),
		Newsletter: handler.NewNewsletterHandler(newsletterService),
	})

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- e.Start(":" + cfg.Port)
	}()
	logger.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Environment))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("shutting down", zap.String("signal", sig.String()))
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
		return
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	if err := mailService.Close(shutdownCtx); err != nil {
		logger.Error("mail queue drain failed", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Development() {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
