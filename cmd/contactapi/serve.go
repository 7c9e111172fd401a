package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/codeacademypro/contactapi/internal/api/handlers"
	"github.com/codeacademypro/contactapi/internal/config"
	"github.com/codeacademypro/contactapi/internal/db"
	"github.com/codeacademypro/contactapi/internal/repository"
	"github.com/codeacademypro/contactapi/internal/server"
	"github.com/codeacademypro/contactapi/internal/server/routes"
	"github.com/codeacademypro/contactapi/internal/service"
	"github.com/codeacademypro/contactapi/internal/telemetry"
	"github.com/codeacademypro/contactapi/internal/version"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Close()

		if err := cfg.Validate(); err != nil {
			logger.Error("Invalid configuration: %v", err)
			return err
		}

		migrateFirst, _ := cmd.Flags().GetBool("migrate")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, migrateFirst)
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "Create missing tables before serving")
}

func serve(ctx context.Context, cfg *config.Config, migrateFirst bool) error {
	logger.Info("Starting contactapi %s in %s mode", version.GetVersionString(), cfg.Environment)

	_, shutdownTracing, err := telemetry.Setup(ctx, telemetry.Config{
		ServiceName: cfg.ServiceName,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("Failed to flush traces: %v", err)
		}
	}()

	conn, err := db.Open(ctx, db.Config{
		URL:          cfg.DatabaseURL,
		MaxOpenConns: cfg.DBMaxOpenConns,
		MaxIdleConns: cfg.DBMaxIdleConns,
	})
	if err != nil {
		logger.Error("Failed to initialize database: %v", err)
		return err
	}
	defer conn.Close()

	if migrateFirst {
		if err := db.Migrate(ctx, conn); err != nil {
			logger.Error("Failed to migrate database: %v", err)
			return err
		}
		logger.Info("Database schema is up to date")
	}

	observer := service.NewLogObserver(logger)

	var captcha service.CaptchaVerifier
	if cfg.CaptchaEnabled {
		captcha = service.NewRecaptchaService(service.RecaptchaConfig{
			Secret:    cfg.CaptchaSecret,
			VerifyURL: cfg.CaptchaVerifyURL,
			MinScore:  cfg.CaptchaMinScore,
			Timeout:   cfg.CaptchaTimeout,
		}, nil, observer)
	} else {
		logger.Warn("CAPTCHA verification is disabled")
	}

	var notifiers []service.Notifier
	if cfg.WebhookURL != "" {
		notifiers = append(notifiers, service.NewWebhookService(cfg.WebhookURL, cfg.WebhookTimeout, nil))
	}
	if cfg.TelegramEnabled() {
		notifiers = append(notifiers, service.NewTelegramService(cfg.TelegramBotToken, cfg.TelegramChatID, cfg.WebhookTimeout))
	}
	if len(notifiers) == 0 {
		logger.Warn("No notification channel configured, contacts will only be stored")
	}

	contactService := service.NewContactService(repository.NewContactRepository(conn), service.ContactServiceOptions{
		Captcha:       captcha,
		Notifiers:     notifiers,
		Observer:      observer,
		NotifyTimeout: cfg.WebhookTimeout,
	})

	h := &routes.Handlers{
		Contact: handlers.NewContactHandler(contactService),
		Health:  handlers.NewHealthHandler(contactService),
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.AllowedOrigins,
		ServiceName:    cfg.ServiceName,
		Production:     cfg.IsProduction(),
	}, h, contactService)

	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}
