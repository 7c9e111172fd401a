package main

import (
	"fmt"
	"os"

	"github.com/codeacademypro/contactapi/internal/config"
	"github.com/codeacademypro/contactapi/internal/logging"

	"github.com/spf13/cobra"
)

var logger *logging.Logger

var rootCmd = &cobra.Command{
	Use:   "contactapi",
	Short: "CodeAcademy Pro contact form API",
	Long: `contactapi receives contact form submissions, validates them, verifies the
CAPTCHA token, stores them in PostgreSQL and forwards a copy to the configured
automation webhook.`,
	SilenceUsage: true,
}

// loadConfig reads configuration and sets up the global logger from it
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logConfig := &logging.LogConfig{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Requests:   cfg.LogRequests,
	}
	if err := logConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging config: %w", err)
	}
	if err := logging.InitLogger(logConfig); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logging.GetGlobalLogger()

	return cfg, nil
}

func main() {
	rootCmd.AddCommand(serveCmd, migrateCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
