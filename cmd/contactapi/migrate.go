package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codeacademypro/contactapi/internal/db"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the contactos table and its indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		defer logger.Close()

		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required")
		}

		timeout, _ := cmd.Flags().GetDuration("timeout")
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		s := spinner.New(spinner.CharSets[14], 120*time.Millisecond)
		s.Suffix = " Migrating database..."
		s.Start()

		conn, err := db.Open(ctx, db.Config{URL: cfg.DatabaseURL})
		if err != nil {
			s.Stop()
			logger.Error("Failed to connect: %v", err)
			return err
		}
		defer conn.Close()

		err = db.Migrate(ctx, conn)
		s.Stop()
		if err != nil {
			logger.Error("Migration failed: %v", err)
			return err
		}

		fmt.Println("✓ Database schema is up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().Duration("timeout", time.Minute, "Maximum time to wait for the migration")
}
