package cmd

import (
	"fmt"
	"log"

	"github.com/Ozioma45/MusicHub-sub000/config"
	"github.com/Ozioma45/MusicHub-sub000/pkg/database"
	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := database.NewPostgresDB(cfg.DSN())

			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Println("[Migrate] schema is up to date")
			return nil
		},
	}
}
