package cmd

import (
	"fmt"

	"github.com/Ozioma45/MusicHub-sub000/config"
	"github.com/Ozioma45/MusicHub-sub000/internal/repository"
	"github.com/Ozioma45/MusicHub-sub000/internal/service"
	"github.com/Ozioma45/MusicHub-sub000/pkg/database"
	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin panel accounts",
	}
	cmd.AddCommand(adminCreateCmd())
	return cmd
}

func adminCreateCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin, or reset the password of an existing one",
		Example: `  musiconnect admin create --username root --password 'correct horse'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			db := database.NewPostgresDB(cfg.DSN())

			// token issuing and revocation are not needed to write the account
			svc := service.NewAdminService(repository.NewAdminRepository(db), nil, nil, service.StatsSources{})
			admin, err := svc.CreateAdmin(cmd.Context(), username, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "admin %q saved (id %d)\n", admin.Username, admin.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (min 8 characters)")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
