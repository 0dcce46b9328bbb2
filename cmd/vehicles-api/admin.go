package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/service"
	"github.com/99minutos/vehicles-api/pkg/logger"
)

// adminCmd represents the admin command
var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage administrators",
	Long:  `Manage administrator accounts directly against the store.`,
}

var adminCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register an administrator",
	Long: `Register an administrator.

Example:
  vehicles-api admin create --email adm@test.com --password 123456 --role Adm`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		role, _ := cmd.Flags().GetString("role")

		st, err := openStores(cmd.Context(), cfg, cfg.DB.AutoMigrate)
		if err != nil {
			return err
		}
		defer st.close(cmd.Context())

		admin, err := service.NewAdministratorService(st.administrators, logger.Get()).Create(cmd.Context(), email, password, role)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "created administrator %d (%s, %s)\n", admin.ID, admin.Email, admin.Role)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adminCmd)
	adminCmd.AddCommand(adminCreateCmd)

	adminCreateCmd.Flags().String("email", "", "Administrator email")
	adminCreateCmd.Flags().String("password", "", "Administrator password")
	adminCreateCmd.Flags().String("role", domain.RoleEditor, "Role: Adm or Editor")
	_ = adminCreateCmd.MarkFlagRequired("email")
	_ = adminCreateCmd.MarkFlagRequired("password")
}
