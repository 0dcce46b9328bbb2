package main

import (
	"github.com/spf13/cobra"

	"github.com/99minutos/vehicles-api/pkg/logger"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and/or upgrade the database schema",
	Long: `Create and/or upgrade the database schema.

For relational drivers the administrators and vehicles tables are
auto-migrated. For mongo the collection indexes are ensured.

Example:
  DB_DRIVER=postgres DB_DSN=... vehicles-api migrate`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStores(cmd.Context(), cfg, true)
		if err != nil {
			return err
		}
		defer st.close(cmd.Context())

		log := logger.Get()
		log.Info().Str("driver", cfg.DB.Driver).Msg("schema is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
