package main

import (
	"github.com/spf13/cobra"

	"github.com/99minutos/vehicles-api/internal/pkg/config"
	"github.com/99minutos/vehicles-api/pkg/logger"
)

const serviceName = "vehicles-api"

var cfg *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           serviceName,
	Short:         "Administrator and vehicle management API",
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cmd.Context())
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  cfg.IsDevelopment(),
			Service: serviceName,
		})
		return nil
	},
	// Without a subcommand the server is started.
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}
