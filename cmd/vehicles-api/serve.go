package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/99minutos/vehicles-api/internal/api"
	"github.com/99minutos/vehicles-api/internal/core/service"
	"github.com/99minutos/vehicles-api/internal/pkg/validation"
	"github.com/99minutos/vehicles-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long: `Run the HTTP server.

Requires JWT_SECRET. The backing store is selected with DB_DRIVER
(mysql, postgres, sqlite or mongo); setting REDIS_ADDR enables the vehicle
cache. When SEED_ADMIN_EMAIL is set the administrator is created on startup
unless it already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context) error {
	log := logger.Get()

	tokens, err := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		return err
	}

	st, err := openStores(ctx, cfg, cfg.DB.AutoMigrate)
	if err != nil {
		log.Error().Err(err).Str("driver", cfg.DB.Driver).Msg("failed to open store")
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		st.close(closeCtx)
	}()

	admins := service.NewAdministratorService(st.administrators, log)
	vehicles := service.NewVehicleService(st.vehicles, st.cache, validation.New(), log)

	if cfg.Seed.Email != "" {
		created, err := admins.EnsureSeed(ctx, cfg.Seed.Email, cfg.Seed.Password, cfg.Seed.Role)
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("email", cfg.Seed.Email).Str("role", cfg.Seed.Role).Msg("seed administrator created")
		}
	}

	e := api.NewRouter(api.Dependencies{
		Administrators: admins,
		Vehicles:       vehicles,
		Tokens:         tokens,
		HealthChecks:   st.checks,
		Logger:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("driver", cfg.DB.Driver).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	return nil
}
