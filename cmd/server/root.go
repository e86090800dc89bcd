package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"fleet_manager/internal/config"
	"fleet_manager/internal/logger"
	"fleet_manager/internal/routes"
	"fleet_manager/internal/store"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	var (
		port    int
		envFile string
	)

	cmd := &cobra.Command{
		Use:           "server",
		Short:         "Fleet manager API server",
		Long:          `Serves the drivers, vehicles and orders API with optional token auth and simulated latency.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Server.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", "", "env file to load (default ./.env)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	logWriter := logger.Setup(cfg.Log.Level, cfg.Log.File)
	gin.SetMode(cfg.Server.Mode)

	s := store.New()
	if cfg.SeedData {
		s.Seed()
	}

	r := routes.SetupRouter(cfg, s, logWriter)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	logrus.WithFields(logrus.Fields{
		"port":          cfg.Server.Port,
		"auth_enabled":  cfg.Auth.Enabled,
		"delay_enabled": cfg.Delay.Enabled,
		"seeded":        cfg.SeedData,
	}).Info("Server starting")
	fmt.Printf("🚀 Server running at :%d\n", cfg.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logrus.Info("Server successfully shutdown")
	return nil
}
