package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/SscSPs/boarding_house_ledger/internal/handlers"
	"github.com/SscSPs/boarding_house_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var flagMigrateOnStart bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.close()

		if flagMigrateOnStart && a.cfg.DatabaseURL != "" {
			if err := runMigrations(a.cfg.DatabaseURL, a.cfg.MigrationsPath, false); err != nil {
				return err
			}
		}

		if a.cfg.IsProduction {
			gin.SetMode(gin.ReleaseMode)
		}
		r := gin.New()
		r.Use(middleware.StructuredLoggingMiddleware(slog.Default()), gin.Recovery())
		if err := r.SetTrustedProxies(nil); err != nil {
			return fmt.Errorf("failed to set trusted proxies: %w", err)
		}
		if err := handlers.RegisterRoutes(r, a.cfg, a.services); err != nil {
			return err
		}

		srv := &http.Server{Addr: ":" + a.cfg.Port, Handler: r}
		errCh := make(chan error, 1)
		go func() {
			slog.Info("Starting server", slog.String("port", a.cfg.Port))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		slog.Info("Shutting down server", slog.Duration("timeout", a.cfg.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		slog.Info("Server stopped")
		return nil
	},
}

func init() {
	serveCmd.Flags().BoolVar(&flagMigrateOnStart, "migrate", true, "Apply pending migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
