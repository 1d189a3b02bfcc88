package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"pdf-text-extractor/internal/config"
	"pdf-text-extractor/internal/handler"
	"pdf-text-extractor/pkg/logger"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(flags *serverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, flags)
		},
	}
}

// loadConfig reads the environment and applies any flags set on cmd
func loadConfig(cmd *cobra.Command, flags *serverFlags) *config.AppConfig {
	cfg := config.LoadConfig()
	if cmd.Flags().Changed("host") {
		cfg.Host = flags.host
	}
	if cmd.Flags().Changed("port") {
		cfg.ServerPort = flags.port
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = flags.debug
	}
	return cfg
}

func runServe(cmd *cobra.Command, flags *serverFlags) error {
	cfg := loadConfig(cmd, flags)

	// Wiring
	container, err := config.NewContainerWithConfig(cfg, logger.NewLogger(cfg.GetLogLevel(), cfg.GetLogFormat()))
	if err != nil {
		return err
	}

	pdfHandler := handler.NewPDFHandler(container.PDFService, cfg.GetMaxFileSize(), container.Logger)
	router := handler.NewRouter(pdfHandler, container.Logger, cfg.GetAllowedOrigins())

	server := &http.Server{
		Addr:              cfg.GetAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Run server
	errCh := make(chan error, 1)
	go func() {
		container.Logger.Info("Server listening",
			"address", server.Addr,
			"engine", cfg.GetPDFEngine(),
			"staging_dir", cfg.GetStagingDir(),
			"debug", cfg.IsDebug(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			container.Logger.Error("Server failed to start", err)
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Graceful shutdown failed", err)
		_ = server.Close()
	}

	container.Logger.Info("Server exited")
	return nil
}
