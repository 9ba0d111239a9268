package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ppiankov/fnoltriage/internal/server"
)

var (
	serveAddr   string
	maxUploadMB int64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the FNOL processing HTTP server",
	Long: `Serve starts the HTTP shell around the triage pipeline:

  POST /api/v1/process       multipart upload (.pdf, .txt, .html)
  POST /api/v1/process/text  JSON body {"content": "..."}
  GET  /health               liveness check

The fast-track threshold is read from configuration on every request, so
edits to the config file take effect without a restart.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().Int64Var(&maxUploadMB, "max-upload-mb", 0, "max upload size in MB (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.HTTP.Addr = serveAddr
	}
	if maxUploadMB > 0 {
		cfg.HTTP.MaxUploadBytes = maxUploadMB * 1024 * 1024
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	// Pick up threshold overrides from config file edits while running.
	if viper.ConfigFileUsed() != "" {
		viper.OnConfigChange(func(e fsnotify.Event) {
			logger.Info("config reloaded", "file", e.Name,
				"fast_track_damage_threshold", currentThreshold())
		})
		viper.WatchConfig()
	}

	pipe := buildPipeline()
	srv := server.New(pipe, cfg, logger)

	httpServer := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.HTTP.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.WriteTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}
