package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"evalreport/backend/internal/handler"
	transport "evalreport/backend/internal/http"
	"evalreport/backend/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides ADDR)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	addr := a.cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	maxUpload := a.cfg.MaxUploadBytes()
	router := transport.NewRouter(handler.NewEvaluationHandler(a.evaluation, maxUpload), maxUpload)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "module", "app", "action", "start", "resource", "http", "result", "ok", "addr", addr)
		if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "module", "app", "action", "start", "resource", "http", "result", "failed", "error", err)
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down", "module", "app", "action", "stop", "resource", "http", "result", "ok")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	return router.Shutdown(shutdownCtx)
}
