package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/yanqian/summarize-console/internal/domain/page"
	"github.com/yanqian/summarize-console/internal/domain/trigger"
	"github.com/yanqian/summarize-console/internal/infra/config"
)

// App encapsulates the control plane server and the trigger it drives.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	pageSvc page.Service
	source  *trigger.Source
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, pageSvc page.Service, source *trigger.Source) *App {
	return &App{
		cfg:     cfg,
		logger:  logger.With("component", "bootstrap"),
		server:  server,
		pageSvc: pageSvc,
		source:  source,
	}
}

// Run declares the page elements, starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	if err := a.pageSvc.Ensure(ctx); err != nil {
		return fmt.Errorf("declare page elements: %w", err)
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address, "summarize_base_url", a.cfg.Summarize.BaseURL)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.HTTP.ShutdownTimeout)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := a.source.Wait(shutdownCtx); err != nil {
			a.logger.Warn("in-flight invocations still running at shutdown", "error", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
