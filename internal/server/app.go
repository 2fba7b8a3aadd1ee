// Package server wires the API server together: storage, services, optional
// demo seeding and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server/config"
	"github.com/dmitrijs2005/gatormarket/internal/server/httpapi"
	"github.com/dmitrijs2005/gatormarket/internal/server/items"
	"github.com/dmitrijs2005/gatormarket/internal/server/repomanager"
	"github.com/dmitrijs2005/gatormarket/internal/server/seed"
	"github.com/dmitrijs2005/gatormarket/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config      *config.Config
	logger      logging.Logger
	repos       repomanager.RepositoryManager
	userService *users.Service
	itemService *items.Service
}

func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Nop{}
	}

	rm, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(rm.Users(), c, logger)
	is := items.NewService(rm.Items(), logger)

	app := &App{config: c, logger: logger, repos: rm, userService: us, itemService: is}

	if c.Seed {
		if _, err := seed.Run(ctx, us, rm.Items(), logger); err != nil {
			_ = rm.Close()
			return nil, fmt.Errorf("seed error: %w", err)
		}
	}
	return app, nil
}

// Handler returns the HTTP API.
func (app *App) Handler() http.Handler {
	return httpapi.NewRouter(app.userService, app.itemService, app.logger)
}

// initSignalHandler cancels on SIGINT, SIGTERM or SIGQUIT until the returned
// stop function is called.
func (app *App) initSignalHandler(cancelFunc context.CancelFunc) (stop func()) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	done := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancelFunc()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

// Run serves the API until ctx is cancelled or a termination signal
// arrives, then drains in-flight requests and closes storage.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	stop := app.initSignalHandler(cancelFunc)
	defer stop()

	srv := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "Starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		runErr = err
	}

	app.logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.logger.Error(shutdownCtx, "shutdown error", "error", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(shutdownCtx, "db close error", "error", err)
	}
	return runErr
}
