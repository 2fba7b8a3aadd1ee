package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/gatormarket/internal/client/listings"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

type Mode string

const (
	ModeMock    Mode = "mock"
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// Pinger probes the remote API.
type Pinger interface {
	Ping(ctx context.Context) error
}

type App struct {
	ctrl   *session.Controller
	pinger Pinger
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer

	// browse and mineSort are the view settings of the dashboard tabs.
	browse   session.BrowseQuery
	mineSort listings.SortCriterion

	mu   sync.Mutex
	mode Mode
}

// NewApp builds the CLI around ctrl. A nil pinger means mock mode and no
// connectivity watcher.
func NewApp(ctrl *session.Controller, pinger Pinger, logger logging.Logger) *App {
	if logger == nil {
		logger = logging.Nop{}
	}
	a := &App{
		ctrl:   ctrl,
		pinger: pinger,
		logger: logger.With("component", "cli"),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		mode:   ModeMock,
	}
	if pinger != nil {
		a.mode = ModeOnline
	}
	return a
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, "connectivity changed", "mode", string(mode))
		printlnFn("Server is now", string(mode))
	}
}

func (a *App) isLoggedIn() bool {
	return a.ctrl.State().LoggedIn()
}

// StartOnlineStatusWatcher pings the API every interval until ctx ends.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if a.pinger == nil || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pctx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.pinger.Ping(pctx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
