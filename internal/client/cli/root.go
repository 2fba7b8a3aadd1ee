package cli

import (
	"bufio"
	"context"
	"time"
)

// lineReader hands the scanner one line per Read so prompts issued by a
// command still find their input in the shared reader.
type lineReader struct {
	r *bufio.Reader
}

func (l lineReader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		b, err := l.r.ReadByte()
		if err != nil {
			return n, err
		}
		p[n] = b
		n++
		if b == '\n' {
			break
		}
	}
	return n, nil
}

// Root restores the previous session, starts the connectivity watcher and
// runs the REPL until the user exits or ctx ends.
func (a *App) Root(ctx context.Context, onlineCheckInterval time.Duration) {
	printlnFn("Welcome to Gator Market (type 'help' for commands)")

	if err := a.ctrl.Start(ctx); err != nil {
		_ = a.report(ctx, err)
	}
	if s := a.ctrl.State(); s.LoggedIn() {
		printlnFn("Welcome back, " + s.User.DisplayName() + "!")
		_ = a.showBrowse(ctx)
	} else {
		printlnFn("Please log in or register")
	}

	go a.StartOnlineStatusWatcher(ctx, onlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(lineReader{r: a.reader}))
}
