package tui

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Iron-Ham/hubdeck/internal/column"
	"github.com/Iron-Ham/hubdeck/internal/logging"
	"github.com/Iron-Ham/hubdeck/internal/panel"
	"github.com/Iron-Ham/hubdeck/internal/store"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures an App.
type Options struct {
	LabelWidth int
	// Watch reloads the panel when the store file changes on disk.
	Watch  bool
	Logger *logging.Logger
}

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
	store   *store.Store
	opts    Options
	logger  *logging.Logger
}

// New creates a new TUI application for p backed by s.
func New(p *panel.Panel, s *store.Store, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &App{
		model:  NewModel(p, s, opts.LabelWidth),
		store:  s,
		opts:   opts,
		logger: logger.WithComponent("tui"),
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)

	// Quit cleanly on termination so the terminal is restored
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	done := make(chan struct{})
	defer close(done)
	go forwardSignals(sigChan, done, a.program.Send)

	if a.opts.Watch {
		w, err := store.NewWatcher(a.store, func(columns []column.Column) {
			a.program.Send(ColumnsReloadedMsg{Columns: columns})
		})
		if err != nil {
			return fmt.Errorf("failed to watch store: %w", err)
		}
		w.Start()
		defer w.Stop()
		a.logger.Debug("watching store", "path", a.store.Path())
	}

	final, err := a.program.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.Removed() {
		a.logger.Info("column removed, panel closed")
	}
	return nil
}

// forwardSignals sends a quit message on the first signal. It returns without
// sending once done is closed.
func forwardSignals(sig <-chan os.Signal, done <-chan struct{}, send func(tea.Msg)) {
	select {
	case <-sig:
		send(tea.Quit())
	case <-done:
	}
}
