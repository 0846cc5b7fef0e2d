// Package app is the main entrypoint into the demo program, responsible for
// configuring and starting the program, its logger, and the event relay.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs"
	"github.com/leg100/tabstrip/internal/version"
)

// Start the demo program and block until the user exits.
func Start(stdout, stderr io.Writer, args []string) error {
	// Parse configuration from env vars and flags
	cfg, err := parse(stderr, args)
	if err != nil {
		return err
	}

	if cfg.Version {
		fmt.Fprintln(stdout, "tabstrip", version.Version)
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, m, err := newApp(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		m,
		// use the full size of the terminal with its "alternate screen buffer"
		tea.WithAltScreen(),
		// Tabs, scroll buttons and close controls are clicked.
		tea.WithMouseCellMotion(),
	)
	cleanup := app.start(ctx, p)
	defer func() {
		if err := cleanup(); err != nil {
			fmt.Fprintln(stderr, err.Error())
		}
	}()

	// Blocks until user quits
	_, err = p.Run()
	return err
}

type app struct {
	logger *logging.Logger
	// closers are closed upon cleanup
	closers []io.Closer
}

// sender sends messages to a running program, either tea.Program or, in
// tests, teatest.TestModel.
type sender interface {
	Send(tea.Msg)
}

func newApp(cfg config) (*app, tea.Model, error) {
	a := &app{}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		a.closers = append(a.closers, f)
		cfg.loggingOptions.AdditionalWriters = append(cfg.loggingOptions.AdditionalWriters, f)
	}
	a.logger = logging.NewLogger(cfg.loggingOptions)

	var dump io.Writer
	if cfg.Debug {
		f, err := os.OpenFile("messages.log", os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening messages log: %w", err)
		}
		a.closers = append(a.closers, f)
		dump = f
	}

	m := newModel(modelOptions{
		Tabs: cfg.Tabs,
		Pane: tabs.PaneOptions{
			Placement: cfg.Placement,
			Policy:    cfg.Layout,
			Margins:   cfg.Margins,
			PopupRows: cfg.PopupRows,
		},
		Logger: a.logger,
		Dump:   dump,
	})
	a.logger.Info("started tabstrip",
		"version", version.Version,
		"tabs", cfg.Tabs,
		"layout", cfg.Layout,
		"placement", cfg.Placement,
	)
	return a, m, nil
}

// start relays log events to the program in the background. The returned
// function stops the relay and releases the app's resources.
func (a *app) start(ctx context.Context, s sender) func() error {
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	sub := a.logger.Subscribe(ctx)
	wg.Add(1)
	go func() {
		defer wg.Done()
		for ev := range sub {
			s.Send(ev)
		}
	}()

	return func() error {
		cancel()
		// Wait for the relay to finish before closing files written to by
		// the logger.
		wg.Wait()
		var errs []error
		for _, c := range a.closers {
			errs = append(errs, c.Close())
		}
		return errors.Join(errs...)
	}
}
