package app

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/x/exp/teatest"
	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type setupOption func(*config)

func withTabs(n int) setupOption {
	return func(cfg *config) {
		cfg.Tabs = n
	}
}

func withLayout(mode tabs.LayoutMode) setupOption {
	return func(cfg *config) {
		cfg.Layout = mode
	}
}

func setup(t *testing.T, opts ...setupOption) *teatest.TestModel {
	t.Helper()

	// Cancel context once test finishes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	cfg := config{
		Tabs:      20,
		Layout:    tabs.Scroll,
		Placement: geom.Top,
		PopupRows: tabs.DefaultPopupRows,
		Margins:   tabs.Margins{Horizontal: 5, Vertical: 3},
		loggingOptions: logging.Options{
			Level: "info",
			AdditionalWriters: []io.Writer{
				&testLogger{t},
			},
		},
	}
	for _, fn := range opts {
		fn(&cfg)
	}

	app, m, err := newApp(cfg)
	require.NoError(t, err)

	tm := teatest.NewTestModel(
		t,
		m,
		teatest.WithInitialTermSize(100, 20),
	)
	cleanup := app.start(ctx, tm)
	t.Cleanup(func() {
		err := cleanup()
		assert.NoError(t, err, "cleaning up app resources")
	})
	t.Cleanup(func() {
		_ = tm.Quit()
	})
	return tm
}

// testLogger relays log records to the go test logger
type testLogger struct {
	t *testing.T
}

func (l *testLogger) Write(b []byte) (int, error) {
	l.t.Helper()

	l.t.Log(string(b))
	return len(b), nil
}

func waitFor(t *testing.T, tm *teatest.TestModel, cond func(s string) bool) {
	t.Helper()

	teatest.WaitFor(
		t,
		tm.Output(),
		func(b []byte) bool {
			return cond(string(b))
		},
		teatest.WithCheckInterval(time.Millisecond*100),
		teatest.WithDuration(time.Second*10),
	)
}
