package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/leg100/tabstrip/internal/geom"
	"github.com/leg100/tabstrip/internal/logging"
	"github.com/leg100/tabstrip/internal/tabs"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/peterbourgon/ff/v4/ffyaml"
)

type config struct {
	Tabs      int
	Layout    tabs.LayoutMode
	Placement geom.Placement
	PopupRows int
	Margins   tabs.Margins
	LogFile   string
	Debug     bool
	Version   bool

	loggingOptions logging.Options
}

// set config in order of precedence:
// 1. flags > 2. env vars > 3. config file
func parse(stderr io.Writer, args []string) (config, error) {
	var cfg config

	home, err := os.UserHomeDir()
	if err != nil {
		return config{}, fmt.Errorf("retrieving user's home directory: %w", err)
	}
	defaultConfigFile := filepath.Join(home, ".tabstrip.yaml")

	fs := ff.NewFlagSet("tabstrip")
	fs.IntVar(&cfg.Tabs, 'n', "tabs", 10, "The number of tabs to open on startup.")
	fs.IntVar(&cfg.PopupRows, 0, "popup-rows", tabs.DefaultPopupRows, "The maximum number of rows in the tab list popup.")
	fs.IntVar(&cfg.Margins.Horizontal, 0, "margin", 5, "Cells kept clear either side of a tab scrolled into view.")
	fs.IntVar(&cfg.Margins.Vertical, 0, "vertical-margin", 3, "Rows kept clear either side of a tab scrolled into view, with the strip on the left or right.")
	fs.StringVar(&cfg.LogFile, 0, "log-file", "", "Append log records to a file.")
	fs.BoolVar(&cfg.Debug, 'd', "debug", "Log bubbletea messages to messages.log")
	fs.BoolVar(&cfg.Version, 'v', "version", "Print version.")
	_ = fs.String('c', "config", defaultConfigFile, "Path to config file.")

	var layout, placement string
	{
		usage := fmt.Sprintf("Layout mode when there are more tabs than fit (valid: %s).", strings.Join(tabs.ValidLayoutModes(), ","))
		fs.StringEnumVar(&layout, 0, "layout", usage, tabs.ValidLayoutModes()...)
	}
	{
		usage := fmt.Sprintf("Side of the pane holding the tabs (valid: %s).", strings.Join(geom.ValidPlacements(), ","))
		fs.StringEnumVar(&placement, 'p', "placement", usage, geom.ValidPlacements()...)
	}
	{
		usage := fmt.Sprintf("Logging level (valid: %s).", strings.Join(logging.ValidLevels(), ","))
		fs.StringEnumVar(&cfg.loggingOptions.Level, 'l', "log-level", usage, logging.ValidLevels()...)
	}

	err = ff.Parse(fs, args,
		ff.WithEnvVarPrefix("TABSTRIP"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ffyaml.Parse),
		ff.WithConfigAllowMissingFile(),
	)
	if err != nil {
		// ff.Parse returns an error if there is an error or if -h/--help is
		// passed; in either case print flag usage in addition to error message.
		fmt.Fprintln(stderr, ffhelp.Flags(fs))
		return config{}, err
	}

	// Perform any conversions from the flag parsed primitive types to
	// tabstrip defined types.
	cfg.Layout, err = tabs.ParseLayoutMode(layout)
	if err != nil {
		return config{}, err
	}
	cfg.Placement, err = geom.ParsePlacement(placement)
	if err != nil {
		return config{}, err
	}
	if cfg.Tabs < 0 {
		return config{}, fmt.Errorf("invalid number of tabs: %d", cfg.Tabs)
	}
	return cfg, nil
}
