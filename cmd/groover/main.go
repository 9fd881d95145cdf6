package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/groover/internal/catalog"
	"github.com/handiism/groover/internal/config"
	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/logging"
	"github.com/handiism/groover/internal/session"
	"github.com/handiism/groover/internal/tui"
	"go.uber.org/zap"
)

func main() {
	configFlag := flag.String("config", defaultConfigPath(), "Path to config file")
	flag.Parse()

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := run(settings, tui.Run); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runFunc starts the interface over a prepared session.
type runFunc func(*session.Session, tui.Options) error

// run builds the logger, catalog and session from settings and hands them
// to start. The logger is flushed before run returns.
func run(settings *config.Settings, start runFunc) error {
	// The TUI owns the terminal, so stderr logging would corrupt the screen.
	logCfg := settings.ToLogConfig()
	if logCfg.Output == logging.OutputStderr || logCfg.Output == logging.OutputBoth {
		logCfg.Output = logging.OutputFile
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cat, err := catalog.LoadFile(settings.CatalogPath)
	if err != nil {
		logger.Error("Failed to load catalog", zap.String("path", settings.CatalogPath), zap.Error(err))
		return err
	}

	sess, err := session.NewDefault(cat, settings.SeedPlaylists,
		session.WithLogger(logger),
		session.WithRecentCount(settings.RecentlyAddedCount),
		session.WithView(settings.InitialView()))
	if err != nil {
		return err
	}

	logger.Info("Starting groover",
		zap.Int("catalog_items", cat.Len()),
		zap.Int("library_items", sess.Library().Len()))

	err = start(sess, tui.Options{
		Exporter:    export.NewExporter(settings.ToExportConfig(), logger),
		Logger:      logger,
		SearchDelay: settings.SearchDebounce(),
	})
	if err != nil {
		logger.Error("TUI exited with error", zap.Error(err))
		return err
	}
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".groover", "config.json")
}
