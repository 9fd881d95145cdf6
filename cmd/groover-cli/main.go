package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/handiism/groover/internal/catalog"
	"github.com/handiism/groover/internal/config"
	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/logging"
	"github.com/handiism/groover/internal/model"
	"github.com/handiism/groover/internal/session"
	"go.uber.org/zap"
)

func main() {
	var playlists playlistFlags

	// Command line flags
	var (
		searchFlag  = flag.String("search", "", "Search the catalog by title, artist or genre")
		libraryFlag = flag.Bool("library", false, "List the library")
		kindFlag    = flag.String("kind", "all", "Library filter: all, vinyl or cd")
		addFlag     = flag.String("add", "", "Catalog item ids to add to the library (comma-separated)")
		exportFlag  = flag.String("export", "", "Export every playlist to this directory")
		formatFlag  = flag.String("format", "", "Playlist format: m3u, pls, wpl or zpl (overrides config)")
		configFlag  = flag.String("config", defaultConfigPath(), "Path to config file")
	)
	flag.Var(&playlists, "playlist", `Create or extend a playlist, "Name:id,id" (repeatable)`)

	flag.Parse()

	if *searchFlag == "" && !*libraryFlag && *addFlag == "" && len(playlists) == 0 && *exportFlag == "" {
		fmt.Println("Groover - manage your vinyl and CD collection")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  groover-cli -search <query>")
		fmt.Println("  groover-cli -add 7,8 -playlist \"Road Trip:1,7,8\" -export ./out")
		fmt.Println()
		fmt.Println("For interactive mode, use: groover")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply flags
	if *exportFlag != "" {
		settings.ExportPath = *exportFlag
	}
	if *formatFlag != "" {
		if _, err := export.ParseFormat(*formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.PlaylistFormat = *formatFlag
	}

	filter, err := model.ParseKindFilter(*kindFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	addIDs, err := parseIDs(*addFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -add: %v\n", err)
		os.Exit(1)
	}

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err = execute(ctx, settings, *exportFlag != "", request{
		Search:    *searchFlag,
		Library:   *libraryFlag,
		Filter:    filter,
		Add:       addIDs,
		Playlists: playlists,
	}, os.Stdout)
	if err != nil {
		cancel()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// execute builds the collection from settings and runs req. The logger is
// flushed before execute returns, whether or not req succeeded.
func execute(ctx context.Context, settings *config.Settings, withExport bool, req request, w io.Writer) error {
	logger, err := logging.New(settings.ToLogConfig())
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
		session.WithRecentCount(settings.RecentlyAddedCount))
	if err != nil {
		return err
	}

	var exporter *export.Exporter
	if withExport {
		exporter = export.NewExporter(settings.ToExportConfig(), logger)
	}

	if err := run(ctx, sess, exporter, req, w); err != nil {
		logger.Error("Command failed", zap.Error(err))
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
