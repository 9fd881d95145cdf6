package export

import (
	"context"
	"fmt"
	"image/color"
	"path/filepath"

	ioutils "github.com/handiism/groover/internal/io"
	"github.com/handiism/groover/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config controls where and how playlists are exported.
type Config struct {
	// Dir is the directory playlist files are written to.
	Dir string

	Format      Format
	M3UExtended bool

	// Cover writes a JPEG mosaic next to each non-empty playlist.
	Cover     bool
	CoverSize int

	// MaxConcurrent limits how many playlists ExportAll writes at once.
	MaxConcurrent int
}

// Result describes the files written for one playlist.
type Result struct {
	PlaylistID string
	Name       string
	Path       string
	CoverPath  string // empty when no cover was written
	Entries    int
}

// Exporter writes playlists to disk.
type Exporter struct {
	cfg     Config
	creator *PlaylistCreator
	covers  *ioutils.CoverRenderer
	logger  *zap.Logger
}

// NewExporter creates an Exporter.
func NewExporter(cfg Config, logger *zap.Logger) *Exporter {
	if cfg.MaxConcurrent < 1 {
		cfg.MaxConcurrent = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		cfg:     cfg,
		creator: NewPlaylistCreator(cfg.Format, cfg.M3UExtended),
		covers:  ioutils.NewCoverRenderer(),
		logger:  logger,
	}
}

// Export writes a single playlist.
func (e *Exporter) Export(ctx context.Context, pl model.Playlist) (Result, error) {
	if err := ioutils.EnsureDir(e.cfg.Dir); err != nil {
		return Result{}, fmt.Errorf("create export directory: %w", err)
	}
	return e.write(ctx, pl, ioutils.SanitizeFileName(pl.Name))
}

// ExportAll writes every playlist, at most MaxConcurrent at a time. Two
// playlists whose names sanitize to the same file name are disambiguated
// with the tail of their id. The first failure cancels the rest.
func (e *Exporter) ExportAll(ctx context.Context, playlists []model.Playlist) ([]Result, error) {
	if err := ioutils.EnsureDir(e.cfg.Dir); err != nil {
		return nil, fmt.Errorf("create export directory: %w", err)
	}

	names := uniqueBaseNames(playlists)
	results := make([]Result, len(playlists))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.cfg.MaxConcurrent)

	for i, pl := range playlists {
		i, pl := i, pl
		g.Go(func() error {
			res, err := e.write(ctx, pl, names[i])
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *Exporter) write(ctx context.Context, pl model.Playlist, base string) (Result, error) {
	res := Result{
		PlaylistID: pl.ID,
		Name:       pl.Name,
		Path:       filepath.Join(e.cfg.Dir, base+e.creator.Format().Extension()),
		Entries:    pl.Len(),
	}

	content := e.creator.CreatePlaylist(pl)
	if err := ioutils.WriteFile(ctx, res.Path, []byte(content)); err != nil {
		return Result{}, fmt.Errorf("write playlist %q: %w", pl.Name, err)
	}

	if e.cfg.Cover {
		colors := coverColors(pl, e.logger)
		if len(colors) > 0 {
			jpg, err := e.covers.RenderMosaic(ctx, colors, e.cfg.CoverSize)
			if err != nil {
				return Result{}, fmt.Errorf("render cover for %q: %w", pl.Name, err)
			}
			res.CoverPath = filepath.Join(e.cfg.Dir, base+".jpg")
			if err := ioutils.WriteFile(ctx, res.CoverPath, jpg); err != nil {
				return Result{}, fmt.Errorf("write cover for %q: %w", pl.Name, err)
			}
		}
	}

	e.logger.Info("Exported playlist",
		zap.String("playlist", pl.Name),
		zap.String("path", res.Path),
		zap.Int("entries", res.Entries),
		zap.Bool("cover", res.CoverPath != ""))

	return res, nil
}

// coverColors returns the colours of the first four items with a valid
// cover colour.
func coverColors(pl model.Playlist, logger *zap.Logger) []color.RGBA {
	var colors []color.RGBA
	for _, it := range pl.Items {
		c, err := it.Color()
		if err != nil {
			logger.Warn("Skipping item with invalid cover colour",
				zap.Int("item_id", it.ID),
				zap.String("cover_color", it.CoverColor))
			continue
		}
		colors = append(colors, c)
		if len(colors) == 4 {
			break
		}
	}
	return colors
}

func uniqueBaseNames(playlists []model.Playlist) []string {
	seen := make(map[string]int, len(playlists))
	for _, pl := range playlists {
		seen[ioutils.SanitizeFileName(pl.Name)]++
	}

	names := make([]string, len(playlists))
	for i, pl := range playlists {
		base := ioutils.SanitizeFileName(pl.Name)
		if seen[base] > 1 {
			tail := pl.ID
			if len(tail) > 8 {
				tail = tail[len(tail)-8:]
			}
			base = fmt.Sprintf("%s (%s)", base, tail)
		}
		names[i] = base
	}
	return names
}
