package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/handiism/groover/internal/debounce"
	"github.com/handiism/groover/internal/export"
	"github.com/handiism/groover/internal/logging"
	"github.com/handiism/groover/internal/model"
	"github.com/joho/godotenv"
)

// Settings holds all configuration options.
type Settings struct {
	// Collection
	CatalogPath        string   `json:"catalog_path" env:"GROOVER_CATALOG_PATH"`
	SeedPlaylists      []string `json:"seed_playlists" env:"GROOVER_SEED_PLAYLISTS" envSeparator:","`
	StartView          string   `json:"start_view" env:"GROOVER_START_VIEW"`
	RecentlyAddedCount int      `json:"recently_added_count" env:"GROOVER_RECENTLY_ADDED_COUNT"`

	// Search
	SearchDebounceMS int `json:"search_debounce_ms" env:"GROOVER_SEARCH_DEBOUNCE_MS"`

	// Export
	ExportPath           string `json:"export_path" env:"GROOVER_EXPORT_PATH"`
	PlaylistFormat       string `json:"playlist_format" env:"GROOVER_PLAYLIST_FORMAT"` // m3u, pls, wpl, zpl
	M3UExtended          bool   `json:"m3u_extended" env:"GROOVER_M3U_EXTENDED"`
	ExportCover          bool   `json:"export_cover" env:"GROOVER_EXPORT_COVER"`
	CoverSize            int    `json:"cover_size" env:"GROOVER_COVER_SIZE"`
	MaxConcurrentExports int    `json:"max_concurrent_exports" env:"GROOVER_MAX_CONCURRENT_EXPORTS"`

	// Logging
	LogLevel      string `json:"log_level" env:"GROOVER_LOG_LEVEL"`
	LogFormat     string `json:"log_format" env:"GROOVER_LOG_FORMAT"`
	LogOutput     string `json:"log_output" env:"GROOVER_LOG_OUTPUT"` // file, stderr, both, none
	LogFilePath   string `json:"log_file_path" env:"GROOVER_LOG_FILE_PATH"`
	LogMaxSizeMB  int    `json:"log_max_size_mb" env:"GROOVER_LOG_MAX_SIZE_MB"`
	LogMaxBackups int    `json:"log_max_backups" env:"GROOVER_LOG_MAX_BACKUPS"`
	LogMaxAgeDays int    `json:"log_max_age_days" env:"GROOVER_LOG_MAX_AGE_DAYS"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	homeDir, _ := os.UserHomeDir()
	stateDir := filepath.Join(homeDir, ".groover")

	return &Settings{
		SeedPlaylists:      []string{"Favorites", "Rock Classics", "Jazz Collection"},
		StartView:          model.ViewDashboard.String(),
		RecentlyAddedCount: 3,

		SearchDebounceMS: int(debounce.DefaultDelay / time.Millisecond),

		ExportPath:           filepath.Join(homeDir, "Music", "Groover"),
		PlaylistFormat:       "m3u",
		M3UExtended:          true,
		ExportCover:          true,
		CoverSize:            300,
		MaxConcurrentExports: 4,

		LogLevel:      "info",
		LogFormat:     "json",
		LogOutput:     string(logging.OutputFile),
		LogFilePath:   filepath.Join(stateDir, "groover.log"),
		LogMaxSizeMB:  10,
		LogMaxBackups: 3,
		LogMaxAgeDays: 28,
	}
}

// Load reads settings from a JSON file, then applies a .env file from the
// working directory (if present) and GROOVER_* environment variables. A
// missing settings file is not an error. An empty path skips the file.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := json.Unmarshal(data, settings); err != nil {
				return nil, fmt.Errorf("parse settings %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return nil, err
		}
	}

	// .env is optional; variables already set in the environment win.
	_ = godotenv.Load()

	if err := env.Parse(settings); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	settings.normalize()
	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// normalize replaces out-of-range values with defaults.
func (s *Settings) normalize() {
	def := DefaultSettings()

	if s.SearchDebounceMS <= 0 {
		s.SearchDebounceMS = def.SearchDebounceMS
	}
	if s.RecentlyAddedCount < 0 {
		s.RecentlyAddedCount = def.RecentlyAddedCount
	}
	if s.CoverSize <= 0 || s.CoverSize > 3000 {
		s.CoverSize = def.CoverSize
	}
	if s.MaxConcurrentExports < 1 {
		s.MaxConcurrentExports = 1
	}
	if _, err := export.ParseFormat(s.PlaylistFormat); err != nil {
		s.PlaylistFormat = def.PlaylistFormat
	}
	if _, err := model.ParseView(s.StartView); err != nil {
		s.StartView = def.StartView
	}
	if s.LogFilePath == "" {
		s.LogFilePath = def.LogFilePath
	}
}

// SearchDebounce returns the search debounce delay.
func (s *Settings) SearchDebounce() time.Duration {
	return time.Duration(s.SearchDebounceMS) * time.Millisecond
}

// InitialView returns the view the TUI opens on.
func (s *Settings) InitialView() model.View {
	v, err := model.ParseView(s.StartView)
	if err != nil {
		return model.ViewDashboard
	}
	return v
}

// ToExportConfig converts settings to an export.Config.
func (s *Settings) ToExportConfig() export.Config {
	format, err := export.ParseFormat(s.PlaylistFormat)
	if err != nil {
		format = export.FormatM3U
	}

	return export.Config{
		Dir:           s.ExportPath,
		Format:        format,
		M3UExtended:   s.M3UExtended,
		Cover:         s.ExportCover,
		CoverSize:     s.CoverSize,
		MaxConcurrent: s.MaxConcurrentExports,
	}
}

// ToLogConfig converts settings to a logging.Config.
func (s *Settings) ToLogConfig() logging.Config {
	return logging.Config{
		Level:      s.LogLevel,
		Format:     s.LogFormat,
		Output:     logging.Output(s.LogOutput),
		FilePath:   s.LogFilePath,
		MaxSize:    s.LogMaxSizeMB,
		MaxBackups: s.LogMaxBackups,
		MaxAge:     s.LogMaxAgeDays,
	}
}
