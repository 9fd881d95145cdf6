// Package config provides configuration management for groover.
//
// Settings are resolved in three layers, later layers winning:
//
//  1. DefaultSettings()
//  2. a JSON settings file (optional)
//  3. GROOVER_* environment variables, including those from a .env file
//     in the working directory
//
// # Loading
//
//	settings, err := config.Load("/home/me/.groover/config.json")
//	if err != nil {
//	    // malformed file or environment; a missing file is fine
//	}
//
// # Saving
//
//	settings.PlaylistFormat = "pls"
//	err := settings.Save("/home/me/.groover/config.json")
//
// # Options
//
// Settings covers:
//   - the catalog file and the playlists created at startup
//   - the view the TUI opens on and the dashboard's recently added count
//   - the search debounce delay
//   - playlist export directory, format, cover art and concurrency
//   - log level, format, destination and rotation
//
// Out-of-range values fall back to their defaults.
package config
