// Package config loads the presenter's runtime configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/covid-presenter/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/covid-presenter/config.toml
//   - Remote API: 127.0.0.1:7690 (enabled)
//   - Log file: ~/.local/state/covid-presenter/presenter.log
//   - Log level: info
//   - Swipe threshold: 8 terminal cells
//   - Auto-advance: disabled
//   - Deck: the built-in COVID-19 deck
//
// # TOML Format
//
//	deck_file = "~/decks/covid.yaml"
//	api_bind = "127.0.0.1:7690"
//	log_file = "~/.local/state/covid-presenter/presenter.log"
//	log_level = "debug"
//	swipe_threshold = 6
//	auto_advance = "30s"
//	strict_navigation = true
//	remote_enabled = false
//
// Every field is optional. Tilde expansion is performed for deck_file and
// log_file. auto_advance takes a Go duration string.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parsing errors and invalid durations. A missing
// config file is NOT an error.
package config
