// Package app wires configuration, preferences, the deck, the navigation
// machine and its drivers into a running presenter.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()      Read config.toml
//	       ├─────> openLog()          Log file (the TUI owns the terminal)
//	       ├─────> NewSession()       Prefs, deck, catalog, machine, metrics
//	       ├─────> server.New()       Remote API (when remote_enabled)
//	       ├─────> StartAdvancer()    Auto-advance (when auto_advance set)
//	       └─────> ui.Run()           Bubble Tea (blocks)
//
// Serve follows the same path without the UI and logs to the writer it is
// given.
//
// # Drivers
//
// The terminal UI, the remote API and the advancer all mutate the same
// navigation.Machine. The machine serializes them; the UI re-reads its View
// on every tick.
//
// # Preferences
//
// The saved last slide becomes the starting slide; a stale id falls back to
// the first slide. On exit Run saves the theme, language and current slide.
package app
