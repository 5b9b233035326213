// Package navigation implements the presentation navigation state machine.
//
// A Machine is a flat pointer into the registry's ordered slide sequence plus
// two display flags (presentation mode and pause). The current section is
// never stored separately; it is read from the slide under the pointer, so
// the slide and section can not diverge.
//
// # Operations
//
//   - Next / Prev: step one slide; no-op at either end, no wraparound
//   - GoToSlide: jump by id; unknown ids are a silent no-op
//   - GoToSection: jump to a section's first slide; unknown or empty
//     sections are a silent no-op
//   - TogglePresentationMode / TogglePause: flip the flag
//   - NextUnlessPaused: Next for auto-advance, refused while paused
//   - Step: any of the above by Op, returning the committed Transition
//
// Every operation is total. The returned bool only reports whether the
// state changed. WithStrict adds a warn-level log line for unknown ids,
// which helps catch typos in deck files during development.
//
// # Observers
//
// Observers receive a Transition with the committed before and after views
// once the machine lock has been released. The remote API's WebSocket feed
// and the metrics collector hang off this hook.
//
// # Concurrency
//
// The TUI event loop, the HTTP remote and the advancer can all drive the
// same Machine. Each operation runs under a single lock, so readers only
// ever see a state before or after a transition. Commits are numbered
// (Transition.Seq) and queued; a single goroutine at a time delivers the
// queue, so observers see transitions in commit order. Snapshot pairs the
// current view with the last Seq for consumers that join late.
package navigation
