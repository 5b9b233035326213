// Package ui provides the terminal presenter built on Bubble Tea.
//
// # Layout
//
// The screen has three parts:
//
//   - Header: presentation title, current section badge in the section's
//     color, pause indicator, "Slide N of M" counter and a progress bar
//   - Body: the slide title and markdown body rendered with glamour inside a
//     scrollable viewport
//   - Footer: key hints and the active language
//
// Presentation mode hides the header and footer. The outline (o) and help
// (h/?) overlays are centered modals.
//
// # Input
//
// Arrow keys are physical gestures: in a right-to-left language the left
// arrow advances. Space, page down and enter always advance; backspace and
// page up always go back. A horizontal left-button mouse drag longer than
// the swipe threshold is a swipe and is resolved the same way.
//
// # Updates
//
// The model never keeps its own copy of navigation state beyond a View
// snapshot. It mutates the shared navigation.Machine and re-reads the View
// after every key and on every poll tick, so changes made through the remote
// API or by auto-advance appear without a redraw request.
//
// # Preferences
//
// Toggling language (L) or theme (T) saves prefs.toml immediately.
package ui
