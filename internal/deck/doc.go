// Package deck defines the slide registry: the static, ordered set of
// sections and slides a presentation walks through.
//
// A Registry is built once at startup, either from the built-in SARS-CoV-2
// deck (Default) or from a YAML file (LoadFile), and is read-only after
// that. Construction enforces the grouping invariant: concatenating each
// section's slides in section order yields the global slide order exactly.
// Display indexes and the id lookup tables are computed at construction so
// lookups never scan the slide list.
package deck
