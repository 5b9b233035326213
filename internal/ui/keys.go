package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the presenter.
type keyMap struct {
	// Global
	Quit        key.Binding
	Help        key.Binding
	Outline     key.Binding
	ToggleTheme key.Binding
	ToggleLang  key.Binding

	// Slides
	Left    key.Binding
	Right   key.Binding
	Advance key.Binding
	Retreat key.Binding
	First   key.Binding
	Last    key.Binding
	Section key.Binding

	// Contents overlay
	Select key.Binding

	// Presentation
	PresentationMode key.Binding
	ExitMode         key.Binding
	Pause            key.Binding

	// Body scrolling
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "help.quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help.help"),
		),
		Outline: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "help.outline"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "help.theme"),
		),
		ToggleLang: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "help.language"),
		),

		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "help.navigate"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("←/→", "help.navigate"),
		),
		Advance: key.NewBinding(
			key.WithKeys(" ", "pgdown", "enter"),
			key.WithHelp("space/pgdn", "help.advance"),
		),
		Retreat: key.NewBinding(
			key.WithKeys("backspace", "pgup"),
			key.WithHelp("bksp/pgup", "help.retreat"),
		),
		First: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home/end", "help.ends"),
		),
		Last: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("home/end", "help.ends"),
		),
		Section: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "help.sections"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↑/↓ enter", "help.select"),
		),

		PresentationMode: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "help.mode"),
		),
		ExitMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "help.exitMode"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "help.pause"),
		),

		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Right, k.Outline, k.Help, k.Quit}
}

// FullHelp returns key bindings for the help overlay. Help descriptions are
// catalogue ids.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Right, k.Advance, k.Retreat, k.First, k.Section, k.Outline, k.Select},
		{k.PresentationMode, k.ExitMode, k.Pause},
		{k.ToggleLang, k.ToggleTheme, k.Help, k.Quit},
	}
}
