package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.catalog.T(m.lang, "help.title")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	groups := m.keys.FullHelp()
	for i, group := range groups {
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(styles.Key.Width(14).Render(h.Key))
			b.WriteString(styles.Text.Render(m.catalog.T(m.lang, h.Desc)))
			b.WriteString("\n")
		}
		if i < len(groups)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(m.catalog.T(m.lang, "help.swipe")))

	return m.overlay(b.String(), 52)
}

// renderOutline renders the contents overlay: every section with its
// slides, the cursor on one slide.
func (m Model) renderOutline() string {
	styles := m.theme.Styles()
	reg := m.machine.Registry()

	var lines []string
	cursorLine := 0
	for i, sec := range reg.Sections() {
		marker := "  "
		if sec.ID == m.view.SectionID {
			marker = styles.AccentText.Render("▸ ")
		}
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(sec.Color)).Render("■")
		slides := reg.SlidesIn(sec.ID)
		count := styles.FaintText.Render(fmt.Sprintf("(%s)", m.catalog.Number(m.lang, len(slides))))
		lines = append(lines, marker+
			styles.Key.Render(m.catalog.Number(m.lang, i+1))+" "+
			swatch+" "+
			styles.Text.Bold(true).Render(m.catalog.T(m.lang, sec.TitleKey))+" "+
			count)

		for _, sl := range slides {
			title := truncate(m.catalog.T(m.lang, sl.TitleKey), outlineTitleWidth)
			row := "      " + title
			switch {
			case sl.Index == m.outlineCursor:
				cursorLine = len(lines)
				row = styles.Selected.Render("    › " + title)
			case sl.ID == m.view.SlideID:
				row = styles.AccentText.Render("    • " + title)
			default:
				row = styles.MutedText.Render(row)
			}
			lines = append(lines, row)
		}
	}
	lines = window(lines, cursorLine, m.height-10)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.catalog.T(m.lang, "common.outline")))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")
	b.WriteString(styles.FaintText.Render(m.catalog.T(m.lang, "common.outlineHint")))

	return m.overlay(b.String(), 64)
}

const outlineTitleWidth = 48

// window returns at most limit lines around focus.
func window(lines []string, focus, limit int) []string {
	if limit < 5 {
		limit = 5
	}
	if len(lines) <= limit {
		return lines
	}
	start := focus - limit/2
	if start < 0 {
		start = 0
	}
	if start+limit > len(lines) {
		start = len(lines) - limit
	}
	return lines[start : start+limit]
}

// overlay centers content in a bordered modal.
func (m Model) overlay(content string, width int) string {
	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(width)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}
