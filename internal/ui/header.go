package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
)

// renderHeader renders the title bar and the progress bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Title.Render(m.catalog.T(m.lang, "common.presentationTitle"))
	if sec, ok := m.currentSection(); ok {
		label := truncate(m.catalog.T(m.lang, sec.TitleKey), m.width/3)
		left += " " + styles.SectionBadge(label, sec.Color)
	}

	right := styles.MutedText.Render(m.catalog.SlideCounter(m.lang, m.view.SlideIndex, m.view.TotalSlides))
	if m.view.Paused {
		right = styles.WarningText.Render(m.catalog.T(m.lang, "common.paused")) + "  " + right
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	line := styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)

	return line + "\n" + m.renderProgress()
}

// renderProgress draws a bar filled to the current slide in the section's
// color. RTL languages fill from the right.
func (m Model) renderProgress() string {
	styles := m.theme.Styles()
	width := m.width
	if width <= 0 || m.view.TotalSlides == 0 {
		return ""
	}

	filled := width * (m.view.SlideIndex + 1) / m.view.TotalSlides
	color := m.theme.Accent
	if sec, ok := m.currentSection(); ok && sec.Color != "" {
		color = sec.Color
	}

	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(strings.Repeat("━", filled))
	rest := styles.FaintText.Render(strings.Repeat("─", width-filled))
	if m.lang.Direction() == gesture.RTL {
		return rest + bar
	}
	return bar + rest
}

// renderFooter renders key hints and the active language.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, styles.Key.Render(h.Key)+" "+m.catalog.T(m.lang, h.Desc))
	}
	left := strings.Join(hints, "  ·  ")
	right := m.catalog.T(m.lang, "languages."+string(m.lang))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Footer.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}
