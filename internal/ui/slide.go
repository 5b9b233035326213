package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/i18n"
)

type renderKey struct {
	slideID string
	lang    i18n.Language
	style   string
	width   int
}

// slideRenderer caches rendered slide bodies. Bubble Tea calls Update from
// a single goroutine, so no locking is needed.
type slideRenderer struct {
	terms map[string]*glamour.TermRenderer
	cache map[renderKey]string
}

func newSlideRenderer() *slideRenderer {
	return &slideRenderer{
		terms: make(map[string]*glamour.TermRenderer),
		cache: make(map[renderKey]string),
	}
}

func (r *slideRenderer) term(style string, width int) (*glamour.TermRenderer, error) {
	id := fmt.Sprintf("%s/%d", style, width)
	if tr, ok := r.terms[id]; ok {
		return tr, nil
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	r.terms[id] = tr
	return tr, nil
}

// slideMarkdown assembles a slide's title and body as markdown.
func slideMarkdown(catalog *i18n.Catalog, lang i18n.Language, titleKey, slideID string) string {
	var b strings.Builder
	b.WriteString("# ")
	b.WriteString(catalog.T(lang, titleKey))
	b.WriteString("\n\n")
	if bodyKey := i18n.SlideBodyKey(slideID); catalog.Has(lang, bodyKey) {
		b.WriteString(catalog.T(lang, bodyKey))
		b.WriteString("\n")
	}
	return b.String()
}

// renderSlide renders the current slide for the body viewport.
func (m Model) renderSlide(width int) string {
	slide, ok := m.machine.CurrentSlide()
	if !ok || width <= 0 {
		return ""
	}

	k := renderKey{slideID: slide.ID, lang: m.lang, style: m.theme.Markdown, width: width}
	if out, ok := m.renderer.cache[k]; ok {
		return out
	}

	md := slideMarkdown(m.catalog, m.lang, slide.TitleKey, slide.ID)
	out := md
	if tr, err := m.renderer.term(m.theme.Markdown, width); err != nil {
		m.logger.Warn("markdown renderer unavailable", "error", err)
	} else if rendered, err := tr.Render(md); err != nil {
		m.logger.Warn("render slide failed", "slide", slide.ID, "error", err)
	} else {
		out = rendered
	}

	if m.lang.Direction() == gesture.RTL {
		out = alignRight(out, width, m.theme)
	}

	m.renderer.cache[k] = out
	return out
}

// alignRight drops styling and right-aligns every line. Glamour pads lines
// on the right, which would defeat alignment.
func alignRight(s string, width int, theme Theme) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Right).
		Foreground(lipgloss.Color(theme.Text)).
		Render(strings.Join(lines, "\n"))
}

func (m Model) bodyHeight() int {
	h := m.height
	if !m.view.PresentationMode {
		h -= 3 // header, progress bar, footer
	}
	if h < 1 {
		h = 1
	}
	return h
}

// layoutBody sizes the viewport and loads the current slide into it.
func (m *Model) layoutBody() {
	if !m.ready || m.machine == nil {
		return
	}
	m.body.Width = m.width
	m.body.Height = m.bodyHeight()
	m.body.SetContent(m.renderSlide(m.width))
}
