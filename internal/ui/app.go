package ui

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/gesture"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/i18n"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/logging"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Context        context.Context
	Machine        *navigation.Machine
	Catalog        *i18n.Catalog
	Language       i18n.Language
	ThemeName      string
	SwipeThreshold int // terminal cells; zero uses the default
	PrefsPath      string
	OnLanguage     func(i18n.Language) // called after the user switches language
	PollTick       time.Duration
	Logger         *slog.Logger
}

const (
	defaultPollTick       = 250 * time.Millisecond
	defaultSwipeThreshold = 8
)

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx            context.Context
	machine        *navigation.Machine
	catalog        *i18n.Catalog
	keys           keyMap
	prefsPath      string
	onLanguage     func(i18n.Language)
	pollTick       time.Duration
	swipeThreshold int
	logger         *slog.Logger

	// UI state
	theme       Theme
	lang        i18n.Language
	width       int
	height      int
	ready       bool
	showHelp      bool
	showOutline   bool
	outlineCursor int // slide index highlighted in the contents overlay

	// Navigation snapshot, refreshed after every key and tick
	view navigation.View

	// Slide body
	body     viewport.Model
	renderer *slideRenderer

	// Mouse drag
	dragging   bool
	dragStartX int
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = defaultPollTick
	}

	threshold := opts.SwipeThreshold
	if threshold <= 0 {
		threshold = defaultSwipeThreshold
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.MustCatalog()
	}

	lang := opts.Language
	if lang == "" {
		lang = i18n.English
	}

	m := Model{
		ctx:            ctx,
		machine:        opts.Machine,
		catalog:        catalog,
		keys:           DefaultKeyMap(),
		prefsPath:      opts.PrefsPath,
		onLanguage:     opts.OnLanguage,
		pollTick:       pollTick,
		swipeThreshold: threshold,
		logger:         logger,
		theme:          GetTheme(opts.ThemeName),
		lang:           lang,
		renderer:       newSlideRenderer(),
	}
	if m.machine != nil {
		m.view = m.machine.View()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.pollTick)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.body = viewport.New(msg.Width, m.bodyHeight())
			m.ready = true
		}
		m.layoutBody()
		return m, nil

	case tickMsg:
		return m.handleTick()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.catalog.T(m.lang, "common.loading")
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.showOutline {
		return m.renderOutline()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) && msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.showOutline {
		return m.handleOutlineKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.Outline):
		m.showOutline = true
		m.outlineCursor = m.view.SlideIndex

	case key.Matches(msg, m.keys.Left):
		m.dispatch(gesture.PointLeft)

	case key.Matches(msg, m.keys.Right):
		m.dispatch(gesture.PointRight)

	case key.Matches(msg, m.keys.Advance):
		m.dispatch(gesture.Advance)

	case key.Matches(msg, m.keys.Retreat):
		m.dispatch(gesture.Retreat)

	case key.Matches(msg, m.keys.First):
		m.machine.GoToSlide(m.machine.Registry().First().ID)

	case key.Matches(msg, m.keys.Last):
		reg := m.machine.Registry()
		if last, ok := reg.At(reg.Len() - 1); ok {
			m.machine.GoToSlide(last.ID)
		}

	case key.Matches(msg, m.keys.Section):
		m.jumpToSection(msg.String())

	case key.Matches(msg, m.keys.PresentationMode):
		m.machine.TogglePresentationMode()

	case key.Matches(msg, m.keys.ExitMode):
		if m.machine.State().PresentationMode {
			m.machine.TogglePresentationMode()
		}

	case key.Matches(msg, m.keys.Pause):
		m.machine.TogglePause()

	case key.Matches(msg, m.keys.ToggleLang):
		m.lang = m.lang.Next()
		if m.onLanguage != nil {
			m.onLanguage(m.lang)
		}
		m.savePrefs()

	case key.Matches(msg, m.keys.ToggleTheme):
		m.theme = GetTheme(prefs.NextTheme(m.theme.Name))
		m.savePrefs()

	case key.Matches(msg, m.keys.ScrollUp):
		m.body.ScrollUp(1)
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.body.ScrollDown(1)
		return m, nil
	}

	m.sync(true)
	return m, nil
}

// handleOutlineKey moves the contents cursor, opens the chosen slide or
// jumps to a numbered section. Any other key closes the overlay.
func (m Model) handleOutlineKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ScrollUp):
		if m.outlineCursor > 0 {
			m.outlineCursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		if m.outlineCursor < m.machine.TotalSlides()-1 {
			m.outlineCursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if sl, ok := m.machine.Registry().At(m.outlineCursor); ok {
			m.machine.GoToSlide(sl.ID)
		}

	case key.Matches(msg, m.keys.Section):
		m.jumpToSection(msg.String())
	}

	m.showOutline = false
	m.sync(false)
	return m, nil
}

// handleMouse turns a horizontal left-button drag into a swipe.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			m.dragging = true
			m.dragStartX = msg.X
		case tea.MouseButtonWheelUp:
			m.body.ScrollUp(1)
		case tea.MouseButtonWheelDown:
			m.body.ScrollDown(1)
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return m, nil
		}
		m.dragging = false
		if g, ok := gesture.ClassifySwipe(m.dragStartX, msg.X, m.swipeThreshold); ok {
			m.dispatch(g)
			m.sync(false)
		}
	}
	return m, nil
}

// handleTick picks up transitions made by other drivers (remote API,
// auto-advance).
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctx.Err() != nil {
		return m, tea.Quit
	}
	m.sync(false)
	return m, tickCmd(m.pollTick)
}

func (m *Model) dispatch(g gesture.Gesture) {
	op, changed := gesture.Dispatch(g, m.lang.Direction(), m.machine)
	m.logger.Debug("gesture", "gesture", g.String(), "direction", m.lang.Direction().String(), "op", op.String(), "changed", changed)
}

// jumpToSection maps a digit key onto the registry's section order.
func (m *Model) jumpToSection(digit string) {
	if len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return
	}
	sections := m.machine.Registry().Sections()
	n := int(digit[0] - '1')
	if n >= len(sections) {
		return
	}
	m.machine.GoToSection(sections[n].ID)
}

// sync re-reads the machine view and re-renders the body when the slide,
// language or theme changed. force re-renders unconditionally.
func (m *Model) sync(force bool) {
	if m.machine == nil {
		return
	}
	next := m.machine.View()
	slideChanged := next.SlideID != m.view.SlideID
	modeChanged := next.PresentationMode != m.view.PresentationMode
	m.view = next
	if force || slideChanged || modeChanged {
		m.layoutBody()
		if slideChanged {
			m.body.GotoTop()
		}
	}
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	p := prefs.Prefs{Theme: m.theme.Name, Language: string(m.lang), LastSlide: m.view.SlideID}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", "error", err)
	}
}

// Language returns the active UI language.
func (m Model) Language() i18n.Language {
	return m.lang
}

// ThemeName returns the active theme name.
func (m Model) ThemeName() string {
	return m.theme.Name
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	if m.view.PresentationMode {
		return m.body.View()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.body.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) currentSection() (deck.Section, bool) {
	return m.machine.Registry().Section(m.view.SectionID)
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and returns the final model.
func Run(opts Options) (Model, error) {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(m.ctx),
	)
	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}
