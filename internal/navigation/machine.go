package navigation

import (
	"io"
	"log/slog"
	"sync"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
)

// State is the mutable navigation state. SectionID always matches the
// section of SlideID.
type State struct {
	SlideID          string
	SectionID        deck.SectionID
	PresentationMode bool
	Paused           bool
}

// View is the read-only projection handed to renderers and remote clients.
type View struct {
	SlideID          string         `json:"currentSlideId"`
	SectionID        deck.SectionID `json:"currentSectionId"`
	PresentationMode bool           `json:"presentationMode"`
	Paused           bool           `json:"isPaused"`
	SlideIndex       int            `json:"slideIndex"`
	TotalSlides      int            `json:"totalSlides"`
}

// Op names a machine operation.
type Op string

const (
	OpNext               Op = "next"
	OpPrev               Op = "prev"
	OpGoToSlide          Op = "goto-slide"
	OpGoToSection        Op = "goto-section"
	OpTogglePresentation Op = "toggle-presentation-mode"
	OpTogglePause        Op = "toggle-pause"
	OpAutoAdvance        Op = "auto-advance"
)

// Transition describes one committed operation. Seq increases by one per
// commit.
type Transition struct {
	Op      Op
	Target  string
	Before  View
	After   View
	Changed bool
	Seq     uint64
}

// Observer is notified after every operation, including no-ops.
// Transitions are delivered one at a time in Seq order, outside the state
// lock, possibly on the goroutine of a later mutation. Observers may read
// and mutate the machine.
type Observer func(Transition)

// Option configures a Machine.
type Option func(*Machine)

// WithObserver registers an observer at construction.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		if o != nil {
			m.observers = append(m.observers, o)
		}
	}
}

// WithStart starts the machine on the given slide instead of the first one.
// Unknown ids are ignored.
func WithStart(slideID string) Option {
	return func(m *Machine) {
		if i, ok := m.reg.IndexOf(slideID); ok {
			m.index = i
		}
	}
}

// WithStrict makes the machine log unknown slide and section ids. Behaviour
// is unchanged: the request is still a no-op.
func WithStrict(logger *slog.Logger) Option {
	return func(m *Machine) {
		m.strict = true
		if logger != nil {
			m.logger = logger
		}
	}
}

// Machine is the presentation navigation state machine. All mutations go
// through its methods; it is safe for concurrent use.
type Machine struct {
	reg *deck.Registry

	mu           sync.RWMutex
	index        int
	presentation bool
	paused       bool
	seq          uint64
	pending      []Transition
	delivering   bool

	obsMu     sync.RWMutex
	observers []Observer

	strict bool
	logger *slog.Logger
}

// New creates a machine positioned on the registry's first slide.
func New(reg *deck.Registry, opts ...Option) *Machine {
	m := &Machine{
		reg:    reg,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Registry returns the registry the machine walks.
func (m *Machine) Registry() *deck.Registry {
	return m.reg
}

// Observe registers an observer and returns a function that removes it.
func (m *Machine) Observe(o Observer) (cancel func()) {
	m.obsMu.Lock()
	defer m.obsMu.Unlock()

	m.observers = append(m.observers, o)
	slot := len(m.observers) - 1
	return func() {
		m.obsMu.Lock()
		defer m.obsMu.Unlock()
		if slot < len(m.observers) {
			m.observers[slot] = nil
		}
	}
}

// Next moves to the following slide. It is a no-op on the last slide.
func (m *Machine) Next() bool {
	return m.Step(OpNext, "").Changed
}

// Prev moves to the preceding slide. It is a no-op on the first slide.
func (m *Machine) Prev() bool {
	return m.Step(OpPrev, "").Changed
}

// GoToSlide jumps to the slide with the given id. Unknown ids are ignored.
func (m *Machine) GoToSlide(id string) bool {
	return m.Step(OpGoToSlide, id).Changed
}

// GoToSection jumps to the first slide of a section. Unknown or empty
// sections are ignored.
func (m *Machine) GoToSection(id deck.SectionID) bool {
	return m.Step(OpGoToSection, string(id)).Changed
}

// TogglePresentationMode flips presentation mode.
func (m *Machine) TogglePresentationMode() bool {
	return m.Step(OpTogglePresentation, "").Changed
}

// TogglePause flips the pause flag.
func (m *Machine) TogglePause() bool {
	return m.Step(OpTogglePause, "").Changed
}

// NextUnlessPaused advances like Next, checking the pause flag in the same
// critical section. While paused nothing is committed and observers are not
// called.
func (m *Machine) NextUnlessPaused() bool {
	return m.Step(OpAutoAdvance, "").Changed
}

// Step runs op and returns the committed transition, whose After view is
// the state the operation produced. target is the slide or section id for
// OpGoToSlide and OpGoToSection. Unknown ops commit nothing.
func (m *Machine) Step(op Op, target string) Transition {
	var guard func() bool
	var apply func() bool
	switch op {
	case OpNext:
		apply = m.next
	case OpAutoAdvance:
		guard = func() bool { return !m.paused }
		apply = m.next
	case OpPrev:
		apply = m.prev
	case OpGoToSlide:
		apply = func() bool { return m.goToSlide(target) }
	case OpGoToSection:
		apply = func() bool { return m.goToSection(deck.SectionID(target)) }
	case OpTogglePresentation:
		apply = func() bool {
			m.presentation = !m.presentation
			return true
		}
	case OpTogglePause:
		apply = func() bool {
			m.paused = !m.paused
			return true
		}
	default:
		v, seq := m.Snapshot()
		return Transition{Op: op, Target: target, Before: v, After: v, Seq: seq}
	}
	return m.moveIf(guard, op, target, apply)
}

// Snapshot returns the current view with the Seq of the last committed
// transition. Consumers that combine it with observed transitions can drop
// any transition whose Seq is not greater.
func (m *Machine) Snapshot() (View, uint64) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewLocked(), m.seq
}

func (m *Machine) next() bool {
	if m.index+1 >= m.reg.Len() {
		return false
	}
	m.index++
	return true
}

func (m *Machine) prev() bool {
	if m.index == 0 {
		return false
	}
	m.index--
	return true
}

func (m *Machine) goToSlide(id string) bool {
	i, ok := m.reg.IndexOf(id)
	if !ok {
		m.reportUnknown("slide", id)
		return false
	}
	if i == m.index {
		return false
	}
	m.index = i
	return true
}

func (m *Machine) goToSection(id deck.SectionID) bool {
	first, ok := m.reg.FirstIn(id)
	if !ok {
		m.reportUnknown("section", string(id))
		return false
	}
	if first.Index == m.index {
		return false
	}
	m.index = first.Index
	return true
}

// State returns a copy of the current state.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stateLocked()
}

// View returns the read-only projection of the current state.
func (m *Machine) View() View {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewLocked()
}

// CurrentSlide returns the current slide.
func (m *Machine) CurrentSlide() (deck.Slide, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.reg.At(m.index)
}

// SlideIndex returns the zero-based position of the current slide.
func (m *Machine) SlideIndex() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.index
}

// TotalSlides returns the number of slides in the registry.
func (m *Machine) TotalSlides() int {
	return m.reg.Len()
}

// moveIf applies a mutation under the state lock when guard allows it and
// queues the transition for delivery. A refused guard commits nothing.
func (m *Machine) moveIf(guard func() bool, op Op, target string, apply func() bool) Transition {
	m.mu.Lock()
	before := m.viewLocked()
	if guard != nil && !guard() {
		seq := m.seq
		m.mu.Unlock()
		return Transition{Op: op, Target: target, Before: before, After: before, Seq: seq}
	}
	changed := apply()
	m.seq++
	t := Transition{Op: op, Target: target, Before: before, After: m.viewLocked(), Changed: changed, Seq: m.seq}
	m.pending = append(m.pending, t)
	if m.delivering {
		m.mu.Unlock()
		return t
	}
	m.delivering = true
	m.mu.Unlock()

	m.deliver()
	return t
}

// deliver drains the pending queue. Only one goroutine delivers at a time;
// commits made meanwhile are picked up by the running loop, so observers
// see transitions in commit order.
func (m *Machine) deliver() {
	for {
		m.mu.Lock()
		batch := m.pending
		m.pending = nil
		if len(batch) == 0 {
			m.delivering = false
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()

		for _, t := range batch {
			m.notify(t)
		}
	}
}

func (m *Machine) notify(t Transition) {
	m.obsMu.RLock()
	observers := make([]Observer, 0, len(m.observers))
	for _, o := range m.observers {
		if o != nil {
			observers = append(observers, o)
		}
	}
	m.obsMu.RUnlock()

	for _, o := range observers {
		o(t)
	}
}

func (m *Machine) reportUnknown(kind, id string) {
	if m.strict {
		m.logger.Warn("navigation target not found", "kind", kind, "id", id)
	}
}

func (m *Machine) stateLocked() State {
	s, _ := m.reg.At(m.index)
	return State{
		SlideID:          s.ID,
		SectionID:        s.Section,
		PresentationMode: m.presentation,
		Paused:           m.paused,
	}
}

func (m *Machine) viewLocked() View {
	st := m.stateLocked()
	return View{
		SlideID:          st.SlideID,
		SectionID:        st.SectionID,
		PresentationMode: st.PresentationMode,
		Paused:           st.Paused,
		SlideIndex:       m.index,
		TotalSlides:      m.reg.Len(),
	}
}
