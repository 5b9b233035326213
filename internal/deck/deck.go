package deck

import (
	"errors"
	"fmt"
	"strings"
)

// SectionID identifies a presentation chapter.
type SectionID string

const (
	SectionIntroduction      SectionID = "introduction"
	SectionCellularBiology   SectionID = "cellular-biology"
	SectionMolecularPathways SectionID = "molecular-pathways"
	SectionHallmarks         SectionID = "hallmarks"
	SectionTreatment         SectionID = "treatment"
	SectionStatistics        SectionID = "statistics"
	SectionFuture            SectionID = "future"
)

// Sentinel errors returned by NewRegistry.
var (
	ErrEmptyDeck        = errors.New("deck has no slides")
	ErrDuplicateSlide   = errors.New("duplicate slide id")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrUnknownSection   = errors.New("slide references unknown section")
	ErrSectionOrder     = errors.New("slides are not grouped in section order")
	ErrBlankID          = errors.New("blank id")
)

// Slide is one presentation screen. Index is assigned by the registry.
type Slide struct {
	ID       string    `json:"id"`
	Section  SectionID `json:"section"`
	TitleKey string    `json:"titleKey"`
	Index    int       `json:"index"`
}

// Section is a named, coloured group of slides.
type Section struct {
	ID       SectionID `json:"id"`
	TitleKey string    `json:"titleKey"`
	Color    string    `json:"color"`
}

// Registry is the ordered, immutable collection of sections and slides.
type Registry struct {
	sections  []Section
	slides    []Slide
	bySlide   map[string]int
	bySection map[SectionID][]int
}

// NewRegistry validates the deck and assigns display indexes.
//
// Slides must appear grouped by section, with the groups in section
// declaration order. Sections without slides are allowed.
func NewRegistry(sections []Section, slides []Slide) (*Registry, error) {
	if len(slides) == 0 {
		return nil, ErrEmptyDeck
	}

	r := &Registry{
		sections:  make([]Section, len(sections)),
		slides:    make([]Slide, len(slides)),
		bySlide:   make(map[string]int, len(slides)),
		bySection: make(map[SectionID][]int, len(sections)),
	}

	order := make(map[SectionID]int, len(sections))
	for i, sec := range sections {
		sec.ID = SectionID(strings.TrimSpace(string(sec.ID)))
		if sec.ID == "" {
			return nil, fmt.Errorf("section %d: %w", i, ErrBlankID)
		}
		if _, dup := order[sec.ID]; dup {
			return nil, fmt.Errorf("section %q: %w", sec.ID, ErrDuplicateSection)
		}
		order[sec.ID] = i
		r.sections[i] = sec
	}

	lastSection := -1
	for i, s := range slides {
		s.ID = strings.TrimSpace(s.ID)
		if s.ID == "" {
			return nil, fmt.Errorf("slide %d: %w", i, ErrBlankID)
		}
		if _, dup := r.bySlide[s.ID]; dup {
			return nil, fmt.Errorf("slide %q: %w", s.ID, ErrDuplicateSlide)
		}
		pos, ok := order[s.Section]
		if !ok {
			return nil, fmt.Errorf("slide %q section %q: %w", s.ID, s.Section, ErrUnknownSection)
		}
		if pos < lastSection {
			return nil, fmt.Errorf("slide %q section %q: %w", s.ID, s.Section, ErrSectionOrder)
		}
		lastSection = pos

		s.Index = i
		r.slides[i] = s
		r.bySlide[s.ID] = i
		r.bySection[s.Section] = append(r.bySection[s.Section], i)
	}

	return r, nil
}

// Len returns the total slide count.
func (r *Registry) Len() int {
	return len(r.slides)
}

// At returns the slide at display index i.
func (r *Registry) At(i int) (Slide, bool) {
	if i < 0 || i >= len(r.slides) {
		return Slide{}, false
	}
	return r.slides[i], true
}

// Slide looks a slide up by id.
func (r *Registry) Slide(id string) (Slide, bool) {
	i, ok := r.bySlide[id]
	if !ok {
		return Slide{}, false
	}
	return r.slides[i], true
}

// IndexOf returns the display index of id.
func (r *Registry) IndexOf(id string) (int, bool) {
	i, ok := r.bySlide[id]
	return i, ok
}

// Section looks a section up by id.
func (r *Registry) Section(id SectionID) (Section, bool) {
	for _, sec := range r.sections {
		if sec.ID == id {
			return sec, true
		}
	}
	return Section{}, false
}

// Sections returns the sections in declaration order.
func (r *Registry) Sections() []Section {
	out := make([]Section, len(r.sections))
	copy(out, r.sections)
	return out
}

// Slides returns every slide in display order.
func (r *Registry) Slides() []Slide {
	out := make([]Slide, len(r.slides))
	copy(out, r.slides)
	return out
}

// SlidesIn returns the slides of a section in presentation order.
func (r *Registry) SlidesIn(id SectionID) []Slide {
	idx := r.bySection[id]
	if len(idx) == 0 {
		return nil
	}
	out := make([]Slide, len(idx))
	for i, n := range idx {
		out[i] = r.slides[n]
	}
	return out
}

// FirstIn returns the first slide of a section by global order.
func (r *Registry) FirstIn(id SectionID) (Slide, bool) {
	idx := r.bySection[id]
	if len(idx) == 0 {
		return Slide{}, false
	}
	return r.slides[idx[0]], true
}

// First returns the opening slide of the deck.
func (r *Registry) First() Slide {
	return r.slides[0]
}
