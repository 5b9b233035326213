package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func threeSlideSections() []Section {
	return []Section{{ID: "sec1"}, {ID: "sec2"}}
}

func TestNewRegistry_AssignsContiguousIndexes(t *testing.T) {
	r, err := NewRegistry(threeSlideSections(), []Slide{
		{ID: "A", Section: "sec1", Index: 42},
		{ID: "B", Section: "sec1"},
		{ID: "C", Section: "sec2"},
	})
	require.NoError(t, err)

	require.Equal(t, 3, r.Len())
	for i, want := range []string{"A", "B", "C"} {
		s, ok := r.At(i)
		require.True(t, ok)
		assert.Equal(t, want, s.ID)
		assert.Equal(t, i, s.Index)

		idx, ok := r.IndexOf(want)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	_, ok := r.At(3)
	assert.False(t, ok)
	_, ok = r.At(-1)
	assert.False(t, ok)
}

func TestNewRegistry_SectionViewsReproduceGlobalOrder(t *testing.T) {
	r := Default()

	var joined []string
	for _, sec := range r.Sections() {
		for _, s := range r.SlidesIn(sec.ID) {
			joined = append(joined, s.ID)
		}
	}

	var global []string
	for _, s := range r.Slides() {
		global = append(global, s.ID)
	}
	assert.Equal(t, global, joined)
}

func TestNewRegistry_RejectsInvalidDecks(t *testing.T) {
	cases := []struct {
		name   string
		slides []Slide
		want   error
	}{
		{"empty", nil, ErrEmptyDeck},
		{"duplicate slide", []Slide{{ID: "A", Section: "sec1"}, {ID: "A", Section: "sec1"}}, ErrDuplicateSlide},
		{"unknown section", []Slide{{ID: "A", Section: "nope"}}, ErrUnknownSection},
		{"out of order", []Slide{{ID: "A", Section: "sec2"}, {ID: "B", Section: "sec1"}}, ErrSectionOrder},
		{"interleaved", []Slide{{ID: "A", Section: "sec1"}, {ID: "B", Section: "sec2"}, {ID: "C", Section: "sec1"}}, ErrSectionOrder},
		{"blank id", []Slide{{ID: "  ", Section: "sec1"}}, ErrBlankID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRegistry(threeSlideSections(), tc.slides)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestNewRegistry_RejectsDuplicateSections(t *testing.T) {
	_, err := NewRegistry([]Section{{ID: "a"}, {ID: "a"}}, []Slide{{ID: "x", Section: "a"}})
	require.ErrorIs(t, err, ErrDuplicateSection)
}

func TestNewRegistry_AllowsEmptySections(t *testing.T) {
	r, err := NewRegistry([]Section{{ID: "empty"}, {ID: "full"}}, []Slide{{ID: "x", Section: "full"}})
	require.NoError(t, err)

	assert.Nil(t, r.SlidesIn("empty"))
	_, ok := r.FirstIn("empty")
	assert.False(t, ok)
	assert.Equal(t, "x", r.First().ID)
}

func TestNewRegistry_CopiesInput(t *testing.T) {
	slides := []Slide{{ID: "A", Section: "sec1"}}
	r, err := NewRegistry(threeSlideSections(), slides)
	require.NoError(t, err)

	slides[0].ID = "mutated"
	s, ok := r.At(0)
	require.True(t, ok)
	assert.Equal(t, "A", s.ID)

	out := r.Slides()
	out[0].ID = "mutated"
	s, _ = r.At(0)
	assert.Equal(t, "A", s.ID)
}

func TestDefault_Layout(t *testing.T) {
	r := Default()

	assert.Equal(t, 22, r.Len())
	assert.Len(t, r.Sections(), 7)
	assert.Equal(t, "intro-1", r.First().ID)

	first, ok := r.FirstIn(SectionCellularBiology)
	require.True(t, ok)
	assert.Equal(t, "cell-1", first.ID)
	assert.Equal(t, 3, first.Index)

	video, ok := r.Slide("cell-1-video")
	require.True(t, ok)
	assert.Equal(t, "slides.cell-1.title", video.TitleKey)

	sec, ok := r.Section(SectionTreatment)
	require.True(t, ok)
	assert.Equal(t, "#D32F2F", sec.Color)
	assert.Len(t, r.SlidesIn(SectionCellularBiology), 6)
}

func TestParse_YAMLDeck(t *testing.T) {
	r, err := Parse([]byte(`
sections:
  - id: basics
    color: "#112233"
  - id: advanced
    title: custom.advanced
slides:
  - id: one
    section: basics
  - id: two
    section: advanced
    title: custom.two
`))
	require.NoError(t, err)
	require.Equal(t, 2, r.Len())

	basics, ok := r.Section("basics")
	require.True(t, ok)
	assert.Equal(t, "sections.basics", basics.TitleKey)
	assert.Equal(t, "#112233", basics.Color)

	one, _ := r.Slide("one")
	assert.Equal(t, "slides.one.title", one.TitleKey)
	two, _ := r.Slide("two")
	assert.Equal(t, "custom.two", two.TitleKey)
	assert.Equal(t, 1, two.Index)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("sections: ["))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse deck")

	_, err = Parse([]byte("sections: []\nslides: []\n"))
	require.ErrorIs(t, err, ErrEmptyDeck)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sections:\n  - id: s\nslides:\n  - id: a\n    section: s\n"), 0o600))

	r, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, r.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read deck")
}
