package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

func TestResolve_Table(t *testing.T) {
	cases := []struct {
		g   Gesture
		ltr Operation
		rtl Operation
	}{
		{SwipeLeft, OpNext, OpPrev},
		{SwipeRight, OpPrev, OpNext},
		{PointLeft, OpPrev, OpNext},
		{PointRight, OpNext, OpPrev},
		{Advance, OpNext, OpNext},
		{Retreat, OpPrev, OpPrev},
		{None, OpNone, OpNone},
	}
	for _, tc := range cases {
		t.Run(tc.g.String(), func(t *testing.T) {
			assert.Equal(t, tc.ltr, Resolve(tc.g, LTR))
			assert.Equal(t, tc.rtl, Resolve(tc.g, RTL))
		})
	}
}

func TestResolve_ForwardMeansNextInBothDirections(t *testing.T) {
	for _, dir := range []Direction{LTR, RTL} {
		assert.Equal(t, OpNext, Resolve(ForwardSwipe(dir), dir), dir.String())
		assert.Equal(t, OpNext, Resolve(ForwardPoint(dir), dir), dir.String())
	}
}

func TestDispatch_RTLForwardMatchesLTRForward(t *testing.T) {
	reg := deck.Default()
	ltr := navigation.New(reg)
	rtl := navigation.New(reg)

	_, changed := Dispatch(ForwardSwipe(LTR), LTR, ltr)
	require.True(t, changed)
	_, changed = Dispatch(ForwardSwipe(RTL), RTL, rtl)
	require.True(t, changed)
	assert.Equal(t, ltr.View(), rtl.View())

	// The same physical swipe goes opposite ways.
	Dispatch(SwipeRight, RTL, rtl)
	Dispatch(SwipeRight, LTR, ltr)
	assert.Equal(t, 2, rtl.SlideIndex())
	assert.Equal(t, 0, ltr.SlideIndex())
}

func TestClassifySwipe(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
		min        int
		want       Gesture
		ok         bool
	}{
		{"right", 10, 100, 50, SwipeRight, true},
		{"left", 100, 10, 50, SwipeLeft, true},
		{"exactly threshold is ignored", 0, 50, 50, None, false},
		{"short drag", 0, 20, 50, None, false},
		{"tap", 30, 30, 50, None, false},
		{"default threshold", 0, 51, 0, SwipeRight, true},
		{"cell threshold", 20, 11, 8, SwipeLeft, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, ok := ClassifySwipe(tc.start, tc.end, tc.min)
			assert.Equal(t, tc.want, g)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestDirectionOf(t *testing.T) {
	assert.Equal(t, RTL, DirectionOf(language.Persian))
	assert.Equal(t, RTL, DirectionOf(language.Arabic))
	assert.Equal(t, RTL, DirectionOf(language.Hebrew))
	assert.Equal(t, LTR, DirectionOf(language.English))
	assert.Equal(t, LTR, DirectionOf(language.MustParse("az-Latn")))
	assert.Equal(t, RTL, DirectionOf(language.MustParse("az-Arab")))
}

func TestParseHelpers(t *testing.T) {
	assert.Equal(t, RTL, ParseDirection(" RTL "))
	assert.Equal(t, LTR, ParseDirection("sideways"))

	g, ok := ParseGesture("Swipe-Left")
	require.True(t, ok)
	assert.Equal(t, SwipeLeft, g)

	_, ok = ParseGesture("none")
	assert.False(t, ok)
	_, ok = ParseGesture("wiggle")
	assert.False(t, ok)
}

type countingNav struct{ next, prev int }

func (c *countingNav) Next() bool { c.next++; return true }
func (c *countingNav) Prev() bool { c.prev++; return true }

func TestApply(t *testing.T) {
	nav := &countingNav{}
	assert.True(t, Apply(OpNext, nav))
	assert.True(t, Apply(OpPrev, nav))
	assert.False(t, Apply(OpNone, nav))
	assert.Equal(t, 1, nav.next)
	assert.Equal(t, 1, nav.prev)
}
