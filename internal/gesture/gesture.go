// Package gesture turns physical input into logical navigation.
//
// The navigation machine only knows "next" and "previous". Which physical
// swipe or arrow means "next" depends on reading direction: in a
// right-to-left language the deck reads from right to left, so every
// horizontal mapping flips. Resolve is a pure function so it can be tested
// without a machine.
package gesture

import (
	"strings"

	"golang.org/x/text/language"
)

// Direction is the reading direction of the active language.
type Direction int

const (
	LTR Direction = iota
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection parses "ltr" or "rtl". Anything else is LTR.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "rtl") {
		return RTL
	}
	return LTR
}

var rtlScripts = map[string]struct{}{
	"Arab": {},
	"Hebr": {},
	"Thaa": {},
	"Syrc": {},
	"Nkoo": {},
	"Adlm": {},
	"Rohg": {},
}

// DirectionOf derives the reading direction from a language tag's script.
func DirectionOf(tag language.Tag) Direction {
	script, _ := tag.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return RTL
	}
	return LTR
}

// Gesture is a physical input.
type Gesture int

const (
	None Gesture = iota
	SwipeLeft
	SwipeRight
	PointLeft  // left arrow key or left-pointing control
	PointRight // right arrow key or right-pointing control
	Advance    // space, page down, enter
	Retreat    // backspace, page up
)

var gestureNames = map[Gesture]string{
	None:       "none",
	SwipeLeft:  "swipe-left",
	SwipeRight: "swipe-right",
	PointLeft:  "point-left",
	PointRight: "point-right",
	Advance:    "advance",
	Retreat:    "retreat",
}

func (g Gesture) String() string {
	if name, ok := gestureNames[g]; ok {
		return name
	}
	return "none"
}

// ParseGesture parses the names produced by Gesture.String.
func ParseGesture(s string) (Gesture, bool) {
	want := strings.ToLower(strings.TrimSpace(s))
	for g, name := range gestureNames {
		if name == want && g != None {
			return g, true
		}
	}
	return None, false
}

// Operation is a logical navigation step.
type Operation int

const (
	OpNone Operation = iota
	OpNext
	OpPrev
)

func (o Operation) String() string {
	switch o {
	case OpNext:
		return "next"
	case OpPrev:
		return "prev"
	default:
		return "none"
	}
}

// Resolve maps a physical gesture to a logical operation for a reading
// direction.
func Resolve(g Gesture, dir Direction) Operation {
	var op Operation
	switch g {
	case SwipeLeft, PointRight:
		op = OpNext
	case SwipeRight, PointLeft:
		op = OpPrev
	case Advance:
		return OpNext
	case Retreat:
		return OpPrev
	default:
		return OpNone
	}
	if dir == RTL {
		return flip(op)
	}
	return op
}

func flip(op Operation) Operation {
	switch op {
	case OpNext:
		return OpPrev
	case OpPrev:
		return OpNext
	}
	return op
}

// ForwardSwipe returns the swipe that advances the deck in dir.
func ForwardSwipe(dir Direction) Gesture {
	if dir == RTL {
		return SwipeRight
	}
	return SwipeLeft
}

// ForwardPoint returns the arrow that advances the deck in dir.
func ForwardPoint(dir Direction) Gesture {
	if dir == RTL {
		return PointLeft
	}
	return PointRight
}

// DefaultMinSwipeDistance is the minimum horizontal travel, in touch pixels,
// for a drag to count as a swipe.
const DefaultMinSwipeDistance = 50

// ClassifySwipe turns a horizontal drag into a swipe. Drags that travel
// minDistance or less are not gestures. A non-positive minDistance uses
// DefaultMinSwipeDistance.
func ClassifySwipe(startX, endX, minDistance int) (Gesture, bool) {
	if minDistance <= 0 {
		minDistance = DefaultMinSwipeDistance
	}
	delta := endX - startX
	switch {
	case delta > minDistance:
		return SwipeRight, true
	case delta < -minDistance:
		return SwipeLeft, true
	default:
		return None, false
	}
}

// Navigator is the part of the navigation machine Apply drives.
type Navigator interface {
	Next() bool
	Prev() bool
}

// Apply performs op on nav and reports whether the state changed.
func Apply(op Operation, nav Navigator) bool {
	switch op {
	case OpNext:
		return nav.Next()
	case OpPrev:
		return nav.Prev()
	default:
		return false
	}
}

// Dispatch resolves g for dir and applies it.
func Dispatch(g Gesture, dir Direction, nav Navigator) (Operation, bool) {
	op := Resolve(g, dir)
	return op, Apply(op, nav)
}
