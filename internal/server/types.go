package server

import (
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/deck"
	"github.com/cygnusleoimirgalileo/covid-19-presentation/internal/navigation"
)

// MutationResponse is returned by every state-changing endpoint.
type MutationResponse struct {
	Changed bool            `json:"changed"`
	State   navigation.View `json:"state"`
}

// GestureRequest is the body of POST /api/gesture.
type GestureRequest struct {
	Gesture   string `json:"gesture"`
	Direction string `json:"direction,omitempty"`
}

// GestureResponse reports which operation a gesture resolved to.
type GestureResponse struct {
	MutationResponse
	Operation string `json:"operation"`
}

// SectionEntry lists a section with the ids of its slides.
type SectionEntry struct {
	deck.Section
	Slides []string `json:"slides"`
}

// ErrorResponse is the body of 4xx answers.
type ErrorResponse struct {
	Error string `json:"error"`
}
