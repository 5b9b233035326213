package deck

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type fileDeck struct {
	Sections []struct {
		ID    string `yaml:"id"`
		Title string `yaml:"title"`
		Color string `yaml:"color"`
	} `yaml:"sections"`
	Slides []struct {
		ID      string `yaml:"id"`
		Section string `yaml:"section"`
		Title   string `yaml:"title"`
	} `yaml:"slides"`
}

// LoadFile reads a YAML deck definition from path.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck: %w", err)
	}
	return Parse(data)
}

// Parse builds a registry from a YAML deck definition. Missing title keys
// default to "sections.<id>" and "slides.<id>.title".
func Parse(data []byte) (*Registry, error) {
	var raw fileDeck
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse deck: %w", err)
	}

	sections := make([]Section, 0, len(raw.Sections))
	for _, s := range raw.Sections {
		title := s.Title
		if title == "" {
			title = "sections." + s.ID
		}
		sections = append(sections, Section{ID: SectionID(s.ID), TitleKey: title, Color: s.Color})
	}

	slides := make([]Slide, 0, len(raw.Slides))
	for _, s := range raw.Slides {
		title := s.Title
		if title == "" {
			title = "slides." + s.ID + ".title"
		}
		slides = append(slides, Slide{ID: s.ID, Section: SectionID(s.Section), TitleKey: title})
	}

	r, err := NewRegistry(sections, slides)
	if err != nil {
		return nil, fmt.Errorf("build deck: %w", err)
	}
	return r, nil
}
