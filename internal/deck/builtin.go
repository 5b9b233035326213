package deck

// Default returns the built-in SARS-CoV-2 deck.
func Default() *Registry {
	r, err := NewRegistry(defaultSections(), defaultSlides())
	if err != nil {
		panic("deck: built-in deck is invalid: " + err.Error())
	}
	return r
}

func defaultSections() []Section {
	return []Section{
		{ID: SectionIntroduction, TitleKey: "sections.introduction", Color: "#5E35B1"},
		{ID: SectionCellularBiology, TitleKey: "sections.cellular-biology", Color: "#0097A7"},
		{ID: SectionMolecularPathways, TitleKey: "sections.molecular-pathways", Color: "#43A047"},
		{ID: SectionHallmarks, TitleKey: "sections.hallmarks", Color: "#FF9800"},
		{ID: SectionTreatment, TitleKey: "sections.treatment", Color: "#D32F2F"},
		{ID: SectionStatistics, TitleKey: "sections.statistics", Color: "#7986CB"},
		{ID: SectionFuture, TitleKey: "sections.future", Color: "#8E24AA"},
	}
}

func defaultSlides() []Slide {
	s := func(id string, sec SectionID) Slide {
		return Slide{ID: id, Section: sec, TitleKey: "slides." + id + ".title"}
	}
	video := s("cell-1-video", SectionCellularBiology)
	video.TitleKey = "slides.cell-1.title" // shares the cell-1 heading

	return []Slide{
		s("intro-1", SectionIntroduction),
		s("intro-2", SectionIntroduction),
		s("intro-3", SectionIntroduction),

		s("cell-1", SectionCellularBiology),
		video,
		s("cell-2", SectionCellularBiology),
		s("cell-3", SectionCellularBiology),
		s("cell-4", SectionCellularBiology),
		s("cell-5", SectionCellularBiology),

		s("mol-1", SectionMolecularPathways),
		s("mol-2", SectionMolecularPathways),

		s("hall-1", SectionHallmarks),
		s("hall-2", SectionHallmarks),
		s("hall-3", SectionHallmarks),

		s("treat-1", SectionTreatment),
		s("treat-3", SectionTreatment),
		s("treat-5", SectionTreatment),

		s("stats-1", SectionStatistics),
		s("stats-3", SectionStatistics),

		s("future-1", SectionFuture),
		s("future-2", SectionFuture),
		s("future-5", SectionFuture),
	}
}
