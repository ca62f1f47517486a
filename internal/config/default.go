package config

// Default returns the default configuration for the given colorscheme type
// (light or dark).
//
// Gesture distances are in terminal cells, which is why they are a lot smaller
// than their pixel counterparts.
func Default(colorschemeType ColorschemeType) Config {
	edgeZoneWidth, landInset, dragThreshold := 6, 4, 0
	return Config{
		Stylesheet: defaultStylesheet(colorschemeType),
		Gesture: Gesture{
			EdgeZoneWidth: &edgeZoneWidth,
			LandInset:     &landInset,
			DragThreshold: &dragThreshold,
			PointerSettle: "20ms",
			PaintSettle:   "10ms",
		},
		Keys: map[string]string{
			"q":         "quit",
			"<c-c>":     "quit",
			"<c-s>":     "save",
			"j":         "scroll-down",
			"k":         "scroll-up",
			"<c-d>":     "scroll-page-down",
			"<c-u>":     "scroll-page-up",
			"gg":        "scroll-top",
			"G":         "scroll-bottom",
			"<space>":   "toggle-palette",
			"W":         "toggle-log",
			"?":         "toggle-help",
			"<esc>":     "clear-selection",
			"u":         "undo",
			"<c-space>": "toggle-touch",
		},
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Dark {
		return Stylesheet{
			Normal:            Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			NoteText:          Styling{Fg: "#e0e0e0", Bg: "#101010", Style: &FontStyle{}},
			NoteSelection:     Styling{Fg: "#ffffff", Bg: "#34508a", Style: &FontStyle{}},
			NoteCursorLine:    Styling{Fg: "#ffffff", Bg: "#1c1c1c", Style: &FontStyle{}},
			Status:            Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
			Tools:             Styling{Fg: "#f0f0f0", Bg: "#303030", Style: &FontStyle{}},
			ToolSelected:      Styling{Fg: "#000000", Bg: "#c0c0c0", Style: &FontStyle{Bold: true}},
			ToolToggle:        Styling{Fg: "#ffffff", Bg: "#5a3d99", Style: &FontStyle{Bold: true}},
			ToolToggleActive:  Styling{Fg: "#ffffff", Bg: "#8c5cff", Style: &FontStyle{Bold: true}},
			ScrollIndicator:   Styling{Fg: "#000000", Bg: "#8c5cff", Style: &FontStyle{}},
			LogDefault:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
			LogTitleBox:       Styling{Fg: "#f0f0f0", Bg: "#000000", Style: &FontStyle{Bold: true}},
			LogEntryTypeError: Styling{Fg: "#ffaaaa", Bg: "#882222", Style: &FontStyle{Bold: true}},
			LogEntryTypeWarn:  Styling{Fg: "#fff0cc", Bg: "#cc8f00", Style: &FontStyle{Bold: true}},
			LogEntryTypeInfo:  Styling{Fg: "#c2edab", Bg: "#3a751a", Style: &FontStyle{Bold: true}},
			LogEntryTypeDebug: Styling{Fg: "#ccebff", Bg: "#0065a3", Style: &FontStyle{Bold: true}},
			LogEntryTypeTrace: Styling{Fg: "#ffccf7", Bg: "#a3008b", Style: &FontStyle{Bold: true}},
			LogEntryLocation:  Styling{Fg: "#c0c0c0", Bg: "#000000", Style: &FontStyle{}},
			LogEntryTime:      Styling{Fg: "#808080", Bg: "#000000", Style: &FontStyle{}},
			Help:              Styling{Fg: "#f0f0f0", Bg: "#2a2a2a", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:            Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		NoteText:          Styling{Fg: "#202020", Bg: "#fafafa", Style: &FontStyle{}},
		NoteSelection:     Styling{Fg: "#000000", Bg: "#b4d5fe", Style: &FontStyle{}},
		NoteCursorLine:    Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		Status:            Styling{Fg: "#000000", Bg: "#e0e0e0", Style: &FontStyle{}},
		Tools:             Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
		ToolSelected:      Styling{Fg: "#ffffff", Bg: "#404040", Style: &FontStyle{Bold: true}},
		ToolToggle:        Styling{Fg: "#ffffff", Bg: "#8c5cff", Style: &FontStyle{Bold: true}},
		ToolToggleActive:  Styling{Fg: "#ffffff", Bg: "#5a3d99", Style: &FontStyle{Bold: true}},
		ScrollIndicator:   Styling{Fg: "#ffffff", Bg: "#8c5cff", Style: &FontStyle{}},
		LogDefault:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
		LogTitleBox:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{Bold: true}},
		LogEntryTypeError: Styling{Fg: "#882222", Bg: "#ffaaaa", Style: &FontStyle{Bold: true}},
		LogEntryTypeWarn:  Styling{Fg: "#cc8f00", Bg: "#fff0cc", Style: &FontStyle{Bold: true}},
		LogEntryTypeInfo:  Styling{Fg: "#3a751a", Bg: "#c2edab", Style: &FontStyle{Bold: true}},
		LogEntryTypeDebug: Styling{Fg: "#0065a3", Bg: "#ccebff", Style: &FontStyle{Bold: true}},
		LogEntryTypeTrace: Styling{Fg: "#a3008b", Bg: "#ffccf7", Style: &FontStyle{Bold: true}},
		LogEntryLocation:  Styling{Fg: "#404040", Bg: "#ffffff", Style: &FontStyle{}},
		LogEntryTime:      Styling{Fg: "#808080", Bg: "#ffffff", Style: &FontStyle{}},
		Help:              Styling{Fg: "#000000", Bg: "#e8e8e8", Style: &FontStyle{}},
	}
}
