package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ja-he/alight/internal/model"
)

// Config is the configuration data as present in a config file at
// '${ALIGHT_HOME}/config.yaml'.
type Config struct {
	Stylesheet Stylesheet        `yaml:"stylesheet"`
	Tools      Tools             `yaml:"tools"`
	Gesture    Gesture           `yaml:"gesture"`
	Touch      *bool             `yaml:"touch,omitempty"`
	Keys       map[string]string `yaml:"keys,omitempty"`
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal            Styling `yaml:"normal"`
	NoteText          Styling `yaml:"note-text"`
	NoteSelection     Styling `yaml:"note-selection"`
	NoteCursorLine    Styling `yaml:"note-cursor-line"`
	Status            Styling `yaml:"status"`
	Tools             Styling `yaml:"tools"`
	ToolSelected      Styling `yaml:"tool-selected"`
	ToolToggle        Styling `yaml:"tool-toggle"`
	ToolToggleActive  Styling `yaml:"tool-toggle-active"`
	ScrollIndicator   Styling `yaml:"scroll-indicator"`
	LogDefault        Styling `yaml:"log-default"`
	LogTitleBox       Styling `yaml:"log-title-box"`
	LogEntryTypeError Styling `yaml:"log-entry-type-error"`
	LogEntryTypeWarn  Styling `yaml:"log-entry-type-warn"`
	LogEntryTypeInfo  Styling `yaml:"log-entry-type-info"`
	LogEntryTypeDebug Styling `yaml:"log-entry-type-debug"`
	LogEntryTypeTrace Styling `yaml:"log-entry-type-trace"`
	LogEntryLocation  Styling `yaml:"log-entry-location"`
	LogEntryTime      Styling `yaml:"log-entry-time"`
	Help              Styling `yaml:"help"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// Tools are additional tools defined in a config file.
// They are appended to the default tools.
type Tools struct {
	Highlights []Highlight `yaml:"highlights,omitempty"`
	Templates  []Template  `yaml:"templates,omitempty"`
}

// A Highlight tool as defined in a config file.
type Highlight struct {
	ID    string `yaml:"id"`
	Color string `yaml:"color"`
	Label string `yaml:"label,omitempty"`
}

// A Template tool as defined in a config file.
// The template must contain the placeholder '$1' exactly once.
type Template struct {
	ID       string `yaml:"id"`
	Template string `yaml:"template"`
	Label    string `yaml:"label,omitempty"`
	Icon     string `yaml:"icon,omitempty"`
}

// Gesture configures the gesture classification and the settle delays.
//
// Distances are in terminal cells. For format of the delays see
// time.ParseDuration.
type Gesture struct {
	EdgeZoneWidth *int   `yaml:"edge-zone-width,omitempty"`
	LandInset     *int   `yaml:"land-inset,omitempty"`
	DragThreshold *int   `yaml:"drag-threshold,omitempty"`
	PointerSettle string `yaml:"pointer-settle,omitempty"`
	PaintSettle   string `yaml:"paint-settle,omitempty"`
}

// PointerSettleDuration returns the parsed pointer settle delay.
func (g Gesture) PointerSettleDuration() (time.Duration, error) {
	return parseNonNegativeDuration(g.PointerSettle)
}

// PaintSettleDuration returns the parsed paint settle delay.
func (g Gesture) PaintSettleDuration() (time.Duration, error) {
	return parseNonNegativeDuration(g.PaintSettle)
}

func parseNonNegativeDuration(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration '%s' (%w)", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration '%s'", s)
	}
	return d, nil
}

// ModelTools returns the configured tools as model tools, highlights first.
// They are not validated here; that is up to the registry.
func (t Tools) ModelTools() []model.Tool {
	result := make([]model.Tool, 0, len(t.Highlights)+len(t.Templates))
	for _, h := range t.Highlights {
		label := h.Label
		if label == "" {
			label = h.ID
		}
		result = append(result, model.NewHighlight(h.ID, h.Color, label))
	}
	for _, tmpl := range t.Templates {
		label, icon := tmpl.Label, tmpl.Icon
		if label == "" {
			label = tmpl.ID
		}
		if icon == "" {
			icon = "T"
		}
		result = append(result, model.NewTemplate(tmpl.ID, tmpl.Template, icon, label))
	}
	return result
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	var defaultConfig Config
	switch defaultTheme {
	case Dark:
		defaultConfig = Default(Dark)
	case Light:
		defaultConfig = Default(Light)
	default:
		return Config{}, fmt.Errorf("unknown colorscheme type %d", defaultTheme)
	}

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	if _, err := result.Gesture.PointerSettleDuration(); err != nil {
		return defaultConfig, fmt.Errorf("invalid pointer-settle (%w)", err)
	}
	if _, err := result.Gesture.PaintSettleDuration(); err != nil {
		return defaultConfig, fmt.Errorf("invalid paint-settle (%w)", err)
	}

	return result, nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	result.Tools.Highlights = append(append([]Highlight{}, base.Tools.Highlights...), augment.Tools.Highlights...)
	result.Tools.Templates = append(append([]Template{}, base.Tools.Templates...), augment.Tools.Templates...)

	result.Gesture = base.Gesture.augmentWith(augment.Gesture)

	if augment.Touch != nil {
		touch := *augment.Touch
		result.Touch = &touch
	}

	if len(augment.Keys) > 0 {
		result.Keys = make(map[string]string, len(base.Keys)+len(augment.Keys))
		for k, v := range base.Keys {
			result.Keys[k] = v
		}
		for k, v := range augment.Keys {
			result.Keys[k] = v
		}
	}

	return result
}

func (base Gesture) augmentWith(augment Gesture) Gesture {
	result := base
	if augment.EdgeZoneWidth != nil {
		result.EdgeZoneWidth = augment.EdgeZoneWidth
	}
	if augment.LandInset != nil {
		result.LandInset = augment.LandInset
	}
	if augment.DragThreshold != nil {
		result.DragThreshold = augment.DragThreshold
	}
	if augment.PointerSettle != "" {
		result.PointerSettle = augment.PointerSettle
	}
	if augment.PaintSettle != "" {
		result.PaintSettle = augment.PaintSettle
	}
	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.NoteText.overwriteIfDefined(augment.NoteText)
	result.NoteSelection.overwriteIfDefined(augment.NoteSelection)
	result.NoteCursorLine.overwriteIfDefined(augment.NoteCursorLine)
	result.Status.overwriteIfDefined(augment.Status)
	result.Tools.overwriteIfDefined(augment.Tools)
	result.ToolSelected.overwriteIfDefined(augment.ToolSelected)
	result.ToolToggle.overwriteIfDefined(augment.ToolToggle)
	result.ToolToggleActive.overwriteIfDefined(augment.ToolToggleActive)
	result.ScrollIndicator.overwriteIfDefined(augment.ScrollIndicator)
	result.LogDefault.overwriteIfDefined(augment.LogDefault)
	result.LogTitleBox.overwriteIfDefined(augment.LogTitleBox)
	result.LogEntryTypeError.overwriteIfDefined(augment.LogEntryTypeError)
	result.LogEntryTypeWarn.overwriteIfDefined(augment.LogEntryTypeWarn)
	result.LogEntryTypeInfo.overwriteIfDefined(augment.LogEntryTypeInfo)
	result.LogEntryTypeDebug.overwriteIfDefined(augment.LogEntryTypeDebug)
	result.LogEntryTypeTrace.overwriteIfDefined(augment.LogEntryTypeTrace)
	result.LogEntryLocation.overwriteIfDefined(augment.LogEntryLocation)
	result.LogEntryTime.overwriteIfDefined(augment.LogEntryTime)
	result.Help.overwriteIfDefined(augment.Help)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
