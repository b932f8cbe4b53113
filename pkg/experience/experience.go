// Package experience defines the vibe card bundle returned to clients and
// the assembler that builds it from the completion and catalog providers.
//
// An Experience always carries all seven sections. The model's output is
// validated deeply before it leaves this package: a missing section or a
// malformed leaf field fails the whole request rather than crashing a
// renderer downstream.
package experience

import "encoding/json"

// Playlist is the music section. URL is null until catalog enrichment finds
// a real playlist; Images and Owner are only set by enrichment.
type Playlist struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Genre       string   `json:"genre"`
	Theme       string   `json:"theme"`
	URL         *string  `json:"url"`
	Images      []string `json:"images,omitempty"`
	Owner       string   `json:"owner,omitempty"`
}

// Recipe is the food section. Instructions is free text and may contain
// embedded step breaks.
type Recipe struct {
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
}

// Movie is the film suggestion section.
type Movie struct {
	Title       string `json:"title"`
	Year        int    `json:"year"`
	Description string `json:"description"`
	Genre       string `json:"genre"`
	Platform    string `json:"platform"`
}

// PaletteColor is a single named color in the palette.
type PaletteColor struct {
	Name     string `json:"name"`
	HexColor string `json:"hexColor"`
}

// ColorPalette is the color scheme section.
type ColorPalette struct {
	Name        string         `json:"name"`
	Colors      []PaletteColor `json:"colors"`
	Description string         `json:"description,omitempty"`
}

// Meditation is the guided meditation section. Duration is a free-form
// label such as "5 minutes".
type Meditation struct {
	Prompt   string `json:"prompt"`
	Duration string `json:"duration"`
}

// Outfit is the clothing suggestion section.
type Outfit struct {
	Description string   `json:"description"`
	Season      string   `json:"season"`
	Style       string   `json:"style"`
	Colors      []string `json:"colors"`
}

// Writing is the micro-writing section.
type Writing struct {
	Snippet string `json:"snippet"`
	Theme   string `json:"theme"`
}

// Experience is the full seven-section bundle. It is constructed fresh per
// request and never mutated after being returned.
type Experience struct {
	Playlist     Playlist     `json:"playlist"`
	Recipe       Recipe       `json:"recipe"`
	Movie        Movie        `json:"movie"`
	ColorPalette ColorPalette `json:"colorPalette"`
	Meditation   Meditation   `json:"meditation"`
	Outfit       Outfit       `json:"outfit"`
	Writing      Writing      `json:"writing"`
}

// sectionOrder fixes the required top-level keys and the order in which
// presence is checked, so the first missing section is reported
// deterministically.
var sectionOrder = []string{
	"playlist",
	"recipe",
	"movie",
	"colorPalette",
	"meditation",
	"outfit",
	"writing",
}

// Parse interprets raw model output as an Experience. The text must be a
// single JSON object containing all seven sections; anything else is a
// *GenerationError (not JSON, wrong shape) or *SchemaError (missing or
// invalid section). No repair of malformed output is attempted.
func Parse(raw string) (*Experience, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &sections); err != nil {
		return nil, &GenerationError{Reason: "model output is not a JSON object", Err: err}
	}
	for _, key := range sectionOrder {
		v, ok := sections[key]
		if !ok || string(v) == "null" {
			return nil, &SchemaError{Section: key}
		}
	}
	var exp Experience
	if err := json.Unmarshal([]byte(raw), &exp); err != nil {
		return nil, &GenerationError{Reason: "model output does not match the card schema", Err: err}
	}
	if err := exp.validate(); err != nil {
		return nil, err
	}
	return &exp, nil
}

// validate performs the deep leaf-field checks. Top-level key presence has
// already been established by Parse.
func (e *Experience) validate() error {
	if e.Playlist.Name == "" {
		return &SchemaError{Section: "playlist", Field: "name"}
	}
	if e.Recipe.Title == "" {
		return &SchemaError{Section: "recipe", Field: "title"}
	}
	if len(e.Recipe.Ingredients) == 0 {
		return &SchemaError{Section: "recipe", Field: "ingredients"}
	}
	if e.Recipe.Instructions == "" {
		return &SchemaError{Section: "recipe", Field: "instructions"}
	}
	if e.Movie.Title == "" {
		return &SchemaError{Section: "movie", Field: "title"}
	}
	if e.Movie.Description == "" {
		return &SchemaError{Section: "movie", Field: "description"}
	}
	if len(e.ColorPalette.Colors) == 0 {
		return &SchemaError{Section: "colorPalette", Field: "colors"}
	}
	for _, c := range e.ColorPalette.Colors {
		if c.Name == "" || c.HexColor == "" {
			return &SchemaError{Section: "colorPalette", Field: "colors"}
		}
	}
	if e.Meditation.Prompt == "" {
		return &SchemaError{Section: "meditation", Field: "prompt"}
	}
	if e.Meditation.Duration == "" {
		return &SchemaError{Section: "meditation", Field: "duration"}
	}
	if e.Outfit.Description == "" {
		return &SchemaError{Section: "outfit", Field: "description"}
	}
	if e.Writing.Snippet == "" {
		return &SchemaError{Section: "writing", Field: "snippet"}
	}
	return nil
}
