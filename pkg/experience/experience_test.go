package experience

import (
	"errors"
	"strings"
	"testing"
)

const validPayload = `{
  "playlist": {"name": "Rainy Day Indie", "description": "Soft guitars", "genre": "indie", "theme": "cozy", "url": null},
  "recipe": {"title": "Tomato Soup", "ingredients": ["tomatoes", "basil"], "instructions": "Simmer and blend."},
  "movie": {"title": "Amelie", "year": 2001, "description": "A whimsical tale.", "genre": "comedy", "platform": "Netflix"},
  "colorPalette": {"name": "Dusk", "colors": [{"name": "slate", "hexColor": "#708090"}], "description": "muted"},
  "meditation": {"prompt": "Breathe in slowly.", "duration": "5 minutes"},
  "outfit": {"description": "Chunky knit sweater", "season": "fall", "style": "casual", "colors": ["cream"]},
  "writing": {"snippet": "The rain kept time.", "theme": "stillness"}
}`

func TestParseValid(t *testing.T) {
	exp, err := Parse(validPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.Playlist.Name != "Rainy Day Indie" {
		t.Errorf("playlist name = %q", exp.Playlist.Name)
	}
	if exp.Playlist.URL != nil {
		t.Errorf("expected nil url before enrichment, got %v", *exp.Playlist.URL)
	}
	if exp.Movie.Year != 2001 {
		t.Errorf("movie year = %d", exp.Movie.Year)
	}
	if len(exp.ColorPalette.Colors) != 1 || exp.ColorPalette.Colors[0].HexColor != "#708090" {
		t.Errorf("unexpected palette: %+v", exp.ColorPalette)
	}
}

func TestParseNotJSON(t *testing.T) {
	_, err := Parse("sorry, I cannot do that")
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
}

// TestParseMissingSection removes each required key in turn and verifies the
// resulting error names exactly that section.
func TestParseMissingSection(t *testing.T) {
	for _, section := range sectionOrder {
		payload := strings.Replace(validPayload, `"`+section+`"`, `"x-`+section+`"`, 1)
		_, err := Parse(payload)
		var schemaErr *SchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatalf("%s: expected SchemaError, got %v", section, err)
		}
		if schemaErr.Section != section || schemaErr.Field != "" {
			t.Errorf("%s: wrong error %+v", section, schemaErr)
		}
		if !strings.Contains(err.Error(), section) {
			t.Errorf("%s: message does not name section: %s", section, err)
		}
	}
}

func TestParseNullSection(t *testing.T) {
	payload := strings.Replace(validPayload, `"meditation": {"prompt": "Breathe in slowly.", "duration": "5 minutes"}`, `"meditation": null`, 1)
	_, err := Parse(payload)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Section != "meditation" {
		t.Fatalf("expected meditation SchemaError, got %v", err)
	}
}

func TestParseEmptyColors(t *testing.T) {
	payload := strings.Replace(validPayload, `[{"name": "slate", "hexColor": "#708090"}]`, `[]`, 1)
	_, err := Parse(payload)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Section != "colorPalette" || schemaErr.Field != "colors" {
		t.Errorf("wrong error %+v", schemaErr)
	}
}

func TestParseColorMissingHex(t *testing.T) {
	payload := strings.Replace(validPayload, `"hexColor": "#708090"`, `"hexColor": ""`, 1)
	_, err := Parse(payload)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) || schemaErr.Section != "colorPalette" {
		t.Fatalf("expected colorPalette SchemaError, got %v", err)
	}
}

func TestParseEmptyIngredients(t *testing.T) {
	payload := strings.Replace(validPayload, `["tomatoes", "basil"]`, `[]`, 1)
	_, err := Parse(payload)
	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected SchemaError, got %v", err)
	}
	if schemaErr.Section != "recipe" || schemaErr.Field != "ingredients" {
		t.Errorf("wrong error %+v", schemaErr)
	}
}
