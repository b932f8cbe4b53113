package experience

import (
	"strings"
	"testing"
)

// TestBuildPromptModes verifies the two verbosity modes produce different
// instructions and different token budgets for the same mood.
func TestBuildPromptModes(t *testing.T) {
	shortSys, shortUser, shortTokens := BuildPrompt("rainy", nil, false)
	longSys, longUser, longTokens := BuildPrompt("rainy", nil, true)

	if shortSys == longSys {
		t.Error("expected differently worded instructions per mode")
	}
	if shortTokens >= longTokens {
		t.Errorf("short budget %d should be below long budget %d", shortTokens, longTokens)
	}
	if shortUser != longUser {
		t.Errorf("user prompt should not depend on mode: %q vs %q", shortUser, longUser)
	}
	if !strings.Contains(longSys, "at least seven ingredients") {
		t.Error("long mode missing recipe richness instruction")
	}
	if !strings.Contains(shortSys, "three sentences") {
		t.Error("short mode missing brevity instruction")
	}
}

// TestBuildPromptSchema checks the system prompt pins all seven keys so the
// model knows the exact shape to emit.
func TestBuildPromptSchema(t *testing.T) {
	system, _, _ := BuildPrompt("calm", nil, false)
	for _, key := range sectionOrder {
		if !strings.Contains(system, `"`+key+`"`) {
			t.Errorf("system prompt does not mention %q", key)
		}
	}
}

func TestBuildPromptIngredients(t *testing.T) {
	_, user, _ := BuildPrompt("cozy", []string{"leeks", "thyme"}, false)
	if !strings.Contains(user, "leeks, thyme") {
		t.Errorf("ingredients not embedded: %q", user)
	}
	if !strings.Contains(user, "Mood: cozy") {
		t.Errorf("mood not embedded: %q", user)
	}

	_, user, _ = BuildPrompt("cozy", nil, false)
	if strings.Contains(user, "ingredients") {
		t.Errorf("unexpected ingredients clause: %q", user)
	}
}

func TestDescriptionPrompt(t *testing.T) {
	system, user, maxTokens := DescriptionPrompt("wistful")
	if system == "" || !strings.Contains(user, "wistful") {
		t.Errorf("unexpected prompts %q %q", system, user)
	}
	if maxTokens <= 0 || maxTokens >= shortModeMaxTokens {
		t.Errorf("blurb budget %d should be small", maxTokens)
	}
}
