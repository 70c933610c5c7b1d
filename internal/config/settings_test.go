package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/village-noise/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("ru")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "ru" {
		t.Errorf("Expected language 'ru', got %s", retrievedLang)
	}

	// Unknown language falls back to default
	settings.SetLanguage("xx")
	if settings.GetLanguage() != DefaultLanguage {
		t.Errorf("Unknown language should reset to %s, got %s", DefaultLanguage, settings.GetLanguage())
	}
}

func TestPageChangePolicy(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	policy := settings.GetPageChangePolicy()
	if policy != DefaultPageChangePolicy {
		t.Errorf("Expected default policy %s, got %s", DefaultPageChangePolicy, policy)
	}

	// Test setting custom value
	settings.SetPageChangePolicy(model.PolicyFollow)
	if settings.GetPageChangePolicy() != model.PolicyFollow {
		t.Errorf("Expected policy %s, got %s", model.PolicyFollow, settings.GetPageChangePolicy())
	}

	// Test invalid value normalises to default
	settings.SetPageChangePolicy("shuffle")
	if settings.GetPageChangePolicy() != DefaultPageChangePolicy {
		t.Errorf("Invalid policy should default to %s, got %s", DefaultPageChangePolicy, settings.GetPageChangePolicy())
	}

	// Garbage written directly to preferences is repaired on read
	app.Preferences().SetString(KeyPageChangePolicy, "garbage")
	if settings.GetPageChangePolicy() != DefaultPageChangePolicy {
		t.Errorf("Stored garbage should read as %s", DefaultPageChangePolicy)
	}
	if app.Preferences().String(KeyPageChangePolicy) != string(DefaultPageChangePolicy) {
		t.Error("Reading garbage should write the default back")
	}
}

func TestGetPageChangePolicyOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetPageChangePolicyOptions()
	expected := []model.PageChangePolicy{model.PolicyContinue, model.PolicyStop, model.PolicyFollow}

	if len(options) != len(expected) {
		t.Fatalf("Expected %d policy options, got %d", len(expected), len(options))
	}

	for i, want := range expected {
		if options[i] != want {
			t.Errorf("Policy option %d: expected %s, got %s", i, want, options[i])
		}
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
