package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/village-noise/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyLanguage         = "app_language"
	KeyPageChangePolicy = "page_change_policy"
)

// Default values
const (
	DefaultLanguage         = "system"
	DefaultPageChangePolicy = model.PolicyContinue
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetPageChangePolicy returns what playback does when the page changes
func (s *Settings) GetPageChangePolicy() model.PageChangePolicy {
	policy := model.PageChangePolicy(s.app.Preferences().String(KeyPageChangePolicy))
	if !policy.IsValid() {
		s.SetPageChangePolicy(DefaultPageChangePolicy)
		return DefaultPageChangePolicy
	}
	return policy
}

// SetPageChangePolicy sets the page change policy
func (s *Settings) SetPageChangePolicy(policy model.PageChangePolicy) {
	if !policy.IsValid() {
		policy = DefaultPageChangePolicy
	}
	s.app.Preferences().SetString(KeyPageChangePolicy, string(policy))
}

// GetPageChangePolicyOptions returns available page change policies
func (s *Settings) GetPageChangePolicyOptions() []model.PageChangePolicy {
	return []model.PageChangePolicy{model.PolicyContinue, model.PolicyStop, model.PolicyFollow}
}
