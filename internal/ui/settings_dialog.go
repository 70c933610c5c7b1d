package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/village-noise/internal/config"
	"github.com/ytget/village-noise/internal/model"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	languageSelect *widget.Select
	policySelect   *widget.Select

	// Display label <-> stored value
	languageCodes map[string]string
	policyValues  map[string]model.PageChangePolicy
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Language selection, sorted by display name
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Page change policy, in settings order
	sd.policyValues = make(map[string]model.PageChangePolicy)
	policyOptions := []string{}
	for _, policy := range sd.settings.GetPageChangePolicyOptions() {
		label := l.GetText(policyTextKey(policy))
		sd.policyValues[label] = policy
		policyOptions = append(policyOptions, label)
	}
	sd.policySelect = widget.NewSelect(policyOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyPlaybackSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyPageChange)+":"),
		sd.policySelect,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(400, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	lang := sd.settings.GetLanguage()
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[lang])
	sd.policySelect.SetSelected(sd.localization.GetText(policyTextKey(sd.settings.GetPageChangePolicy())))
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if policy, ok := sd.policyValues[sd.policySelect.Selected]; ok {
		sd.settings.SetPageChangePolicy(policy)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// policyTextKey returns the localization key describing a policy
func policyTextKey(policy model.PageChangePolicy) string {
	switch policy {
	case model.PolicyStop:
		return KeyPolicyStop
	case model.PolicyFollow:
		return KeyPolicyFollow
	default:
		return KeyPolicyContinue
	}
}
