package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyStart             = "start"
	KeyStop              = "stop"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyPageChange        = "page_change"
	KeyPolicyContinue    = "policy_continue"
	KeyPolicyStop        = "policy_stop"
	KeyPolicyFollow      = "policy_follow"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeySoundNotFound     = "sound_not_found"
	KeyPlaybackFailed    = "playback_failed"
	KeyInterfaceSettings = "interface_settings"
	KeyPlaybackSettings  = "playback_settings"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "VillageNoise",
		KeyStart:             "Start",
		KeyStop:              "Stop",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyPageChange:        "When the page changes while playing",
		KeyPolicyContinue:    "Keep playing",
		KeyPolicyStop:        "Stop",
		KeyPolicyFollow:      "Play the new page",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeySoundNotFound:     "Sound file not found",
		KeyPlaybackFailed:    "Could not play sound",
		KeyInterfaceSettings: "Interface Settings",
		KeyPlaybackSettings:  "Playback Settings",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "VillageNoise",
		KeyStart:             "Старт",
		KeyStop:              "Стоп",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyPageChange:        "При смене страницы во время звучания",
		KeyPolicyContinue:    "Продолжать",
		KeyPolicyStop:        "Остановить",
		KeyPolicyFollow:      "Играть новую страницу",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeySoundNotFound:     "Звуковой файл не найден",
		KeyPlaybackFailed:    "Не удалось воспроизвести звук",
		KeyInterfaceSettings: "Интерфейс",
		KeyPlaybackSettings:  "Воспроизведение",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "VillageNoise",
		KeyStart:             "Iniciar",
		KeyStop:              "Parar",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyPageChange:        "Ao mudar de página durante a reprodução",
		KeyPolicyContinue:    "Continuar tocando",
		KeyPolicyStop:        "Parar",
		KeyPolicyFollow:      "Tocar a nova página",
		KeySave:              "Salvar",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeySoundNotFound:     "Arquivo de som não encontrado",
		KeyPlaybackFailed:    "Não foi possível tocar o som",
		KeyInterfaceSettings: "Configurações de Interface",
		KeyPlaybackSettings:  "Configurações de Reprodução",
	}
}
