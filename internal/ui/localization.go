package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyPrevPage       = "prev_page"
	KeyNextPage       = "next_page"
	KeyMusic          = "music"
	KeyEnterVR        = "enter_vr"
	KeyExitVR         = "exit_vr"
	KeySettings       = "settings"
	KeyLanguage       = "language"
	KeyContentAPI     = "content_api"
	KeyProxyAPI       = "proxy_api"
	KeyUseProxy       = "use_proxy"
	KeyMusicFile      = "music_file"
	KeyGroundTexture  = "ground_texture"
	KeyWallTexture    = "wall_texture"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
	KeyLoading        = "loading"
	KeyFetchFailed    = "fetch_failed"
	KeyAudioBackend   = "audio_backend"
	KeyAudioDisabled  = "audio_disabled"
	KeyTransitionBusy = "transition_busy"
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
		"ja": "日本語",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "Gallery Room",
		KeyPrevPage:       "Previous",
		KeyNextPage:       "Next",
		KeyMusic:          "Music",
		KeyEnterVR:        "Enter VR",
		KeyExitVR:         "Exit VR",
		KeySettings:       "Settings",
		KeyLanguage:       "Language",
		KeyContentAPI:     "Content API",
		KeyProxyAPI:       "Proxy API",
		KeyUseProxy:       "Use proxy",
		KeyMusicFile:      "Music File",
		KeyGroundTexture:  "Ground Texture",
		KeyWallTexture:    "Wall Texture",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved successfully!",
		KeyLoading:        "Loading",
		KeyFetchFailed:    "Could not load the page",
		KeyAudioBackend:   "Audio",
		KeyAudioDisabled:  "Audio disabled",
		KeyTransitionBusy: "Turning the page...",
	}

	// Japanese texts
	l.texts["ja"] = map[string]string{
		KeyAppTitle:       "ギャラリールーム",
		KeyPrevPage:       "前へ",
		KeyNextPage:       "次へ",
		KeyMusic:          "音楽",
		KeyEnterVR:        "VRに入る",
		KeyExitVR:         "VRを終了",
		KeySettings:       "設定",
		KeyLanguage:       "言語",
		KeyContentAPI:     "コンテンツAPI",
		KeyProxyAPI:       "プロキシAPI",
		KeyUseProxy:       "プロキシを使用",
		KeyMusicFile:      "音楽ファイル",
		KeyGroundTexture:  "床テクスチャ",
		KeyWallTexture:    "壁テクスチャ",
		KeySave:           "保存",
		KeyCancel:         "キャンセル",
		KeySettingsSaved:  "設定を保存しました！",
		KeyLoading:        "読み込み中",
		KeyFetchFailed:    "ページを読み込めませんでした",
		KeyAudioBackend:   "オーディオ",
		KeyAudioDisabled:  "オーディオ無効",
		KeyTransitionBusy: "ページをめくっています...",
	}
}
