package config

import (
	"os"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyContentEndpoint = "content_endpoint"
	KeyProxyEndpoint   = "proxy_endpoint"
	KeyUseProxy        = "use_proxy"
	KeyMusicURL        = "music_url"
	KeyGroundTexture   = "ground_texture_url"
	KeyWallTexture     = "wall_texture_url"
	KeyLanguage        = "language"
)

// Default values
const (
	DefaultContentEndpoint = "https://gallery.microcms.io/api/v1/works"
	DefaultProxyEndpoint   = "http://localhost:8792/api/works"
	DefaultMusicURL        = "assets/bgm.mp3"
	DefaultGroundTexture   = "assets/ground.jpg"
	DefaultWallTexture     = "assets/wall.jpg"
)

// Environment variable carrying the content API key. The key is supplied
// out-of-band; its absence disables photo loading but not the room itself.
const APIKeyEnv = "MICROCMS_API_KEY"

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetContentEndpoint returns the direct content API endpoint
func (s *Settings) GetContentEndpoint() string {
	endpoint := s.app.Preferences().String(KeyContentEndpoint)
	if endpoint == "" {
		s.SetContentEndpoint(DefaultContentEndpoint)
		return DefaultContentEndpoint
	}
	return endpoint
}

// SetContentEndpoint sets the direct content API endpoint
func (s *Settings) SetContentEndpoint(endpoint string) {
	s.app.Preferences().SetString(KeyContentEndpoint, endpoint)
}

// GetProxyEndpoint returns the same-origin proxy endpoint
func (s *Settings) GetProxyEndpoint() string {
	endpoint := s.app.Preferences().String(KeyProxyEndpoint)
	if endpoint == "" {
		s.SetProxyEndpoint(DefaultProxyEndpoint)
		return DefaultProxyEndpoint
	}
	return endpoint
}

// SetProxyEndpoint sets the same-origin proxy endpoint
func (s *Settings) SetProxyEndpoint(endpoint string) {
	s.app.Preferences().SetString(KeyProxyEndpoint, endpoint)
}

// GetUseProxy returns whether fetches go through the proxy instead of
// calling the content API directly with the key header
func (s *Settings) GetUseProxy() bool {
	return s.app.Preferences().Bool(KeyUseProxy)
}

// SetUseProxy sets whether fetches go through the proxy
func (s *Settings) SetUseProxy(useProxy bool) {
	s.app.Preferences().SetBool(KeyUseProxy, useProxy)
}

// GetMusicURL returns the background music location
func (s *Settings) GetMusicURL() string {
	url := s.app.Preferences().String(KeyMusicURL)
	if url == "" {
		s.SetMusicURL(DefaultMusicURL)
		return DefaultMusicURL
	}
	return url
}

// SetMusicURL sets the background music location
func (s *Settings) SetMusicURL(url string) {
	s.app.Preferences().SetString(KeyMusicURL, url)
}

// GetGroundTexture returns the floor texture location
func (s *Settings) GetGroundTexture() string {
	url := s.app.Preferences().String(KeyGroundTexture)
	if url == "" {
		s.SetGroundTexture(DefaultGroundTexture)
		return DefaultGroundTexture
	}
	return url
}

// SetGroundTexture sets the floor texture location
func (s *Settings) SetGroundTexture(url string) {
	s.app.Preferences().SetString(KeyGroundTexture, url)
}

// GetWallTexture returns the wall texture location
func (s *Settings) GetWallTexture() string {
	url := s.app.Preferences().String(KeyWallTexture)
	if url == "" {
		s.SetWallTexture(DefaultWallTexture)
		return DefaultWallTexture
	}
	return url
}

// SetWallTexture sets the wall texture location
func (s *Settings) SetWallTexture(url string) {
	s.app.Preferences().SetString(KeyWallTexture, url)
}

// GetLanguage returns the UI language code ("en", "ja" or "system")
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return "system"
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// APIKey returns the content API key from the environment, or an empty
// string when it is not configured.
func (s *Settings) APIKey() string {
	return os.Getenv(APIKeyEnv)
}
