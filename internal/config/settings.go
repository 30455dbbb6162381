package config

import (
	"fyne.io/fyne/v2"

	"github.com/aperricio/qt-dlp/internal/platform"
)

// Browser identifies the cookie source used for the cookie fallback.
// BrowserNone disables the fallback entirely.
type Browser string

const (
	BrowserFirefox   Browser = "firefox"
	BrowserChrome    Browser = "chrome"
	BrowserChromium  Browser = "chromium"
	BrowserEdge      Browser = "edge"
	BrowserBrave     Browser = "brave"
	BrowserOpera     Browser = "opera"
	BrowserVivaldi   Browser = "vivaldi"
	BrowserLibrewolf Browser = "librewolf"
	BrowserNone      Browser = "none"
)

// FormatsLayout selects how the format listing is arranged in the window.
type FormatsLayout string

const (
	LayoutSingleColumn FormatsLayout = "single_column"
	LayoutTwoColumns   FormatsLayout = "two_columns"
)

// Theme variants
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Settings keys for Fyne preferences
const (
	KeyPreferredBrowser = "preferred_browser"
	KeyFormatsLayout    = "formats_layout"
	KeyDownloadDir      = "download_directory"
	KeyTheme            = "app_theme"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultBrowser       = BrowserFirefox
	DefaultFormatsLayout = LayoutTwoColumns
	DefaultTheme         = ThemeDark
	DefaultLanguage      = "en"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetPreferredBrowser returns the configured cookie-source browser
func (s *Settings) GetPreferredBrowser() Browser {
	browser := s.app.Preferences().String(KeyPreferredBrowser)
	if browser == "" {
		s.SetPreferredBrowser(DefaultBrowser)
		return DefaultBrowser
	}
	return Browser(browser)
}

// SetPreferredBrowser sets the cookie-source browser. Unknown names are
// ignored so a stale preference cannot produce an invalid yt-dlp flag.
func (s *Settings) SetPreferredBrowser(browser Browser) {
	for _, known := range s.GetBrowserOptions() {
		if browser == known {
			s.app.Preferences().SetString(KeyPreferredBrowser, string(browser))
			return
		}
	}
}

// GetBrowserOptions returns the enumerated cookie-source choices
func (s *Settings) GetBrowserOptions() []Browser {
	return []Browser{
		BrowserFirefox, BrowserChrome, BrowserChromium, BrowserEdge,
		BrowserBrave, BrowserOpera, BrowserVivaldi, BrowserLibrewolf,
		BrowserNone,
	}
}

// GetFormatsLayout returns the configured format listing layout
func (s *Settings) GetFormatsLayout() FormatsLayout {
	layout := s.app.Preferences().String(KeyFormatsLayout)
	if layout != string(LayoutSingleColumn) && layout != string(LayoutTwoColumns) {
		s.SetFormatsLayout(DefaultFormatsLayout)
		return DefaultFormatsLayout
	}
	return FormatsLayout(layout)
}

// SetFormatsLayout sets the format listing layout
func (s *Settings) SetFormatsLayout(layout FormatsLayout) {
	s.app.Preferences().SetString(KeyFormatsLayout, string(layout))
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = "/tmp/downloads"
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetTheme returns the configured theme variant
func (s *Settings) GetTheme() string {
	theme := s.app.Preferences().String(KeyTheme)
	if theme != ThemeDark && theme != ThemeLight {
		s.SetTheme(DefaultTheme)
		return DefaultTheme
	}
	return theme
}

// SetTheme sets the theme variant
func (s *Settings) SetTheme(theme string) {
	s.app.Preferences().SetString(KeyTheme, theme)
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
	s.app.Preferences().SetString(KeyLanguage, lang)
}
