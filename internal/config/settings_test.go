package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestPreferredBrowser(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	browser := settings.GetPreferredBrowser()
	if browser != DefaultBrowser {
		t.Errorf("Expected default browser %s, got %s", DefaultBrowser, browser)
	}

	// Test setting custom value
	settings.SetPreferredBrowser(BrowserChrome)
	if got := settings.GetPreferredBrowser(); got != BrowserChrome {
		t.Errorf("Expected browser %s, got %s", BrowserChrome, got)
	}

	// Unknown browser names are rejected
	settings.SetPreferredBrowser(Browser("netscape"))
	if got := settings.GetPreferredBrowser(); got != BrowserChrome {
		t.Errorf("Unknown browser should not be stored, got %s", got)
	}

	// None is a valid choice
	settings.SetPreferredBrowser(BrowserNone)
	if got := settings.GetPreferredBrowser(); got != BrowserNone {
		t.Errorf("Expected browser %s, got %s", BrowserNone, got)
	}
}

func TestBrowserOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetBrowserOptions()
	if len(options) == 0 {
		t.Fatal("Browser options should not be empty")
	}
	if options[len(options)-1] != BrowserNone {
		t.Error("Browser options should end with none")
	}
}

func TestFormatsLayout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	layout := settings.GetFormatsLayout()
	if layout != DefaultFormatsLayout {
		t.Errorf("Expected default layout %s, got %s", DefaultFormatsLayout, layout)
	}

	// Test setting custom value
	settings.SetFormatsLayout(LayoutSingleColumn)
	if got := settings.GetFormatsLayout(); got != LayoutSingleColumn {
		t.Errorf("Expected layout %s, got %s", LayoutSingleColumn, got)
	}

	// Garbage in preferences falls back to default
	app.Preferences().SetString(KeyFormatsLayout, "three_columns")
	if got := settings.GetFormatsLayout(); got != DefaultFormatsLayout {
		t.Errorf("Invalid stored layout should fall back to %s, got %s", DefaultFormatsLayout, got)
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetDownloadDirectory()
	if dir == "" {
		t.Error("Download directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/downloads"
	settings.SetDownloadDirectory(customDir)

	retrievedDir := settings.GetDownloadDirectory()
	if retrievedDir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, retrievedDir)
	}
}

func TestTheme(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if got := settings.GetTheme(); got != DefaultTheme {
		t.Errorf("Expected default theme %s, got %s", DefaultTheme, got)
	}

	settings.SetTheme(ThemeLight)
	if got := settings.GetTheme(); got != ThemeLight {
		t.Errorf("Expected theme %s, got %s", ThemeLight, got)
	}

	app.Preferences().SetString(KeyTheme, "solarized")
	if got := settings.GetTheme(); got != DefaultTheme {
		t.Errorf("Invalid stored theme should fall back to %s, got %s", DefaultTheme, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetLanguage(); got != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, got)
	}

	settings.SetLanguage("es")
	if got := settings.GetLanguage(); got != "es" {
		t.Errorf("Expected language es, got %s", got)
	}
}
