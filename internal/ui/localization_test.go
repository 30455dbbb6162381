package ui

import "testing"

func TestLocalizationFallbacks(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("default language = %q, expected en", l.GetCurrentLanguage())
	}

	l.SetLanguage("es")
	if got := l.GetText(KeyDirectDownload); got != "Descarga directa" {
		t.Errorf("es direct download = %q", got)
	}

	// Unknown language is ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "es" {
		t.Errorf("language changed to unknown code: %q", l.GetCurrentLanguage())
	}

	// Unknown key falls back to the key itself
	if got := l.GetText("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key fallback = %q", got)
	}
}

func TestLocalizationCoverage(t *testing.T) {
	l := NewLocalization()

	keys := []string{
		KeyAppTitle, KeyDirectDownload, KeyShowFormats, KeyDownloadSelection,
		KeyStop, KeySettings, KeyEnterURL, KeyFetchingFormats, KeyNoFormats,
		KeyAgeRestricted, KeyStatusRetrying, KeyStatusMuxing, KeyStatusCompleted,
		KeyBusy, KeyCookieBrowser, KeyFormatsLayout,
	}

	for lang := range l.GetAvailableLanguages() {
		l.SetLanguage(lang)
		for _, key := range keys {
			if got := l.GetText(key); got == key || got == "" {
				t.Errorf("language %s missing translation for %s", lang, key)
			}
		}
	}
}

func TestValidateURL(t *testing.T) {
	ui := &RootUI{}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty is allowed", input: "", wantErr: false},
		{name: "https", input: "https://example.com/watch?v=abc", wantErr: false},
		{name: "http", input: "http://example.com/v", wantErr: false},
		{name: "no scheme", input: "example.com/v", wantErr: true},
		{name: "ftp scheme", input: "ftp://example.com/v", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ui.validateURL(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateURL(%q) error = %v, wantErr %t", tt.input, err, tt.wantErr)
			}
		})
	}
}
