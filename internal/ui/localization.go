package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyDirectDownload    = "direct_download"
	KeyShowFormats       = "show_formats"
	KeyDownloadSelection = "download_selection"
	KeyClear             = "clear"
	KeyStop              = "stop"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyQuit              = "quit"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyThemeDark         = "theme_dark"
	KeyThemeLight        = "theme_light"
	KeyHelp              = "help"
	KeyAbout             = "about"
	KeyAboutText         = "about_text"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeyEnterURL          = "enter_url"
	KeyPleaseEnterURL    = "please_enter_url"
	KeyInvalidURL        = "invalid_url"
	KeyFetchingFormats   = "fetching_formats"
	KeyFetchingTitle     = "fetching_title"
	KeyNoFormats         = "no_formats"
	KeyProbeFailed       = "probe_failed"
	KeyVideoFormats      = "video_formats"
	KeyAudioFormats      = "audio_formats"
	KeyNoSelection       = "no_selection"
	KeyAgeRestricted     = "age_restricted"
	KeyUsedCookies       = "used_cookies"
	KeyStatusIdle        = "status_idle"
	KeyStatusStarting    = "status_starting"
	KeyStatusDownloading = "status_downloading"
	KeyStatusRetrying    = "status_retrying"
	KeyStatusMuxing      = "status_muxing"
	KeyStatusStopping    = "status_stopping"
	KeyStatusStopped     = "status_stopped"
	KeyStatusCompleted   = "status_completed"
	KeyStatusError       = "status_error"
	KeyBusy              = "busy"
	KeyOpenFolder        = "open_folder"
	KeyDownloadDirectory = "download_directory"
	KeyCookieBrowser     = "cookie_browser"
	KeyFormatsLayout     = "formats_layout"
	KeySingleColumn      = "single_column"
	KeyTwoColumns        = "two_columns"
	KeySettingsSaved     = "settings_saved"
	KeyToolsMissing      = "tools_missing"
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
		"es": "Español",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "qt-dlp",
		KeyDirectDownload:    "Direct Download",
		KeyShowFormats:       "Show Formats",
		KeyDownloadSelection: "Download Selection",
		KeyClear:             "Clear",
		KeyStop:              "Cancel",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyQuit:              "Quit",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyThemeDark:         "Dark",
		KeyThemeLight:        "Light",
		KeyHelp:              "Help",
		KeyAbout:             "About",
		KeyAboutText:         "A small desktop frontend for yt-dlp and ffmpeg.",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeyEnterURL:          "Enter video URL (https://...)",
		KeyPleaseEnterURL:    "Please enter a URL",
		KeyInvalidURL:        "Invalid URL",
		KeyFetchingFormats:   "Fetching available formats...",
		KeyFetchingTitle:     "Fetching title...",
		KeyNoFormats:         "No separated formats found",
		KeyProbeFailed:       "Could not read formats",
		KeyVideoFormats:      "Video",
		KeyAudioFormats:      "Audio",
		KeyNoSelection:       "Select a video and/or audio format first",
		KeyAgeRestricted:     "Age-restricted content",
		KeyUsedCookies:       "using browser cookies",
		KeyStatusIdle:        "Ready",
		KeyStatusStarting:    "Starting...",
		KeyStatusDownloading: "Downloading",
		KeyStatusRetrying:    "Retrying with browser cookies...",
		KeyStatusMuxing:      "Joining video and audio...",
		KeyStatusStopping:    "Stopping...",
		KeyStatusStopped:     "Download cancelled",
		KeyStatusCompleted:   "Download completed",
		KeyStatusError:       "Download failed",
		KeyBusy:              "Another download is already running",
		KeyOpenFolder:        "Open Folder",
		KeyDownloadDirectory: "Download Directory",
		KeyCookieBrowser:     "Cookie Browser",
		KeyFormatsLayout:     "Format List Layout",
		KeySingleColumn:      "Single column",
		KeyTwoColumns:        "Two columns",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyToolsMissing:      "Required tools are missing",
	}

	// Spanish texts
	l.texts["es"] = map[string]string{
		KeyAppTitle:          "qt-dlp",
		KeyDirectDownload:    "Descarga directa",
		KeyShowFormats:       "Mostrar formatos",
		KeyDownloadSelection: "Descargar selección",
		KeyClear:             "Limpiar",
		KeyStop:              "Cancelar",
		KeySettings:          "Configuración",
		KeyFile:              "Archivo",
		KeyQuit:              "Salir",
		KeyLanguage:          "Idioma",
		KeyTheme:             "Tema",
		KeyThemeDark:         "Oscuro",
		KeyThemeLight:        "Claro",
		KeyHelp:              "Ayuda",
		KeyAbout:             "Acerca de",
		KeyAboutText:         "Una pequeña interfaz de escritorio para yt-dlp y ffmpeg.",
		KeySave:              "Guardar",
		KeyCancel:            "Cancelar",
		KeyBrowse:            "Examinar",
		KeyEnterURL:          "Introduce la URL del vídeo (https://...)",
		KeyPleaseEnterURL:    "Por favor, introduce una URL",
		KeyInvalidURL:        "URL no válida",
		KeyFetchingFormats:   "Obteniendo formatos disponibles...",
		KeyFetchingTitle:     "Obteniendo título...",
		KeyNoFormats:         "No se encontraron formatos separados",
		KeyProbeFailed:       "No se pudieron leer los formatos",
		KeyVideoFormats:      "Vídeo",
		KeyAudioFormats:      "Audio",
		KeyNoSelection:       "Selecciona primero un formato de vídeo y/o audio",
		KeyAgeRestricted:     "Contenido con restricción de edad",
		KeyUsedCookies:       "usando cookies del navegador",
		KeyStatusIdle:        "Listo",
		KeyStatusStarting:    "Iniciando...",
		KeyStatusDownloading: "Descargando",
		KeyStatusRetrying:    "Reintentando con cookies del navegador...",
		KeyStatusMuxing:      "Uniendo vídeo y audio...",
		KeyStatusStopping:    "Deteniendo...",
		KeyStatusStopped:     "Descarga cancelada",
		KeyStatusCompleted:   "Descarga completada",
		KeyStatusError:       "La descarga falló",
		KeyBusy:              "Ya hay otra descarga en curso",
		KeyOpenFolder:        "Abrir carpeta",
		KeyDownloadDirectory: "Carpeta de descargas",
		KeyCookieBrowser:     "Navegador para cookies",
		KeyFormatsLayout:     "Disposición de la lista de formatos",
		KeySingleColumn:      "Una columna",
		KeyTwoColumns:        "Dos columnas",
		KeySettingsSaved:     "¡Configuración guardada correctamente!",
		KeyToolsMissing:      "Faltan herramientas necesarias",
	}
}
