package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aperricio/qt-dlp/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	browserSelect    *widget.Select
	layoutRadio      *widget.RadioGroup
	downloadDirEntry *widget.Entry

	onSaved func()
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
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
	// Cookie-source browser selection
	browserOptions := []string{}
	for _, browser := range sd.settings.GetBrowserOptions() {
		browserOptions = append(browserOptions, string(browser))
	}
	sd.browserSelect = widget.NewSelect(browserOptions, nil)

	// Format list layout
	sd.layoutRadio = widget.NewRadioGroup([]string{
		sd.localization.GetText(KeySingleColumn),
		sd.localization.GetText(KeyTwoColumns),
	}, nil)

	// Download directory selection
	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder("Download directory path")

	browseDirBtn := widget.NewButton(sd.localization.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyCookieBrowser)+":"),
		sd.browserSelect,

		widget.NewLabel(sd.localization.GetText(KeyFormatsLayout)+":"),
		sd.layoutRadio,

		widget.NewLabel(sd.localization.GetText(KeyDownloadDirectory)+":"),
		downloadDirRow,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogW, SettingsDialogH))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.browserSelect.SetSelected(string(sd.settings.GetPreferredBrowser()))

	if sd.settings.GetFormatsLayout() == config.LayoutSingleColumn {
		sd.layoutRadio.SetSelected(sd.localization.GetText(KeySingleColumn))
	} else {
		sd.layoutRadio.SetSelected(sd.localization.GetText(KeyTwoColumns))
	}

	sd.downloadDirEntry.SetText(sd.settings.GetDownloadDirectory())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if sd.browserSelect.Selected != "" {
		sd.settings.SetPreferredBrowser(config.Browser(sd.browserSelect.Selected))
	}

	if sd.layoutRadio.Selected == sd.localization.GetText(KeySingleColumn) {
		sd.settings.SetFormatsLayout(config.LayoutSingleColumn)
	} else if sd.layoutRadio.Selected != "" {
		sd.settings.SetFormatsLayout(config.LayoutTwoColumns)
	}

	if sd.downloadDirEntry.Text != "" {
		sd.settings.SetDownloadDirectory(sd.downloadDirEntry.Text)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySettingsSaved),
		sd.window,
	)
}
