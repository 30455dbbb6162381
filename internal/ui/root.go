package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/aperricio/qt-dlp/internal/config"
	"github.com/aperricio/qt-dlp/internal/model"
	"github.com/aperricio/qt-dlp/internal/platform"
	"github.com/aperricio/qt-dlp/internal/ytdlp"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	downloadSvc  ytdlp.Downloader
	prober       ytdlp.FormatProber

	urlEntry     *widget.Entry
	directBtn    *widget.Button
	formatsBtn   *widget.Button
	selectionBtn *widget.Button
	stopBtn      *widget.Button
	contentInfo  *widget.Label
	statusLabel  *widget.Label
	formatsPanel *FormatsPanel

	// Probe bookkeeping; at most one probe runs at a time
	probeMutex  sync.Mutex
	probeCancel context.CancelFunc

	lastTitle string

	// UI update debouncing for progress lines
	lastUIUpdate  time.Time
	uiUpdateMutex sync.Mutex
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, downloadSvc ytdlp.Downloader, prober ytdlp.FormatProber) *RootUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Printf("Failed to create downloads directory %s: %v", downloadsDir, err)
	}
	downloadSvc.SetDownloadDirectory(downloadsDir)

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		downloadSvc:  downloadSvc,
		prober:       prober,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.downloadSvc.SetUpdateCallback(ui.onTaskUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.Validator = ui.validateURL
	// Enter in the URL field fetches the format listing
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onShowFormats()
	}

	ui.directBtn = widget.NewButton(ui.localization.GetText(KeyDirectDownload), ui.onDirectDownload)
	ui.formatsBtn = widget.NewButton(ui.localization.GetText(KeyShowFormats), ui.onShowFormats)
	clearBtn := widget.NewButton(ui.localization.GetText(KeyClear), ui.onClear)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil, settingsBtn,
		container.NewHBox(ui.formatsBtn, ui.directBtn, clearBtn), ui.urlEntry)

	// Content info line: probed title plus the age marker
	ui.contentInfo = widget.NewLabel("")
	ui.contentInfo.Truncation = fyne.TextTruncateEllipsis

	topCombined := container.NewVBox(topPanel, ui.contentInfo)

	// Format listing with the dispatch button below it
	ui.formatsPanel = NewFormatsPanel(ui.localization)
	ui.selectionBtn = widget.NewButton(ui.localization.GetText(KeyDownloadSelection), ui.onDownloadSelection)
	ui.selectionBtn.Importance = widget.HighImportance
	ui.selectionBtn.Hide()

	center := container.NewBorder(nil, ui.selectionBtn, nil, nil, ui.formatsPanel.Container())

	// Status line with the cancel button
	ui.statusLabel = widget.NewLabel(ui.localization.GetText(KeyStatusIdle))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.stopBtn = widget.NewButton(IconStop+" "+ui.localization.GetText(KeyStop), ui.onStop)
	ui.stopBtn.Hide()

	bottom := container.NewBorder(nil, nil, nil, ui.stopBtn, ui.statusLabel)

	content := container.NewBorder(
		topCombined, // top
		bottom,      // bottom
		nil,         // left
		nil,         // right
		center,      // center
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Theme submenu with checkmark on the active variant
	themeMenu := fyne.NewMenu(ui.localization.GetText(KeyTheme))
	currentTheme := ui.settings.GetTheme()
	for _, variant := range []string{config.ThemeDark, config.ThemeLight} {
		v := variant // Capture for closure
		key := KeyThemeDark
		if v == config.ThemeLight {
			key = KeyThemeLight
		}
		item := fyne.NewMenuItem(ui.localization.GetText(key), func() {
			ui.onThemeChange(v)
		})
		if currentTheme == v {
			item.Checked = true
		}
		themeMenu.Items = append(themeMenu.Items, item)
	}

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	aboutItem := fyne.NewMenuItem(ui.localization.GetText(KeyAbout), func() {
		dialog.ShowInformation(
			ui.localization.GetText(KeyAppTitle),
			ui.localization.GetText(KeyAboutText),
			ui.window,
		)
	})

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		themeMenu,
		languageMenu,
		fyne.NewMenu(ui.localization.GetText(KeyHelp), aboutItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// onThemeChange switches the theme variant and persists it
func (ui *RootUI) onThemeChange(variant string) {
	ui.settings.SetTheme(variant)
	ui.app.Settings().SetTheme(NewAppTheme(variant))
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.directBtn.SetText(ui.localization.GetText(KeyDirectDownload))
	ui.formatsBtn.SetText(ui.localization.GetText(KeyShowFormats))
	ui.selectionBtn.SetText(ui.localization.GetText(KeyDownloadSelection))
	ui.stopBtn.SetText(IconStop + " " + ui.localization.GetText(KeyStop))
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // Empty is allowed
	}

	parsedURL, err := url.Parse(input)
	if err != nil {
		return err
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}

	return nil
}

// currentURL validates and normalizes the entered URL, reporting problems in
// the status line. Returns "" when there is nothing to work with.
func (ui *RootUI) currentURL() string {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		ui.statusLabel.SetText(ui.localization.GetText(KeyPleaseEnterURL))
		return ""
	}
	if err := ui.validateURL(urlText); err != nil {
		ui.statusLabel.SetText(ui.localization.GetText(KeyInvalidURL) + ": " + err.Error())
		return ""
	}

	cleanURL := strings.ReplaceAll(urlText, "\n", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\r", "")
	cleanURL = strings.ReplaceAll(cleanURL, "\t", " ")
	return strings.TrimSpace(cleanURL)
}

// onShowFormats probes the URL and fills the format listing
func (ui *RootUI) onShowFormats() {
	cleanURL := ui.currentURL()
	if cleanURL == "" {
		return
	}

	ui.probeMutex.Lock()
	if ui.probeCancel != nil {
		ui.probeMutex.Unlock()
		return // probe already running
	}
	ctx, cancel := context.WithCancel(context.Background())
	ui.probeCancel = cancel
	ui.probeMutex.Unlock()

	browser := ui.settings.GetPreferredBrowser()
	layout := ui.settings.GetFormatsLayout()

	ui.statusLabel.SetText(ui.localization.GetText(KeyFetchingFormats))
	ui.formatsBtn.Disable()

	log.Printf("Probing formats for URL: %s", cleanURL)

	go func() {
		result, usedCookies, err := ui.prober.ProbeFormats(ctx, cleanURL, string(browser))

		ui.probeMutex.Lock()
		ui.probeCancel = nil
		ui.probeMutex.Unlock()

		fyne.Do(func() {
			ui.formatsBtn.Enable()

			if err != nil {
				if ctx.Err() != nil {
					ui.statusLabel.SetText(ui.localization.GetText(KeyStatusStopped))
					return
				}
				log.Printf("Format probe failed: %v", err)
				ui.statusLabel.SetText(ui.localization.GetText(KeyProbeFailed))
				dialog.ShowError(err, ui.window)
				return
			}

			ui.lastTitle = result.Title
			ui.contentInfo.SetText(ui.contentInfoText(result, usedCookies))

			if !result.HasFormats() {
				ui.statusLabel.SetText(ui.localization.GetText(KeyNoFormats))
				ui.selectionBtn.Hide()
				return
			}

			ui.formatsPanel.SetResult(result, layout)
			ui.selectionBtn.Show()
			ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))
		})
	}()
}

// contentInfoText builds the title line shown above the format listing
func (ui *RootUI) contentInfoText(result *model.ProbeResult, usedCookies bool) string {
	info := result.Title
	if result.RequiresCookie {
		info += MiddleDotSeparator + IconAgeMark + " " + ui.localization.GetText(KeyAgeRestricted)
	}
	if usedCookies {
		info += " (" + ui.localization.GetText(KeyUsedCookies) + ")"
	}
	return info
}

// onDirectDownload starts a download without a format selection
func (ui *RootUI) onDirectDownload() {
	cleanURL := ui.currentURL()
	if cleanURL == "" {
		return
	}

	ui.statusLabel.SetText(ui.localization.GetText(KeyFetchingTitle))

	// Best effort title fetch before the pipeline starts, for the output
	// name and completion dialog
	go func() {
		title, err := ui.prober.ProbeTitle(context.Background(), cleanURL)
		if err != nil {
			log.Printf("Title probe failed for %s: %v", cleanURL, err)
		}
		fyne.Do(func() {
			ui.lastTitle = title
			ui.startDownload(cleanURL, model.Selection{})
		})
	}()
}

// onDownloadSelection starts a download for the chosen formats
func (ui *RootUI) onDownloadSelection() {
	cleanURL := ui.currentURL()
	if cleanURL == "" {
		return
	}

	sel := ui.formatsPanel.Selection()
	if sel.IsEmpty() {
		ui.statusLabel.SetText(ui.localization.GetText(KeyNoSelection))
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyNoSelection)), ui.window.Canvas())
		return
	}

	ui.startDownload(cleanURL, sel)
}

// startDownload dispatches the pipeline and reflects errors in the UI
func (ui *RootUI) startDownload(cleanURL string, sel model.Selection) {
	browser := ui.settings.GetPreferredBrowser()
	ui.downloadSvc.SetDownloadDirectory(ui.settings.GetDownloadDirectory())

	task, err := ui.downloadSvc.Start(cleanURL, sel, string(browser), ui.lastTitle)
	if err != nil {
		if errors.Is(err, ytdlp.ErrBusy) {
			ui.statusLabel.SetText(ui.localization.GetText(KeyBusy))
		} else {
			ui.statusLabel.SetText(err.Error())
		}
		return
	}

	log.Printf("Download task %s dispatched for URL: %s (video=%q audio=%q)",
		task.ID, cleanURL, sel.VideoID, sel.AudioID)

	ui.stopBtn.Show()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusStarting))
}

// onStop cancels the running probe or download
func (ui *RootUI) onStop() {
	ui.probeMutex.Lock()
	if ui.probeCancel != nil {
		ui.probeCancel()
	}
	ui.probeMutex.Unlock()

	if err := ui.downloadSvc.Stop(); err != nil {
		log.Printf("Stop requested with no active download: %v", err)
	}
}

// onClear resets the window to its initial state
func (ui *RootUI) onClear() {
	ui.urlEntry.SetText("")
	ui.contentInfo.SetText("")
	ui.formatsPanel.Clear()
	ui.selectionBtn.Hide()
	ui.statusLabel.SetText(ui.localization.GetText(KeyStatusIdle))
	ui.lastTitle = ""
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	sd := NewSettingsDialog(ui.settings, ui.window, ui.localization, func() {
		ui.downloadSvc.SetDownloadDirectory(ui.settings.GetDownloadDirectory())
	})
	sd.Show()
}

// onTaskUpdate handles task status changes coming from the pipeline
func (ui *RootUI) onTaskUpdate(task *model.DownloadTask) {
	// Progress lines arrive per output line; debounce those, but never a
	// status change
	if task.Status == model.TaskStatusDownloading {
		ui.uiUpdateMutex.Lock()
		if time.Since(ui.lastUIUpdate) < UIUpdateDebounce {
			ui.uiUpdateMutex.Unlock()
			return
		}
		ui.lastUIUpdate = time.Now()
		ui.uiUpdateMutex.Unlock()
	}

	status := task.Status
	line := task.LastLine
	lastError := task.LastError
	outputPath := task.OutputPath
	usedCookies := task.UsedCookies

	fyne.Do(func() {
		ui.statusLabel.SetText(ui.statusText(status, line, usedCookies))

		if !status.IsFinished() {
			return
		}
		ui.stopBtn.Hide()

		switch status {
		case model.TaskStatusCompleted:
			ui.showCompletionDialog(task.GetDisplayTitle(), outputPath)
		case model.TaskStatusError:
			dialog.ShowError(errors.New(lastError), ui.window)
		}
	})
}

// statusText maps a task state to the status line text
func (ui *RootUI) statusText(status model.TaskStatus, line string, usedCookies bool) string {
	var text string
	switch status {
	case model.TaskStatusStarting:
		text = ui.localization.GetText(KeyStatusStarting)
	case model.TaskStatusDownloading:
		text = ui.localization.GetText(KeyStatusDownloading)
		if line != "" {
			text += ": " + line
		}
	case model.TaskStatusRetrying:
		text = ui.localization.GetText(KeyStatusRetrying)
	case model.TaskStatusMuxing:
		text = ui.localization.GetText(KeyStatusMuxing)
	case model.TaskStatusStopping:
		text = ui.localization.GetText(KeyStatusStopping)
	case model.TaskStatusStopped:
		text = ui.localization.GetText(KeyStatusStopped)
	case model.TaskStatusCompleted:
		text = ui.localization.GetText(KeyStatusCompleted)
	case model.TaskStatusError:
		text = ui.localization.GetText(KeyStatusError)
	default:
		text = ui.localization.GetText(KeyStatusIdle)
	}

	if usedCookies && status == model.TaskStatusDownloading {
		text += " (" + ui.localization.GetText(KeyUsedCookies) + ")"
	}
	return text
}

// showCompletionDialog offers to reveal the finished file
func (ui *RootUI) showCompletionDialog(title, outputPath string) {
	message := title
	if outputPath != "" {
		message += "\n" + outputPath
	}

	dialog.ShowCustomConfirm(
		ui.localization.GetText(KeyStatusCompleted),
		ui.localization.GetText(KeyOpenFolder),
		"OK",
		widget.NewLabel(message),
		func(open bool) {
			if !open || outputPath == "" {
				return
			}
			if err := platform.OpenFileInManager(outputPath); err != nil {
				log.Printf("Failed to reveal %s: %v", outputPath, err)
			}
		},
		ui.window,
	)
}
